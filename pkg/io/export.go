package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
)

// Document is the JSON and YAML representation of an accepted draw.
type Document struct {
	Attempts     int                  `json:"attempts" yaml:"attempts"`
	UseGroups    bool                 `json:"use_groups" yaml:"use_groups"`
	Seed         uint64               `json:"seed" yaml:"seed"`
	Participants []circle.Participant `json:"participants" yaml:"participants"`
}

// NewDocument builds the document for res.
func NewDocument(res *circle.Result) Document {
	return Document{
		Attempts:     res.Attempts,
		UseGroups:    res.UseGroups,
		Seed:         res.Seed,
		Participants: res.Circle,
	}
}

// WriteCSV writes the circle as CSV to w, one row per participant in cycle
// order. The output can be read back with [ReadCSV].
func WriteCSV(w io.Writer, res *circle.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColumnName, ColumnEmail, ColumnGroup, ColumnRecipient}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range res.Circle {
		if err := cw.Write([]string{p.Name, p.Email, p.Group.String(), p.Recipient}); err != nil {
			return fmt.Errorf("write %s: %w", p.Name, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// WriteJSON writes the draw as an indented JSON [Document].
func WriteJSON(w io.Writer, res *circle.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML writes the draw as a YAML [Document].
func WriteYAML(w io.Writer, res *circle.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(res)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// WriteChain writes the cycle as a single line of names.
func WriteChain(w io.Writer, res *circle.Result) error {
	_, err := fmt.Fprintln(w, res.Chain())
	return err
}

// WritePairs writes one "Giver → Recipient" line per participant in cycle
// order.
func WritePairs(w io.Writer, res *circle.Result) error {
	for _, p := range res.Pairs() {
		if _, err := fmt.Fprintf(w, "%s → %s\n", p.Giver, p.Recipient); err != nil {
			return err
		}
	}
	return nil
}

// Write encodes res in format f.
func Write(w io.Writer, f Format, res *circle.Result) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	case FormatChain:
		return WriteChain(w, res)
	case FormatPairs:
		return WritePairs(w, res)
	default:
		return gcerrors.New(gcerrors.ErrCodeInvalidFormat, "unknown output format %q", f)
	}
}
