package io

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
)

// Column names of the record format.
const (
	ColumnName      = "name"
	ColumnEmail     = "email_address"
	ColumnGroup     = "group_number"
	ColumnRecipient = "assigned_person_name"
)

// ReadCSV decodes participants from CSV read from r.
//
// The first row must be a header containing at least a name column.
// Unknown columns are ignored. Rows are validated as they are read; the
// first invalid row aborts the read with an error naming its line.
func ReadCSV(r io.Reader) ([]circle.Participant, error) {
	rdr := csv.NewReader(r)
	rdr.TrimLeadingSpace = true
	rdr.FieldsPerRecord = -1

	header, err := rdr.Read()
	if errors.Is(err, io.EOF) {
		return nil, gcerrors.New(gcerrors.ErrCodeInvalidInput, "input is empty, expected a header row")
	}
	if err != nil {
		return nil, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "read header")
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var people []circle.Participant
	for {
		row, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "read record")
		}
		line, _ := rdr.FieldPos(0)

		rec, err := parseRow(row, cols)
		if err == nil {
			err = ValidateRecord(&rec)
		}
		if err != nil {
			return nil, gcerrors.New(gcerrors.ErrCodeInvalidRecord, "line %d: %v", line, err)
		}
		people = append(people, rec.Participant())
	}
	return people, nil
}

// ReadJSON decodes participants from r. The input is either a JSON array of
// records or a [Document] written by [WriteJSON]; recipients in a document
// are dropped so the participants can be drawn again.
func ReadJSON(r io.Reader) ([]circle.Participant, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "decode participants")
	}

	if trimmed := bytes.TrimLeft(raw, " \t\r\n"); len(trimmed) == 0 || trimmed[0] != '{' {
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "decode participants")
		}
		return ToParticipants(records)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "decode document")
	}
	if len(doc.Participants) == 0 {
		return nil, gcerrors.New(gcerrors.ErrCodeInvalidInput, "document has no participants")
	}
	records := make([]Record, len(doc.Participants))
	for i, p := range doc.Participants {
		records[i] = Record{Name: p.Name, Email: p.Email}
		if p.Group.Valid() {
			g := int(p.Group)
			records[i].Group = &g
		}
	}
	return ToParticipants(records)
}

// ImportFile reads participants from path. Files ending in .json are
// decoded with [ReadJSON]; everything else is read as CSV.
func ImportFile(path string) ([]circle.Participant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, gcerrors.Wrap(gcerrors.ErrCodeInvalidInput, err, "failed to read input from %s", path)
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(f)
	}
	return ReadCSV(f)
}

type columns struct {
	name, email, group int
}

func mapColumns(header []string) (columns, error) {
	cols := columns{name: -1, email: -1, group: -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch h {
		case ColumnName:
			cols.name = i
		case ColumnEmail:
			cols.email = i
		case ColumnGroup:
			cols.group = i
		}
	}
	if cols.name < 0 {
		return cols, gcerrors.New(gcerrors.ErrCodeInvalidInput, "header is missing the %q column", ColumnName)
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (Record, error) {
	rec := Record{Name: cell(row, cols.name), Email: cell(row, cols.email)}

	if g := strings.TrimSpace(cell(row, cols.group)); g != "" {
		n, err := strconv.Atoi(g)
		if err != nil {
			return rec, fmt.Errorf("%s %q is not an integer", ColumnGroup, g)
		}
		rec.Group = &n
	}
	return rec, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
