package io

import (
	"strings"

	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
)

// Format names an output encoding.
type Format string

// Supported output formats.
const (
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatChain Format = "chain"
	FormatPairs Format = "pairs"
)

// Formats lists every format [Write] understands.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatChain, FormatPairs}

// ParseFormat parses a format name case-insensitively. "yml" is accepted as
// an alias for yaml.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "yml" {
		return FormatYAML, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", gcerrors.New(gcerrors.ErrCodeInvalidFormat, "unknown output format %q (want one of %s)", s, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// String implements fmt.Stringer.
func (f Format) String() string { return string(f) }
