// Package meta defines the metadata vocabulary for plot data columns.
//
// Every column of a data group, key and value columns alike, carries a
// Metadata record built from a closed set of recognized fields: a required
// display label and an optional physical unit. At persistence time the
// per-column records are serialized to a JSON blob with explicit lower-case
// field keys, stored under a fixed attribute on the group's container entry.
package meta

import (
	"fmt"
	"maps"
	"strings"

	"github.com/goccy/go-json"

	"github.com/plotprep/plotprep/errs"
)

// Field enumerates the recognized metadata fields of a plot data column.
type Field uint8

const (
	// FieldLabel is the full display name of the column, as shown in axis
	// descriptions. Required, non-blank.
	FieldLabel Field = iota + 1

	// FieldUnit is the physical unit of the column's values. Optional,
	// defaults to the empty string.
	FieldUnit
)

// String returns the canonical lower-case identifier of the field. This is
// also the key used for the field in the serialized metadata block, mapped
// explicitly here rather than derived from the constant name.
func (f Field) String() string {
	switch f {
	case FieldLabel:
		return "label"
	case FieldUnit:
		return "unit"
	default:
		return "unknown"
	}
}

// Metadata describes a single column as a mapping from recognized fields to
// values. Only FieldLabel and FieldUnit are allowed; FieldLabel must be
// present and non-blank.
type Metadata map[Field]string

// ColumnMetadata builds a validated metadata record for a column. Pass an
// empty unit when the column has none.
//
// Returns:
//   - Metadata: The record {FieldLabel: label, FieldUnit: unit}.
//   - error: ErrBlankLabel if label is empty or whitespace-only.
func ColumnMetadata(label, unit string) (Metadata, error) {
	md := Metadata{FieldLabel: label, FieldUnit: unit}
	if err := md.Validate(); err != nil {
		return nil, err
	}

	return md, nil
}

// MustColumnMetadata is ColumnMetadata that panics on an invalid label.
// Intended for statically known literals and tests.
func MustColumnMetadata(label, unit string) Metadata {
	md, err := ColumnMetadata(label, unit)
	if err != nil {
		panic(err)
	}

	return md
}

// Validate checks that the record carries only recognized fields and that the
// label is present and non-blank.
//
// Returns:
//   - error: ErrUnknownMetadataField or ErrBlankLabel, nil when valid.
func (m Metadata) Validate() error {
	for field := range m {
		switch field {
		case FieldLabel, FieldUnit:
		default:
			return fmt.Errorf("%w: %d", errs.ErrUnknownMetadataField, uint8(field))
		}
	}

	if strings.TrimSpace(m[FieldLabel]) == "" {
		return errs.ErrBlankLabel
	}

	return nil
}

// Label returns the display label of the column.
func (m Metadata) Label() string {
	return m[FieldLabel]
}

// Unit returns the unit of the column, or the empty string when absent.
func (m Metadata) Unit() string {
	return m[FieldUnit]
}

// Clone returns an independent copy of the record.
func (m Metadata) Clone() Metadata {
	return maps.Clone(m)
}

// EncodeColumns serializes per-column metadata to the JSON blob stored under
// the container's metadata attribute: column name -> lower-case field name ->
// value. Absent units are written as empty strings so every column entry has
// the full field set.
func EncodeColumns(columns map[string]Metadata) ([]byte, error) {
	out := make(map[string]map[string]string, len(columns))
	for name, md := range columns {
		entry := make(map[string]string, 2)
		entry[FieldLabel.String()] = md[FieldLabel]
		entry[FieldUnit.String()] = md[FieldUnit]
		out[name] = entry
	}

	return json.Marshal(out)
}

// DecodeColumns parses a JSON blob produced by EncodeColumns.
func DecodeColumns(data []byte) (map[string]map[string]string, error) {
	out := make(map[string]map[string]string)
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode column metadata: %w", err)
	}

	return out, nil
}
