// Package errs defines the sentinel errors shared across plotprep packages.
//
// Validation failures raised while preparing plot data all wrap the base
// ErrDataPreparation, so callers can match the whole category with a single
// errors.Is check while still distinguishing individual causes. Container
// format errors raised on the read path are independent sentinels, and I/O
// failures from the platform propagate unwrapped.
package errs

import (
	"errors"
	"fmt"
)

// ErrDataPreparation is the base error for every validation failure raised
// during data preparation. All preparation sentinels below wrap it.
var ErrDataPreparation = errors.New("data preparation failed")

// Naming violations.
var (
	ErrBlankGroupName     = prepError("group name is blank")
	ErrGroupExists        = prepError("group name already exists")
	ErrGroupNotFound      = prepError("group name not found")
	ErrBlankKeyColumn     = prepError("key column name is blank")
	ErrDuplicateKeyColumn = prepError("duplicate key column name")
)

// Structural violations.
var (
	ErrNoKeyColumns        = prepError("no key columns given")
	ErrIndexLengthMismatch = prepError("length of index does not match that of the data group")
	ErrIndexNameMismatch   = prepError("index column not found in index of data to add")
	ErrMultiColumnData     = prepError("data must be a single column")
	ErrColumnShape         = prepError("column keys and values have mismatched lengths")
)

// Metadata violations.
var (
	ErrBlankLabel           = prepError("metadata label is blank")
	ErrUnknownMetadataField = prepError("unrecognized metadata field")
	ErrMissingMetadata      = prepError("no metadata specified for new column")
)

// Container format violations, raised when decoding a container file.
var (
	ErrInvalidMagic           = errors.New("invalid container magic number")
	ErrInvalidHeaderSize      = errors.New("invalid file header size")
	ErrInvalidIndexEntrySize  = errors.New("invalid group index entry size")
	ErrInvalidGroupHeaderSize = errors.New("invalid group header size")
	ErrInvalidOffset          = errors.New("section offset out of bounds")
	ErrInvalidPayloadSize     = errors.New("payload size does not match group dimensions")
	ErrInvalidCompression     = errors.New("invalid compression type")
	ErrChecksumMismatch       = errors.New("group block checksum mismatch")
	ErrNameHashMismatch       = errors.New("group name hash mismatch")
)

func prepError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDataPreparation, msg)
}
