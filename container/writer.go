// Package container implements the plot data container file: a single
// self-describing file holding every data group of a preparation session as a
// distinct addressable entry.
//
// File layout:
//
//	FileHeader (24 bytes)
//	GroupIndexEntry × GroupCount (24 bytes each, with payload checksums)
//	group names (length-prefixed strings, index order)
//	group blocks:
//	    GroupHeader (16 bytes)
//	    key column names, value column names (length-prefixed strings)
//	    attributes (key/value string pairs; column metadata JSON is stored
//	    under the AttrPlotMetadata key)
//	    compressed column payload (key columns as int64, value columns as
//	    float64, column-major)
//
// Each group's table is compacted before writing: rows are grouped by the
// full key index and duplicate-index rows are summed into one. Writing is
// non-destructive; the in-memory groups remain usable afterwards.
package container

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/plotprep/plotprep/compress"
	"github.com/plotprep/plotprep/encoding"
	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
	"github.com/plotprep/plotprep/format"
	"github.com/plotprep/plotprep/frame"
	"github.com/plotprep/plotprep/internal/options"
	"github.com/plotprep/plotprep/section"
)

// AttrPlotMetadata is the attribute key under which each group's column
// metadata JSON blob is stored.
const AttrPlotMetadata = "plot_metadata"

// Group pairs a named frame with its attribute block. The writer consumes it;
// the reader produces it with the frame already compacted and dense.
type Group struct {
	Name  string
	Data  *frame.Frame
	Attrs map[string]string
}

// Writer assembles container files.
//
// Note: the Writer is stateless apart from its configuration and may be
// reused for multiple files.
type Writer struct {
	engine      endian.EndianEngine
	compression format.CompressionType
}

// WriterOption configures a Writer.
type WriterOption = options.Option[*Writer]

// WithCompression selects the codec applied to every group payload.
func WithCompression(compression format.CompressionType) WriterOption {
	return options.New(func(w *Writer) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compression)
		}
		w.compression = compression

		return nil
	})
}

// WithLittleEndian sets little-endian byte order (the default).
func WithLittleEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian sets big-endian byte order.
func WithBigEndian() WriterOption {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetBigEndianEngine()
	})
}

// NewWriter creates a writer with the given options.
// Defaults: little-endian, Zstd compression.
func NewWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		engine:      endian.GetLittleEndianEngine(),
		compression: format.CompressionZstd,
	}
	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	return w, nil
}

// WriteFile encodes all groups and writes them to path in one pass,
// overwriting any existing file. When path carries none of the recognized
// container extensions, format.ExtCanonical is appended first.
//
// Returns:
//   - string: The path actually written.
//   - error: Encoding errors, or the platform's I/O error when the path is
//     unwritable.
func (w *Writer) WriteFile(path string, groups []Group) (string, error) {
	path = format.NormalizePath(path)

	data, err := w.Encode(groups)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}

	return path, nil
}

// Encode assembles the container file image in memory.
func (w *Writer) Encode(groups []Group) ([]byte, error) {
	blocks := make([][]byte, 0, len(groups))
	var names []byte
	for _, g := range groups {
		block, err := w.encodeGroup(g)
		if err != nil {
			return nil, fmt.Errorf("encode group %q: %w", g.Name, err)
		}
		blocks = append(blocks, block)

		names, err = encoding.AppendString(names, g.Name)
		if err != nil {
			return nil, fmt.Errorf("encode group %q: %w", g.Name, err)
		}
	}

	hdr := section.NewFileHeader(len(groups), w.engine)
	hdr.NamesOffset = hdr.IndexOffset + uint32(len(groups)*section.GroupIndexEntrySize) //nolint:gosec
	hdr.DataOffset = hdr.NamesOffset + uint32(len(names))                               //nolint:gosec

	out := hdr.Bytes()
	offset := hdr.DataOffset
	for i, block := range blocks {
		entry := section.NewGroupIndexEntry(groups[i].Name, offset, block)
		out = entry.AppendTo(out, w.engine)
		offset += uint32(len(block)) //nolint:gosec
	}
	out = append(out, names...)
	for _, block := range blocks {
		out = append(out, block...)
	}

	return out, nil
}

// encodeGroup builds one group block: header, column names, attributes and
// the compressed column payload of the compacted table.
func (w *Writer) encodeGroup(g Group) ([]byte, error) {
	compacted := g.Data.Compacted()
	keyColumns := compacted.KeyColumns()
	valueColumns := compacted.ValueColumns()

	var payload []byte
	for j := range keyColumns {
		payload = encoding.AppendInt64Slice(payload, w.engine, compacted.KeyColumn(j))
	}
	for _, name := range valueColumns {
		payload = encoding.AppendFloat64Slice(payload, w.engine, compacted.Values(name))
	}

	codec, err := compress.GetCodec(w.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, err
	}

	hdr := section.GroupHeader{
		KeyColumnCount:   uint16(len(keyColumns)),   //nolint:gosec
		ValueColumnCount: uint16(len(valueColumns)), //nolint:gosec
		RowCount:         uint32(compacted.NumRows()), //nolint:gosec
		Compression:      w.compression,
		AttrCount:        uint16(len(g.Attrs)), //nolint:gosec
		PayloadSize:      uint32(len(compressed)), //nolint:gosec
	}

	block := hdr.Bytes(w.engine)
	for _, name := range keyColumns {
		if block, err = encoding.AppendString(block, name); err != nil {
			return nil, err
		}
	}
	for _, name := range valueColumns {
		if block, err = encoding.AppendString(block, name); err != nil {
			return nil, err
		}
	}

	// Attribute order is not semantic; sort for reproducible output.
	// Values use a uint32 length prefix since metadata blobs can be long.
	for _, key := range slices.Sorted(maps.Keys(g.Attrs)) {
		if block, err = encoding.AppendString(block, key); err != nil {
			return nil, err
		}
		block = encoding.AppendLongString(block, w.engine, g.Attrs[key])
	}

	return append(block, compressed...), nil
}
