package container

import (
	"fmt"
	"os"

	"github.com/plotprep/plotprep/compress"
	"github.com/plotprep/plotprep/encoding"
	"github.com/plotprep/plotprep/endian"
	"github.com/plotprep/plotprep/errs"
	"github.com/plotprep/plotprep/frame"
	"github.com/plotprep/plotprep/meta"
	"github.com/plotprep/plotprep/section"
)

// File is a decoded container. Groups keep the order they were written in.
type File struct {
	groups []Group
	index  map[string]int
}

// ReadFile reads and decodes the container file at path.
//
// Returns:
//   - *File: The decoded container.
//   - error: The platform's I/O error when the path is unreadable, or a
//     format error when the file is not a valid container.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(data)
}

// Decode decodes a container file image.
func Decode(data []byte) (*File, error) {
	var hdr section.FileHeader
	if err := hdr.Parse(data); err != nil {
		return nil, err
	}
	engine := hdr.Engine()

	groupCount := int(hdr.GroupCount)
	indexEnd := int(hdr.IndexOffset) + groupCount*section.GroupIndexEntrySize
	if int(hdr.IndexOffset) < section.FileHeaderSize || indexEnd > len(data) {
		return nil, errs.ErrInvalidOffset
	}

	entries := make([]section.GroupIndexEntry, 0, groupCount)
	for i := range groupCount {
		entry, err := section.ParseGroupIndexEntry(data[int(hdr.IndexOffset)+i*section.GroupIndexEntrySize:], engine)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	names := make([]string, 0, groupCount)
	off := int(hdr.NamesOffset)
	for range groupCount {
		var name string
		var err error
		name, off, err = encoding.ReadString(data, off)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	f := &File{index: make(map[string]int, groupCount)}
	for i, entry := range entries {
		start, end := int(entry.Offset), int(entry.Offset)+int(entry.Size)
		if start < int(hdr.DataOffset) || end > len(data) || start > end {
			return nil, errs.ErrInvalidOffset
		}
		block := data[start:end]
		if err := entry.Verify(names[i], block); err != nil {
			return nil, fmt.Errorf("group %q: %w", names[i], err)
		}

		group, err := decodeGroup(names[i], block, engine)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", names[i], err)
		}
		f.index[group.Name] = len(f.groups)
		f.groups = append(f.groups, group)
	}

	return f, nil
}

// Groups returns the group names in write order.
func (f *File) Groups() []string {
	names := make([]string, len(f.groups))
	for i, g := range f.groups {
		names[i] = g.Name
	}

	return names
}

// Group returns the named group.
func (f *File) Group(name string) (Group, bool) {
	i, ok := f.index[name]
	if !ok {
		return Group{}, false
	}

	return f.groups[i], true
}

// PlotMetadata decodes the column metadata blob attached to the group:
// column name -> lower-case field name -> value. Returns nil when the group
// carries no metadata attribute.
func (g Group) PlotMetadata() (map[string]map[string]string, error) {
	blob, ok := g.Attrs[AttrPlotMetadata]
	if !ok {
		return nil, nil
	}

	return meta.DecodeColumns([]byte(blob))
}

func decodeGroup(name string, block []byte, engine endian.EndianEngine) (Group, error) {
	var hdr section.GroupHeader
	if err := hdr.Parse(block, engine); err != nil {
		return Group{}, err
	}

	off := section.GroupHeaderSize
	readNames := func(count int) ([]string, error) {
		out := make([]string, 0, count)
		for range count {
			var s string
			var err error
			s, off, err = encoding.ReadString(block, off)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}

		return out, nil
	}

	keyColumns, err := readNames(int(hdr.KeyColumnCount))
	if err != nil {
		return Group{}, err
	}
	valueColumns, err := readNames(int(hdr.ValueColumnCount))
	if err != nil {
		return Group{}, err
	}

	attrs := make(map[string]string, hdr.AttrCount)
	for range int(hdr.AttrCount) {
		var key, val string
		key, off, err = encoding.ReadString(block, off)
		if err != nil {
			return Group{}, err
		}
		val, off, err = encoding.ReadLongString(block, off, engine)
		if err != nil {
			return Group{}, err
		}
		attrs[key] = val
	}

	if off+int(hdr.PayloadSize) != len(block) {
		return Group{}, errs.ErrInvalidPayloadSize
	}
	codec, err := compress.GetCodec(hdr.Compression)
	if err != nil {
		return Group{}, err
	}
	payload, err := codec.Decompress(block[off:])
	if err != nil {
		return Group{}, err
	}

	rows := int(hdr.RowCount)
	if len(payload) != rows*8*(len(keyColumns)+len(valueColumns)) {
		return Group{}, errs.ErrInvalidPayloadSize
	}

	poff := 0
	keyData := make([][]int64, len(keyColumns))
	for j := range keyColumns {
		keyData[j], poff, err = encoding.ReadInt64Slice(payload, poff, rows, engine)
		if err != nil {
			return Group{}, err
		}
	}
	values := make(map[string][]float64, len(valueColumns))
	for _, colName := range valueColumns {
		values[colName], poff, err = encoding.ReadFloat64Slice(payload, poff, rows, engine)
		if err != nil {
			return Group{}, err
		}
	}

	// Transpose the column-major keys into per-row tuples.
	keys := make([][]int64, rows)
	for i := range rows {
		tuple := make([]int64, len(keyColumns))
		for j := range keyColumns {
			tuple[j] = keyData[j][i]
		}
		keys[i] = tuple
	}

	data, err := frame.FromDense(keyColumns, keys, valueColumns, values)
	if err != nil {
		return Group{}, err
	}

	return Group{Name: name, Data: data, Attrs: attrs}, nil
}
