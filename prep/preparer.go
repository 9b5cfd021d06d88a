// Package prep implements the data preparer: the owner of all data groups of
// one preparation session.
//
// A Preparer is created empty. Groups are added one at a time (create-only,
// no deletion or rename), value columns and rows are added incrementally, and
// the terminal operation writes every group to a container file. Writing is
// non-destructive; the preparer remains usable afterwards.
//
// Every operation validates its input before mutating any state, so a
// rejected call leaves all groups unchanged.
//
// Note: the Preparer is NOT thread-safe. Callers requiring concurrent access
// must serialize it externally, e.g. with one mutex per Preparer instance.
package prep

import (
	"fmt"
	"strings"

	"github.com/plotprep/plotprep/container"
	"github.com/plotprep/plotprep/errs"
	"github.com/plotprep/plotprep/frame"
	"github.com/plotprep/plotprep/meta"
)

// KeyColumn names one key column of a new data group together with its
// metadata record. A slice of KeyColumn is an ordered mapping; the order
// becomes the group's index order.
type KeyColumn struct {
	Name     string
	Metadata meta.Metadata
}

type dataGroup struct {
	data     *frame.Frame
	metadata map[string]meta.Metadata
}

// Preparer prepares tabular data for plotting and persists it, together with
// per-column metadata, into a single container file.
type Preparer struct {
	groups map[string]*dataGroup
	order  []string
}

// New creates a new, empty Preparer.
func New() *Preparer {
	return &Preparer{groups: make(map[string]*dataGroup)}
}

// InitDataGroup creates a new data group under the given unique name. The
// key columns define the group's index; the index is fixed for the group's
// lifetime. Every key column carries a validated metadata record.
//
// Returns:
//   - error: ErrBlankGroupName, ErrGroupExists, ErrNoKeyColumns,
//     ErrBlankKeyColumn, ErrDuplicateKeyColumn, or a metadata validation
//     error.
func (p *Preparer) InitDataGroup(group string, keyColumns []KeyColumn) error {
	if strings.TrimSpace(group) == "" {
		return errs.ErrBlankGroupName
	}
	if _, ok := p.groups[group]; ok {
		return fmt.Errorf("%w: %q", errs.ErrGroupExists, group)
	}
	if len(keyColumns) == 0 {
		return errs.ErrNoKeyColumns
	}

	names := make([]string, 0, len(keyColumns))
	metadata := make(map[string]meta.Metadata, len(keyColumns))
	for _, kc := range keyColumns {
		if strings.TrimSpace(kc.Name) == "" {
			return errs.ErrBlankKeyColumn
		}
		if _, dup := metadata[kc.Name]; dup {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateKeyColumn, kc.Name)
		}
		if err := kc.Metadata.Validate(); err != nil {
			return err
		}
		names = append(names, kc.Name)
		metadata[kc.Name] = kc.Metadata.Clone()
	}

	p.groups[group] = &dataGroup{data: frame.New(names), metadata: metadata}
	p.order = append(p.order, group)

	return nil
}

// AddValueColumn merges a value column into an existing data group with the
// associated metadata. The column's index must match the group's key columns
// exactly (same count, same names). The column is joined into the group's
// table as an outer union on the index; its metadata record is registered,
// overwriting any previous record for a column of the same name.
//
// Returns:
//   - error: ErrGroupNotFound, index mismatch errors, or a metadata
//     validation error.
func (p *Preparer) AddValueColumn(group string, col frame.Column, metadata meta.Metadata) error {
	dg, err := p.lookup(group)
	if err != nil {
		return err
	}
	if err := metadata.Validate(); err != nil {
		return err
	}
	if err := dg.data.MatchIndex(col); err != nil {
		return err
	}

	if err := dg.data.MergeColumn(col); err != nil {
		return err
	}
	dg.metadata[col.Name()] = metadata.Clone()

	return nil
}

// AddValueTable is AddValueColumn for table-shaped input: the table is
// squeezed to its single column first. A table with more than one column is
// rejected with ErrMultiColumnData.
func (p *Preparer) AddValueTable(group string, table frame.Table, metadata meta.Metadata) error {
	col, err := table.Squeeze()
	if err != nil {
		return err
	}

	return p.AddValueColumn(group, col, metadata)
}

// AddValueRows appends rows of values for one column to an existing data
// group. The rows' index must match the group's key columns. When the column
// is not yet part of the group, metadata is required and is registered for
// it; when the column already exists, metadata is ignored even if supplied.
//
// Rows whose index repeats earlier rows accumulate; they are summed into one
// row when the group is written out, not at add time.
//
// Returns:
//   - error: ErrGroupNotFound, index mismatch errors, ErrMissingMetadata for
//     a new column without metadata, or a metadata validation error.
func (p *Preparer) AddValueRows(group string, rows frame.Column, metadata meta.Metadata) error {
	dg, err := p.lookup(group)
	if err != nil {
		return err
	}
	if err := dg.data.MatchIndex(rows); err != nil {
		return err
	}

	isNew := !dg.data.HasColumn(rows.Name())
	if isNew {
		if len(metadata) == 0 {
			return fmt.Errorf("%w: %q", errs.ErrMissingMetadata, rows.Name())
		}
		if err := metadata.Validate(); err != nil {
			return err
		}
	}

	if err := dg.data.AppendRows(rows); err != nil {
		return err
	}
	if isNew {
		dg.metadata[rows.Name()] = metadata.Clone()
	}

	return nil
}

// SaveToFile writes all data groups to the container file at path, in the
// order the groups were created. When path carries none of the recognized
// container extensions, the canonical one is appended. The file is opened in
// overwrite mode and all groups are written in one pass.
//
// The preparer is left untouched and remains usable after saving.
//
// Returns:
//   - string: The path actually written.
//   - error: Encoding errors, or the platform's I/O error for an unwritable
//     path.
func (p *Preparer) SaveToFile(path string, opts ...container.WriterOption) (string, error) {
	writer, err := container.NewWriter(opts...)
	if err != nil {
		return "", err
	}

	groups := make([]container.Group, 0, len(p.order))
	for _, name := range p.order {
		dg := p.groups[name]
		blob, err := meta.EncodeColumns(dg.metadata)
		if err != nil {
			return "", err
		}
		groups = append(groups, container.Group{
			Name:  name,
			Data:  dg.data,
			Attrs: map[string]string{container.AttrPlotMetadata: string(blob)},
		})
	}

	return writer.WriteFile(path, groups)
}

// Groups returns the names of all data groups, in creation order.
func (p *Preparer) Groups() []string {
	return append([]string(nil), p.order...)
}

// Group returns a compacted snapshot of the named group's table, suitable for
// direct in-memory plotting.
func (p *Preparer) Group(name string) (*frame.Frame, bool) {
	dg, ok := p.groups[name]
	if !ok {
		return nil, false
	}

	return dg.data.Compacted(), true
}

// GroupMetadata returns a copy of the per-column metadata of the named group.
func (p *Preparer) GroupMetadata(name string) (map[string]meta.Metadata, bool) {
	dg, ok := p.groups[name]
	if !ok {
		return nil, false
	}

	out := make(map[string]meta.Metadata, len(dg.metadata))
	for column, md := range dg.metadata {
		out[column] = md.Clone()
	}

	return out, true
}

func (p *Preparer) lookup(group string) (*dataGroup, error) {
	dg, ok := p.groups[group]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrGroupNotFound, group)
	}

	return dg, nil
}
