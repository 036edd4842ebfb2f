// Package records converts the curated entity and relationship tables of an
// extraction run into generic graph records.
//
// The tables are Parquet files written by a dataframe library. Only top-level
// scalar columns are read; list and struct columns are ignored. Column lookup
// is by name, so extra columns and column order do not matter.
package records

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/matzehuels/benchorder/pkg/graphml"
)

// Entity columns, first match wins.
var (
	entityIDColumns          = []string{"title", "name"}
	entityTypeColumns        = []string{"type"}
	entityCommunityColumns   = []string{"community", "community_id"}
	entityDescriptionColumns = []string{"description"}
)

// Relationship columns, first match wins.
var (
	relSourceColumns      = []string{"source"}
	relTargetColumns      = []string{"target"}
	relWeightColumns      = []string{"weight"}
	relShortLabelColumns  = []string{"short_label", "label"}
	relDescriptionColumns = []string{"full_description", "description"}
)

// ReadEntities reads an entity table. Rows without an entity name are
// dropped.
func ReadEntities(path string) ([]graphml.Node, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	id, ok := t.column(entityIDColumns...)
	if !ok {
		return nil, fmt.Errorf("%s: no entity name column (want one of %s)", path, strings.Join(entityIDColumns, ", "))
	}
	typ, _ := t.column(entityTypeColumns...)
	comm, _ := t.column(entityCommunityColumns...)
	desc, _ := t.column(entityDescriptionColumns...)

	nodes := make([]graphml.Node, 0, len(t.rows))
	for _, row := range t.rows {
		name, ok := row[id].(string)
		if !ok || name == "" {
			continue
		}
		nodes = append(nodes, graphml.Node{
			ID: name,
			Properties: map[string]any{
				graphml.PropType:        row.get(typ),
				graphml.PropCommunity:   row.get(comm),
				graphml.PropDescription: row.get(desc),
			},
		})
	}
	return nodes, nil
}

// ReadRelationships reads a relationship table. Rows without both endpoints
// are dropped.
func ReadRelationships(path string) ([]graphml.Edge, error) {
	t, err := readTable(path)
	if err != nil {
		return nil, err
	}
	src, okS := t.column(relSourceColumns...)
	dst, okT := t.column(relTargetColumns...)
	if !okS || !okT {
		return nil, fmt.Errorf("%s: relationship table needs source and target columns", path)
	}
	weight, _ := t.column(relWeightColumns...)
	label, _ := t.column(relShortLabelColumns...)
	desc, _ := t.column(relDescriptionColumns...)

	edges := make([]graphml.Edge, 0, len(t.rows))
	for _, row := range t.rows {
		start, ok1 := row[src].(string)
		end, ok2 := row[dst].(string)
		if !ok1 || !ok2 {
			continue
		}
		edges = append(edges, graphml.Edge{
			Start: start,
			End:   end,
			Properties: map[string]any{
				graphml.PropWeight:          row.get(weight),
				graphml.PropShortLabel:      row.get(label),
				graphml.PropFullDescription: row.get(desc),
			},
		})
	}
	return edges, nil
}

// table is a decoded Parquet file restricted to top-level scalar columns.
type table struct {
	columns map[string]int // top-level column name → leaf index
	rows    []record
}

// record holds one row's scalar values indexed by leaf column.
type record map[int]any

func (r record) get(col int) any {
	if col < 0 {
		return nil
	}
	return r[col]
}

func (t *table) column(names ...string) (int, bool) {
	for _, n := range names {
		if i, ok := t.columns[n]; ok {
			return i, true
		}
	}
	return -1, false
}

func readTable(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("open parquet %s: %w", path, err)
	}

	t := &table{columns: make(map[string]int)}
	for i, p := range pf.Schema().Columns() {
		if len(p) == 1 {
			t.columns[p[0]] = i
		}
	}

	for _, rg := range pf.RowGroups() {
		if err := t.readRowGroup(rg); err != nil {
			return nil, fmt.Errorf("read parquet %s: %w", path, err)
		}
	}
	return t, nil
}

func (t *table) readRowGroup(rg parquet.RowGroup) error {
	rows := rg.Rows()
	defer rows.Close()

	buf := make([]parquet.Row, 128)
	for {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			t.rows = append(t.rows, t.decode(row))
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (t *table) decode(row parquet.Row) record {
	rec := make(record, len(t.columns))
	for _, v := range row {
		col := v.Column()
		if _, seen := rec[col]; seen {
			continue
		}
		rec[col] = scalar(v)
	}
	return rec
}

// scalar converts a leaf value to a Go value. Nulls become nil.
func scalar(v parquet.Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.Kind() {
	case parquet.Boolean:
		return v.Boolean()
	case parquet.Int32:
		return int64(v.Int32())
	case parquet.Int64:
		return v.Int64()
	case parquet.Float:
		return float64(v.Float())
	case parquet.Double:
		return v.Double()
	case parquet.ByteArray, parquet.FixedLenByteArray:
		return string(v.ByteArray())
	default:
		return v.String()
	}
}
