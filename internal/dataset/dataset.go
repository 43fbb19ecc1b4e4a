package dataset

import (
	"fmt"

	"github.com/google/uuid"
)

// Dataset holds one fetched payload together with everything derived from it.
// All derived state is computed inside New before the value is handed out, so
// the raw data and its flattened cache can never be observed out of sync:
// replacing a dataset means building a new one and swapping the reference.
// A Dataset is never mutated after construction.
type Dataset struct {
	ID  string
	URL string

	raw     interface{}
	rows    []map[string]interface{}
	flat    []map[string]interface{}
	columns []ColumnInfo
}

// New builds a Dataset from an already-parsed JSON value. rawBytes, when
// available, carries the original document so column display order can be
// read from it; pass nil for programmatic datasets (order falls back to
// sorted keys). Payloads that are not arrays of objects load fine but are
// not queryable.
func New(raw interface{}, rawBytes []byte, url string) (*Dataset, error) {
	ds := &Dataset{
		ID:  uuid.NewString(),
		URL: url,
		raw: raw,
	}

	items, ok := raw.([]interface{})
	if !ok {
		return ds, nil
	}

	rows := make([]map[string]interface{}, 0, len(items))
	flat := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		rec, ok := item.(map[string]interface{})
		if !ok {
			// Arrays of scalars are displayable but not tabular.
			return ds, nil
		}
		f, err := Flatten(rec)
		if err != nil {
			return nil, fmt.Errorf("flatten record %d: %w", len(flat), err)
		}
		rows = append(rows, rec)
		flat = append(flat, f)
	}

	if len(flat) > 0 {
		columns, err := InferSchema(flat, ColumnOrder(rawBytes))
		if err != nil {
			return nil, err
		}
		ds.columns = columns
	}

	ds.rows = rows
	ds.flat = flat
	return ds, nil
}

// Raw returns the original unflattened value exactly as fetched. This is
// what the caller gets back on reset; the flattened form never leaks into
// the no-active-query display path.
func (d *Dataset) Raw() interface{} { return d.raw }

// Rows returns the raw records when the payload was an array of objects.
func (d *Dataset) Rows() []map[string]interface{} { return d.rows }

// Flat returns the cached flattened form of every record.
func (d *Dataset) Flat() []map[string]interface{} { return d.flat }

// Columns returns the schema snapshot inferred from the first record.
func (d *Dataset) Columns() []ColumnInfo { return d.columns }

// ColumnNames returns the schema column names in display order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.columns))
	for i, col := range d.columns {
		names[i] = col.Name
	}
	return names
}

// Queryable reports whether query mode is available for this payload.
func (d *Dataset) Queryable() bool { return len(d.flat) > 0 }

// Len returns the number of records (0 when not queryable).
func (d *Dataset) Len() int { return len(d.flat) }
