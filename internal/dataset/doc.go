// Package dataset turns a fetched JSON payload into queryable tabular data.
//
// A Dataset owns the original value exactly as fetched, a cache of flattened
// records (nested objects inlined into underscore-joined keys, arrays
// serialized to joined text), and a schema snapshot inferred from the first
// record. All derived state is computed up front, so swapping datasets is a
// single reference swap and the raw data can never drift from its cache.
//
// Example usage:
//
//	ds, err := dataset.New(raw, body, url)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ds.Queryable() {
//	    rows := ds.Flat()
//	    // hand rows to the query engine
//	}
package dataset
