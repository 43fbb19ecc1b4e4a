// Package query implements the SQL-subset query surface over flattened
// in-memory records.
//
// The supported statement shape is:
//
//	SELECT <col, col, ... | *> FROM <ident>
//	    [WHERE <col> (= | LIKE) <literal>]
//	    [ORDER BY <col> [ASC | DESC]]
//	    [LIMIT <n>]
//
// Keywords are case-insensitive and the FROM target is accepted without
// validation. The package includes a lexer, a small recursive-descent parser
// producing a ParsedQuery, a predicate evaluator, and an executor that runs
// the fixed filter → sort → limit → project pipeline.
//
// The only hard parse failure is input that does not begin with SELECT.
// Every other malformed clause degrades to a permissive default (no filter,
// no sorting, no limit) and is reported through ParsedQuery.Warnings so the
// caller can surface it next to the result. GROUP BY and aggregate calls
// parse but are never executed; they too produce warnings.
//
// Example usage:
//
//	q, err := query.Parse("SELECT name, population FROM data ORDER BY population DESC LIMIT 2")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := query.Execute(flat, q)
package query
