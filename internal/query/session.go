package query

import (
	"github.com/apiscope/apiscope/internal/dataset"
)

// Session holds the interactive query state for one loaded dataset: the
// current query text, the last error, and the last result. After every
// Execute call exactly one of LastResult/LastError is populated. Loading a
// new dataset means creating a new session; sessions are never rebound.
type Session struct {
	ds *dataset.Dataset

	QueryText  string
	LastError  string
	LastResult []map[string]interface{}
	Warnings   []string
}

// NewSession creates a session bound to the dataset.
func NewSession(ds *dataset.Dataset) *Session {
	return &Session{ds: ds}
}

// Dataset returns the bound dataset.
func (s *Session) Dataset() *dataset.Dataset {
	return s.ds
}

// Execute parses and runs queryText against the session's dataset. On
// success LastResult is set and LastError cleared; on failure the error is
// recorded as a user-displayable string and LastResult cleared. Errors are
// terminal for the invocation: nothing is retried.
func (s *Session) Execute(queryText string) ([]map[string]interface{}, error) {
	s.QueryText = queryText

	rows, warnings, err := s.run(queryText)
	if err != nil {
		s.LastError = err.Error()
		s.LastResult = nil
		s.Warnings = nil
		return nil, err
	}
	s.LastError = ""
	s.LastResult = rows
	s.Warnings = warnings
	return rows, nil
}

func (s *Session) run(queryText string) ([]map[string]interface{}, []string, error) {
	if s.ds == nil || !s.ds.Queryable() {
		return nil, nil, dataset.ErrNoData
	}
	q, err := Parse(queryText)
	if err != nil {
		return nil, nil, err
	}
	rows, err := Execute(s.ds.Flat(), q)
	if err != nil {
		return nil, nil, err
	}
	return rows, q.Warnings, nil
}

// Reset clears the query state and hands back the original unflattened value
// the caller supplied. Flattening is an implementation detail of query
// execution and never leaks into the no-active-query display path.
func (s *Session) Reset() interface{} {
	s.QueryText = ""
	s.LastError = ""
	s.LastResult = nil
	s.Warnings = nil
	if s.ds == nil {
		return nil
	}
	return s.ds.Raw()
}

// Active reports whether a query result is currently displayed.
func (s *Session) Active() bool {
	return s.LastResult != nil
}
