package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"

	"github.com/apiscope/apiscope/internal/dataset"
	"github.com/apiscope/apiscope/internal/output"
	"github.com/apiscope/apiscope/internal/query"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var exportContentTypes = map[string]string{
	"csv":   "text/csv",
	"json":  "application/json",
	"jsonl": "application/x-ndjson",
	"xlsx":  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

type fetchRequest struct {
	URL string `json:"url"`
}

type queryRequest struct {
	Query string `json:"query"`
}

type filterRequest struct {
	Column string `json:"column"`
	Op     string `json:"op"`
	Value  string `json:"value"`
}

// handleFetch loads a new dataset from a user-supplied endpoint. The dataset
// and its flattened cache are built completely before the handle is
// published, so no request can ever observe them out of sync.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	res, err := s.client.Fetch(r.Context(), req.URL)
	if err != nil {
		writeError(w, http.StatusBadGateway, err)
		return
	}

	ds, err := dataset.New(res.Raw, res.Body, res.URL)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	s.mu.Lock()
	s.sessions[ds.ID] = query.NewSession(ds)
	delete(s.filtered, ds.ID)
	s.mu.Unlock()

	s.log.WithFields(map[string]interface{}{
		"id":   ds.ID,
		"url":  ds.URL,
		"rows": ds.Len(),
	}).Info("dataset loaded")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":        ds.ID,
		"url":       ds.URL,
		"rowCount":  ds.Len(),
		"queryable": ds.Queryable(),
		"columns":   ds.Columns(),
	})
}

// handleSchema returns the schema snapshot inferred from the first record.
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.session(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset"))
		return
	}
	ds := sess.Dataset()
	if !ds.Queryable() {
		writeError(w, http.StatusUnprocessableEntity, dataset.ErrNoData)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"columns": ds.Columns()})
}

// handleData returns the original unflattened value: the display path when
// no query is active.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.session(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": sess.Dataset().Raw()})
}

// handleQuery runs one query. Parse and evaluation errors never escape as
// HTTP failures beyond this boundary: they are converted to a user-visible
// string here.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.session(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset"))
		return
	}

	rows, err := sess.Execute(req.Query)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows":     rows,
		"warnings": sess.Warnings,
	})
}

// handleReset clears the query state and hands back the original data.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.session(mux.Vars(r)["id"])
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset"))
		return
	}
	delete(s.filtered, mux.Vars(r)["id"])
	writeJSON(w, http.StatusOK, map[string]interface{}{"data": sess.Reset()})
}

// handleFilter applies the simple non-SQL column filter to the flattened
// rows. The result also becomes the "currently displayed" set for export.
func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := mux.Vars(r)["id"]
	sess, ok := s.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset"))
		return
	}
	ds := sess.Dataset()
	if !ds.Queryable() {
		writeError(w, http.StatusUnprocessableEntity, dataset.ErrNoData)
		return
	}

	rows, err := dataset.ApplyColumnFilter(ds.Flat(), req.Column, req.Op, req.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.filtered[id] = rows
	writeJSON(w, http.StatusOK, map[string]interface{}{"rows": rows})
}

// handleExport serializes the currently displayed result set: the query
// result when a query is active, else the filter-panel result, else the full
// flattened dataset. The download filename embeds today's date.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := mux.Vars(r)["id"]
	sess, ok := s.session(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("unknown dataset"))
		return
	}
	ds := sess.Dataset()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	contentType, ok := exportContentTypes[format]
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unsupported export format %q", format))
		return
	}

	rows := ds.Flat()
	if sess.Active() {
		rows = sess.LastResult
	} else if filtered, ok := s.filtered[id]; ok {
		rows = filtered
	}

	formatter, _ := output.NewFormatter(format, w)
	formatter.SetColumns(ds.ColumnNames())

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", output.ExportFilename("apiscope_export", format)))

	if err := formatter.Format(rows); err != nil {
		s.log.WithError(err).Error("export failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError converts any error into a user-displayable message.
func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]interface{}{"error": err.Error()})
}
