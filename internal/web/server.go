// Package web exposes the dashboard over HTTP as a JSON API. The UI is a
// separate client; this server only serves render models and the CSV export.
package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusops/resdash/internal/config"
	"github.com/campusops/resdash/internal/dashboard"
	"github.com/campusops/resdash/internal/export"
	"github.com/campusops/resdash/internal/filter"
	"github.com/campusops/resdash/internal/normalize"
	"github.com/campusops/resdash/internal/reservations"
)

// Server serves the dashboard API over one loaded dataset at a time. A
// successful upload swaps the dataset wholesale; a failed one leaves the
// previous dataset untouched.
type Server struct {
	cfg *config.Config
	log zerolog.Logger
	mux *http.ServeMux

	mu sync.RWMutex
	ds *reservations.Dataset
}

// NewServer constructs a Server over an initial dataset, which may be nil
// when no export has been loaded yet.
func NewServer(cfg *config.Config, log zerolog.Logger, ds *reservations.Dataset) *Server {
	s := &Server{cfg: cfg, log: log, mux: http.NewServeMux(), ds: ds}
	s.registerRoutes()
	return s
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	s.mux.HandleFunc("GET /api/export.csv", s.handleExportCSV)
	s.mux.HandleFunc("POST /api/upload", s.handleUpload)
}

func (s *Server) dataset() *reservations.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ds := s.dataset()
	if ds == nil {
		s.writeError(w, http.StatusNotFound, "no reservations loaded; upload an export first")
		return
	}
	st, err := parseState(r, s.cfg)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, dashboard.Render(ds, st))
}

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	ds := s.dataset()
	if ds == nil {
		s.writeError(w, http.StatusNotFound, "no reservations loaded; upload an export first")
		return
	}
	st, err := parseState(r, s.cfg)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records := filter.Apply(ds.Records, st.Filter)
	cols := export.Columns(ds.HasColumn)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="filtered_room_reservations.csv"`)
	if err := export.Write(w, records, cols); err != nil {
		s.log.Error().Err(err).Msg("csv export failed")
	}
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	file, hdr, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	// The loader dispatches on extension, so the temp copy keeps the
	// uploaded file's name.
	dir, err := os.MkdirTemp("", "resdash-upload-")
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "stage upload")
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, filepath.Base(hdr.Filename))
	dst, err := os.Create(path)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "stage upload")
		return
	}
	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		s.writeError(w, http.StatusInternalServerError, "stage upload")
		return
	}
	dst.Close()

	ds, err := reservations.Load(s.log, path, normalize.Options{DayFirst: s.cfg.DayFirst})
	if err != nil {
		var pe *reservations.PipelineError
		status := http.StatusInternalServerError
		if errors.As(err, &pe) && (pe.Phase == "open" || pe.Phase == "header") {
			status = http.StatusBadRequest
		}
		s.log.Warn().Err(err).Str("file", hdr.Filename).Msg("upload rejected, previous dataset retained")
		s.writeError(w, status, err.Error())
		return
	}

	s.mu.Lock()
	s.ds = ds
	s.mu.Unlock()

	s.log.Info().Str("file", hdr.Filename).Int64("rows", ds.Summary.RowsRead).Msg("dataset replaced")
	s.writeJSON(w, http.StatusOK, ds.Summary)
}

// parseState maps query parameters onto one dashboard interaction.
func parseState(r *http.Request, cfg *config.Config) (dashboard.State, error) {
	q := r.URL.Query()
	st := dashboard.State{TopN: cfg.TopN}

	var err error
	if st.Filter.From, err = parseDay(q.Get("from"), cfg.DayFirst); err != nil {
		return st, err
	}
	if st.Filter.To, err = parseDay(q.Get("to"), cfg.DayFirst); err != nil {
		return st, err
	}
	if st.TimelineDay, err = parseDay(q.Get("day"), cfg.DayFirst); err != nil {
		return st, err
	}

	st.Filter.Locations = q["location"]
	st.Filter.Departments = q["department"]
	st.Filter.Statuses = q["status"]
	st.Filter.EventTypeNames = q["type"]
	st.Filter.Search = q.Get("q")

	if v := q.Get("top"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil || n <= 0 {
			return st, fmt.Errorf("top must be a positive integer, got %q", v)
		}
		st.TopN = n
	}
	return st, nil
}

func parseDay(v string, dayFirst bool) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d := normalize.ParseDate(v, dayFirst)
	if d == nil {
		return nil, fmt.Errorf("unparseable date %q", v)
	}
	return d, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
