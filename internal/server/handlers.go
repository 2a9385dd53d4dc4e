package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/misterclayt0n/rmcalc/internal/render"
	"github.com/misterclayt0n/rmcalc/internal/rm"
)

type formulaJSON struct {
	Key        string `json:"key"`
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Inverse    string `json:"inverse"`
}

type pageData struct {
	render.Model
	RepChoices []int
	// RepsChosen is false when the requested reps match no choice; the
	// selector then shows its placeholder instead of a wrong value.
	RepsChosen bool
}

// model parses the weight and reps query parameters and runs the engine.
// A request without reps gets the configured default.
func (s *Server) model(r *http.Request) render.Model {
	q := r.URL.Query()
	reps := q.Get("reps")
	if !q.Has("reps") {
		reps = strconv.Itoa(s.defaultReps)
	}
	in := render.ParseInput(q.Get("weight"), reps)
	return render.Build(s.engine.WithInput(in))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := pageData{Model: s.model(r)}
	for i := 1; i <= rm.MaxReps; i++ {
		data.RepChoices = append(data.RepChoices, i)
	}
	data.RepsChosen = data.Reps >= 1 && data.Reps <= rm.MaxReps

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.ExecuteTemplate(w, "index.html", data); err != nil {
		s.log.Error("render page", "error", err)
	}
}

// handleEstimate always answers 200. Bad input is an empty table, not an error.
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.model(r))
}

func (s *Server) handleFormulas(w http.ResponseWriter, r *http.Request) {
	out := make([]formulaJSON, 0, len(rm.Formulas))
	for _, f := range rm.Formulas {
		out = append(out, formulaJSON{
			Key:        f.Key,
			Name:       f.Name,
			Expression: f.Expression,
			Inverse:    f.Inverse,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
