package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/buff/internal/app"
	"github.com/meltforce/buff/internal/engine"
)

func (s *Server) handleBodyWeight(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.BodyWeight())
}

func (s *Server) handleAddBodyWeight(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	entry, ok := s.app.AddBodyWeight(in.Value)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]bool{"saved": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": true, "entry": entry})
}

func (s *Server) handleDeleteBodyWeight(w http.ResponseWriter, r *http.Request) {
	s.app.DeleteBodyWeight(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleClearBodyWeight(w http.ResponseWriter, r *http.Request) {
	s.app.ClearBodyWeight()
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (s *Server) handleBodyFat(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.BodyFat())
}

// handleEstimateBodyFat runs the tape-method estimate against the stored
// profile and optionally saves the reading in one call.
func (s *Server) handleEstimateBodyFat(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Waist float64 `json:"waist"`
		Neck  float64 `json:"neck"`
		Hips  float64 `json:"hips"`
		Save  bool    `json:"save"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	value, category, ok := s.app.EstimateBodyFat(in.Waist, in.Neck, in.Hips)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]bool{"available": false})
		return
	}
	out := map[string]any{"available": true, "value": value, "category": category}
	if in.Save {
		entry, saved := s.app.AddBodyFat(value)
		out["saved"] = saved
		if saved {
			out["entry"] = entry
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddBodyFat(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Value float64 `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	entry, ok := s.app.AddBodyFat(in.Value)
	if !ok {
		writeJSON(w, http.StatusOK, map[string]bool{"saved": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"saved": true, "entry": entry})
}

func (s *Server) handleDeleteBodyFat(w http.ResponseWriter, r *http.Request) {
	s.app.DeleteBodyFat(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleClearBodyFat(w http.ResponseWriter, r *http.Request) {
	s.app.ClearBodyFat()
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Profile())
}

func (s *Server) handleSetProfile(w http.ResponseWriter, r *http.Request) {
	var p app.BodyProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.Gender != engine.GenderMale && p.Gender != engine.GenderFemale {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "gender must be male or female"})
		return
	}
	s.app.SetProfile(p)
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"unit":     s.app.Unit(),
		"prPopups": s.app.PRPopups(),
	})
}

func (s *Server) handleSetSettings(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Unit     *string `json:"unit"`
		PRPopups *bool   `json:"prPopups"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if in.Unit != nil && !s.app.SetUnit(*in.Unit) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unit must be kg or lb"})
		return
	}
	if in.PRPopups != nil {
		s.app.SetPRPopups(*in.PRPopups)
	}
	s.handleSettings(w, r)
}

func (s *Server) handleRoutines(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Routines())
}

func (s *Server) handleSetRoutines(w http.ResponseWriter, r *http.Request) {
	var routines []engine.Routine
	if err := json.NewDecoder(r.Body).Decode(&routines); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.app.SetRoutines(routines)
	writeJSON(w, http.StatusOK, s.app.Routines())
}

func (s *Server) handleActiveRoutine(w http.ResponseWriter, r *http.Request) {
	state, slot := s.app.ActiveRoutine()
	writeJSON(w, http.StatusOK, map[string]any{"state": state, "slot": slot})
}

func (s *Server) handleSetActiveRoutine(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Routine string `json:"routine"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if err := s.app.SetActiveRoutine(in.Routine); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	s.handleActiveRoutine(w, r)
}

func (s *Server) handleClearActiveRoutine(w http.ResponseWriter, r *http.Request) {
	s.app.ClearActiveRoutine()
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}
