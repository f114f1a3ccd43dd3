package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/meltforce/buff/internal/app"
	"github.com/meltforce/buff/internal/engine"
)

func (s *Server) handleSessions(w http.ResponseWriter, r *http.Request) {
	if exercise := r.URL.Query().Get("exercise"); exercise != "" {
		writeJSON(w, http.StatusOK, s.app.SessionsForExercise(exercise))
		return
	}
	writeJSON(w, http.StatusOK, s.app.Sessions())
}

func (s *Server) handleSaveSet(w http.ResponseWriter, r *http.Request) {
	var in app.SetInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	// Invalid weight or reps is a silent no-op, reported as saved:false.
	writeJSON(w, http.StatusOK, s.app.SaveSet(in))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	s.app.DeleteSession(chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleClearSessions(w http.ResponseWriter, r *http.Request) {
	s.app.ClearSessions()
	writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}

func (s *Server) handleExercises(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Exercises())
}

func (s *Server) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"added": s.app.AddExercise(in.Name)})
}

func (s *Server) handleResetExercises(w http.ResponseWriter, r *http.Request) {
	s.app.ResetExercises()
	writeJSON(w, http.StatusOK, s.app.Exercises())
}

func (s *Server) handleDeleteExerciseHistory(w http.ResponseWriter, r *http.Request) {
	s.app.DeleteExerciseHistory(chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, s.app.RepRecords(exercise))
}

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	weight, err := strconv.ParseFloat(r.URL.Query().Get("weight"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight parameter required"})
		return
	}
	reps, err := strconv.Atoi(r.URL.Query().Get("reps"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reps parameter required"})
		return
	}
	var rpe *float64
	if v := r.URL.Query().Get("rpe"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid rpe parameter"})
			return
		}
		rpe = &parsed
	}
	writeJSON(w, http.StatusOK, map[string]float64{"estimated1RM": s.app.Estimate(weight, reps, rpe)})
}

func (s *Server) handleProjections(w http.ResponseWriter, r *http.Request) {
	oneRM, err := strconv.ParseFloat(r.URL.Query().Get("oneRM"), 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "oneRM parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, engine.Projections(oneRM))
}

func (s *Server) handleMilestones(w http.ResponseWriter, r *http.Request) {
	exercise := r.URL.Query().Get("exercise")
	if exercise == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}
	writeJSON(w, http.StatusOK, s.app.Milestones(exercise))
}

// handleTrends serves trend analysis for a session metric or a body series.
// A series too short to analyze is a normal empty state, not an error.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	var (
		trend *engine.Trend
		err   error
	)
	switch series := r.URL.Query().Get("series"); series {
	case "bodyweight":
		trend, err = s.app.BodyWeightTrend()
	case "bodyfat":
		trend, err = s.app.BodyFatTrend()
	case "", "exercise":
		exercise := r.URL.Query().Get("exercise")
		if exercise == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
			return
		}
		metric := r.URL.Query().Get("metric")
		if metric == "" {
			metric = engine.Metric1RM
		}
		trend, err = s.app.ExerciseTrend(exercise, metric)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown series " + series})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]bool{"available": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"available": true, "trend": trend})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Stats())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
