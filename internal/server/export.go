package server

import (
	"encoding/json"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/meltforce/buff/internal/app"
)

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.app.Export())
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var b app.Backup
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	s.app.Import(b)
	writeJSON(w, http.StatusOK, map[string]bool{"imported": true})
}

// handleExportXLSX streams the session history as a spreadsheet, one row
// per set.
func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "History"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headers := []string{"Date", "Exercise", "Set", "Weight", "Reps", "RPE", "Estimated 1RM", "Unit"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}
	}

	row := 2
	for _, session := range s.app.Sessions() {
		for _, set := range session.Sets {
			values := []any{
				session.DateKey, session.Exercise, set.SetNumber,
				set.Weight, set.Reps, nil, set.Estimated1RM, session.Unit,
			}
			if set.RPE != nil {
				values[5] = *set.RPE
			}
			for c, v := range values {
				if v == nil {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+1, row)
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
					return
				}
			}
			row++
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="buff-history.xlsx"`)
	if err := f.Write(w); err != nil {
		s.log.Error("writing xlsx export", "error", err)
	}
}
