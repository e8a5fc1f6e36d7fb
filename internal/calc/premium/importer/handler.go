package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	safety "Hoist/internal/calc/safety"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SafetyImportResult struct {
	Count   int                   `json:"count"`
	Results []safety.SafetyReport `json:"results"`
}

func (h *Handler) Safety(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []safety.SafetyReport
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 6 {
			continue
		}
		cfg, err := parseLiftRow(row)
		if err != nil {
			continue
		}
		res, err := safety.Evaluate(cfg)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SafetyImportResult{Count: len(results), Results: results})
}

func parseLiftRow(row []string) (safety.LiftConfiguration, error) {
	// expected: payload_mass, pulley_mass, sling_mass, safety_factor, drop_height,
	// deformation_limit, wind_scale(optional), exposed_area(optional), crane_capacity
	if len(row) < 6 {
		return safety.LiftConfiguration{}, fmt.Errorf("bad row")
	}
	payload, err := toFloat(row[0])
	if err != nil {
		return safety.LiftConfiguration{}, err
	}
	pulley, err := toFloat(row[1])
	if err != nil {
		return safety.LiftConfiguration{}, err
	}
	sling, err := toFloat(row[2])
	if err != nil {
		return safety.LiftConfiguration{}, err
	}
	factor, err := toFloat(row[3])
	if err != nil {
		return safety.LiftConfiguration{}, err
	}
	height, err := toFloat(row[4])
	if err != nil {
		return safety.LiftConfiguration{}, err
	}
	deformation, err := toFloat(row[5])
	if err != nil {
		return safety.LiftConfiguration{}, err
	}
	windScale := 0.0
	if len(row) > 6 && row[6] != "" {
		windScale, _ = toFloat(row[6])
	}
	area := 0.0
	if len(row) > 7 && row[7] != "" {
		area, _ = toFloat(row[7])
	}
	capacity := 0.0
	if len(row) > 8 && row[8] != "" {
		capacity, _ = toFloat(row[8])
	}
	return safety.LiftConfiguration{
		PayloadMassKg:     payload,
		PulleyMassKg:      pulley,
		SlingMassKg:       sling,
		SafetyFactor:      factor,
		DropHeightM:       height,
		DeformationLimitM: deformation,
		WindScale:         windScale,
		ExposedAreaM2:     area,
		CraneCapacityKg:   capacity,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
