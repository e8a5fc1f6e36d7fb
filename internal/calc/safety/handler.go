package safety

import (
	"encoding/json"
	"log"
	"net/http"

	"Hoist/internal/observability"
	"Hoist/internal/repo"
)

type Handler struct {
	Repo    repo.Repository
	Metrics *observability.Metrics
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var cfg LiftConfiguration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	report, err := Evaluate(cfg)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	if h.Metrics != nil {
		h.Metrics.Evaluations.WithLabelValues(report.RiskLevel).Inc()
		if !report.OverloadSafe {
			h.Metrics.Overloads.Inc()
		}
	}

	// History is best effort: a failed write is logged, the operator still
	// gets the verdict.
	if h.Repo != nil {
		if userID, ok := r.Context().Value("userID").(int); ok && userID != 0 {
			cfgJSON, _ := json.Marshal(cfg)
			reportJSON, _ := json.Marshal(report)
			if _, err := h.Repo.SaveEvaluation(r.Context(), userID, report.RiskLevel, report.SafeToLift, cfgJSON, reportJSON); err != nil {
				log.Printf("SaveEvaluation error: %v", err)
				if h.Metrics != nil {
					h.Metrics.HistoryWriteErrors.Inc()
				}
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
