package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	safety "Hoist/internal/calc/safety"
)

type Input struct {
	Project string                   `json:"project"`
	Author  string                   `json:"author"`
	Title   string                   `json:"title"`
	Config  safety.LiftConfiguration `json:"config"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Lift Safety Report"
	}

	rep, err := safety.Evaluate(input.Config)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Verdict: %s", verdictText(rep.SafeToLift)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Risk level: %s", rep.RiskLevel))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Total mass: %.1f kg", rep.TotalMassKg),
		fmt.Sprintf("Impact force: %.0f N (%.0f kgf)", rep.ImpactForceN, rep.ImpactForceKgf),
		fmt.Sprintf("Effective load: %.1f kg of %.1f kg capacity (ratio %.2f)", rep.EffectiveLoadKg, input.Config.CraneCapacityKg, rep.LoadRatio),
		fmt.Sprintf("Wind: %s, %.2f m/s, force %.1f N", rep.WindDescription, rep.WindSpeedMps, rep.WindForceN),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	for _, warning := range rep.Warnings {
		pdf.Ln(2)
		pdf.MultiCell(0, 6, "Warning: "+warning, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"lift-safety-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func verdictText(safe bool) string {
	if safe {
		return "SAFE TO LIFT"
	}
	return "DO NOT LIFT"
}
