package batch

import (
	"fmt"

	safety "Hoist/internal/calc/safety"
)

type SafetyBatchInput struct {
	Items []safety.LiftConfiguration `json:"items"`
}

type SafetyBatchResult struct {
	Results []safety.SafetyReport `json:"results"`
}

func CalculateSafety(in SafetyBatchInput) (SafetyBatchResult, error) {
	if len(in.Items) == 0 {
		return SafetyBatchResult{}, fmt.Errorf("no items")
	}
	out := SafetyBatchResult{Results: make([]safety.SafetyReport, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := safety.Evaluate(item)
		if err != nil {
			return SafetyBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
