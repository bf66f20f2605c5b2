// Package assistant is the canned AI writing helper. It returns a fixed plan
// suggestion; no model is called.
package assistant

import "context"

// Suggestion is the assistant's canned answer, echoing the prompt back.
type Suggestion struct {
	Prompt     string   `json:"prompt"`
	Suggestion string   `json:"suggestion"`
	Sections   []string `json:"sections"`
}

type Service struct{}

func NewService() *Service { return &Service{} }

// Assist answers any prompt with the standard report plan.
func (s *Service) Assist(_ context.Context, prompt string) Suggestion {
	return Suggestion{
		Prompt:     prompt,
		Suggestion: "Analyse initiale: proposez un plan de rapport (Budget, PPM, RH, Audit).",
		Sections:   []string{"Budget", "PPM", "RH", "Audit"},
	}
}
