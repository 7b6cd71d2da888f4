package types

import (
	"github.com/go-playground/validator/v10"
)

// GenerateRequest represents the request to generate a new 30-day plan.
type GenerateRequest struct {
	ResumeText     string `json:"resume_text" validate:"required,min=1"`
	DreamRole      string `json:"dream_role" validate:"required,min=1"`
	GitHubUsername string `json:"github_username,omitempty"`
}

// AdaptRequest represents a progress update used to revise the stored plan.
type AdaptRequest struct {
	DaysCompleted int    `json:"days_completed" validate:"gte=0,lte=30"`
	DaysMissed    int    `json:"days_missed" validate:"gte=0,lte=30"`
	Reason        string `json:"reason,omitempty"`
	Confidence    int    `json:"confidence,omitempty" validate:"omitempty,gte=1,lte=10"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AdaptRequest using the validator.
func (r *AdaptRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ApplyDefaults fills optional AdaptRequest fields the way the prompt
// expects them.
func (r *AdaptRequest) ApplyDefaults() {
	if r.Reason == "" {
		r.Reason = "busy with other commitments"
	}
	if r.Confidence == 0 {
		r.Confidence = 5
	}
}
