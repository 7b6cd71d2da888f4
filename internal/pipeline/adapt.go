package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jonathan/career-navigator/internal/fallback"
	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/prompts"
	"github.com/jonathan/career-navigator/internal/schemas"
	"github.com/jonathan/career-navigator/internal/types"
)

// ErrNoPlan is returned when revision is requested before any plan has been
// generated for the session. It is the only error the pipeline surfaces.
var ErrNoPlan = errors.New("no roadmap generated yet; generate a roadmap first")

// Adapt revises the session's stored plan from a progress report. The
// adapted output is accepted as returned if it parses into the expected
// shape; no alias resolution or slot completion is applied, since the
// remaining-days count is variable. On generation or shape failure the
// canned adapted fallback substitutes wholesale.
func (p *Pipeline) Adapt(ctx context.Context, req *types.AdaptRequest, sessionID string) (*types.AdaptedPlan, error) {
	prior, ok := p.store.Get(sessionID)
	if !ok {
		return nil, ErrNoPlan
	}

	req.ApplyDefaults()

	originalJSON, err := json.MarshalIndent(prior, "", "  ")
	if err != nil {
		// Stored plans round-trip through JSON on every Put/Get, so this
		// cannot happen outside memory corruption; degrade to fallback.
		return p.adaptFallback("stored plan failed to serialize"), nil
	}

	prompt := prompts.BuildAdapt(string(originalJSON), req.DaysCompleted, req.DaysMissed, req.Reason, req.Confidence)

	log.Printf("[Career Brain] === Adapt: revising remaining roadmap ===")
	result := p.callObject(ctx, prompt, llm.TierAdvanced)
	if result == nil {
		return p.adaptFallback("adaptation call failed"), nil
	}

	if err := schemas.ValidateAdaptedPlan(result); err != nil {
		p.recorder.Record(observability.Event{
			Kind:   observability.EventValidationFailed,
			Scope:  "adapt",
			Detail: err.Error(),
		})
		return p.adaptFallback("adaptation output failed schema validation"), nil
	}

	plan, err := decodeAdaptedPlan(result)
	if err != nil {
		return p.adaptFallback("adaptation output did not fit the expected shape"), nil
	}
	return plan, nil
}

func (p *Pipeline) adaptFallback(reason string) *types.AdaptedPlan {
	p.recorder.Record(observability.Event{
		Kind:   observability.EventFallbackTriggered,
		Scope:  "adapt",
		Detail: reason,
	})
	return fallback.Adaptation()
}

func decodeAdaptedPlan(result map[string]any) (*types.AdaptedPlan, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	var plan types.AdaptedPlan
	if err := json.Unmarshal(b, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
