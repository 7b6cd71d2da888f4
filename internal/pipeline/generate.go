// Package pipeline orchestrates the two-call plan generation sequence and
// the revision path. Every failure inside the pipeline degrades to
// defaulting or canned fallback content; generation never fails the caller.
package pipeline

import (
	"context"
	"log"

	"github.com/jonathan/career-navigator/internal/fallback"
	"github.com/jonathan/career-navigator/internal/github"
	"github.com/jonathan/career-navigator/internal/llm"
	"github.com/jonathan/career-navigator/internal/normalize"
	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/prompts"
	"github.com/jonathan/career-navigator/internal/roles"
	"github.com/jonathan/career-navigator/internal/schemas"
	"github.com/jonathan/career-navigator/internal/store"
	"github.com/jonathan/career-navigator/internal/types"
)

// Generator is the slice of the LLM client the pipeline depends on.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// Enricher supplies optional GitHub profile context.
type Enricher interface {
	FetchProfile(ctx context.Context, username string) (*github.Summary, error)
}

// Options configures a Pipeline.
type Options struct {
	Client   Generator
	Store    *store.PlanStore
	GitHub   Enricher               // optional
	Recorder observability.Recorder // optional, defaults to the log recorder
}

// Pipeline runs generation and revision requests.
type Pipeline struct {
	client   Generator
	store    *store.PlanStore
	github   Enricher
	recorder observability.Recorder
}

// New creates a pipeline.
func New(opts Options) *Pipeline {
	p := &Pipeline{
		client:   opts.Client,
		store:    opts.Store,
		github:   opts.GitHub,
		recorder: opts.Recorder,
	}
	if p.store == nil {
		p.store = store.NewPlanStore()
	}
	if p.recorder == nil {
		p.recorder = observability.LogRecorder{}
	}
	return p
}

// Store exposes the plan store backing this pipeline.
func (p *Pipeline) Store() *store.PlanStore {
	return p.store
}

// Generate runs the full sequence: first call for skills/gaps/roadmap,
// normalization, second call for the flagship project, merge and
// renormalization, then the schema gate. The returned document always
// satisfies the plan schema, and is stored as the session's most recent
// plan.
func (p *Pipeline) Generate(ctx context.Context, req *types.GenerateRequest, sessionID string) *types.PlanDocument {
	roleContext := roles.Context(req.DreamRole)
	githubContext := p.enrich(ctx, req.GitHubUsername)

	// Call 1: skills, gaps, roadmap.
	log.Printf("[Career Brain] === Call 1: Skills/Gaps/Roadmap ===")
	prompt := prompts.BuildRoadmap(req.ResumeText, req.DreamRole, roleContext, githubContext)
	result := p.callObject(ctx, prompt, llm.TierAdvanced)
	if result == nil {
		p.recorder.Record(observability.Event{
			Kind:   observability.EventFallbackTriggered,
			Scope:  "call_1",
			Detail: "generation failed, substituting canned plan",
		})
		result = fallback.PlanMap()
	}

	// Normalize the first call (or the fallback, for defense-in-depth).
	doc := normalize.Normalize(result, req.DreamRole, p.recorder)

	// Call 2: flagship project, parameterized by the normalized analysis.
	log.Printf("[Career Brain] === Call 2: Flagship Project ===")
	projectPrompt := prompts.BuildProject(req.DreamRole, skillNames(doc), gapNames(doc))
	projectResult := p.callObject(ctx, projectPrompt, llm.TierStandard)
	doc = normalize.MergeProject(doc, projectResult, req.DreamRole, p.recorder)

	// Validation gate: a document that still fails the schema is discarded
	// wholesale for the canned fallback.
	if err := schemas.ValidatePlanDocument(doc); err != nil {
		p.recorder.Record(observability.Event{
			Kind:   observability.EventValidationFailed,
			Scope:  "document",
			Detail: err.Error(),
		})
		p.recorder.Record(observability.Event{
			Kind:   observability.EventFallbackTriggered,
			Scope:  "document",
			Detail: "assembled document failed schema validation",
		})
		doc = fallback.Plan()
	}

	p.store.Put(sessionID, doc)
	return doc
}

// callObject invokes the generator and parses its output, mapping every
// failure mode to nil.
func (p *Pipeline) callObject(ctx context.Context, prompt string, tier llm.ModelTier) map[string]any {
	if p.client == nil {
		return nil
	}
	text, err := p.client.GenerateJSON(ctx, prompt, tier)
	if err != nil {
		log.Printf("[Career Brain] generation call failed: %v", err)
		return nil
	}
	obj, err := llm.ParseObject(text)
	if err != nil {
		log.Printf("[Career Brain] generation output unusable: %v", err)
		return nil
	}
	return obj
}

// enrich fetches GitHub context; failures degrade to no context.
func (p *Pipeline) enrich(ctx context.Context, username string) string {
	if p.github == nil || username == "" {
		return ""
	}
	log.Printf("[Career Brain] Fetching GitHub profile: %s", username)
	summary, err := p.github.FetchProfile(ctx, username)
	if err != nil {
		log.Printf("[Career Brain] GitHub fetch failed, continuing without it: %v", err)
		return ""
	}
	return github.FormatContext(summary)
}

// skillNames extracts the skill names for the second-call prompt.
func skillNames(doc *types.PlanDocument) []string {
	var names []string
	for _, s := range doc.SkillMap.Skills {
		names = append(names, s.Name)
	}
	return names
}

// gapNames extracts gap names, critical first, then important.
func gapNames(doc *types.PlanDocument) []string {
	var names []string
	for _, g := range doc.GapAnalysis.Critical {
		names = append(names, g.Skill)
	}
	for _, g := range doc.GapAnalysis.Important {
		names = append(names, g.Skill)
	}
	return names
}
