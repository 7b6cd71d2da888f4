package normalize

import (
	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/types"
)

// MergeProject decides whether the second generation call's result replaces
// the document's flagship project. The candidate is probed from a
// flagship_project key, then a project key, then the whole returned object,
// and accepted only if it is an object carrying a title or name key (name is
// an alias resolved afterward). On acceptance the project is replaced
// wholesale and the whole document is re-run through alias resolution and
// completeness synthesis; on rejection the prior document is returned
// unchanged.
func MergeProject(doc *types.PlanDocument, result map[string]any, role string, rec observability.Recorder) *types.PlanDocument {
	if rec == nil {
		rec = observability.Nop{}
	}
	if result == nil {
		rec.Record(observability.Event{
			Kind:   observability.EventMergeRejected,
			Scope:  "call_2",
			Detail: "call failed or returned a non-object",
		})
		return doc
	}

	candidate := probeCandidate(result)
	if candidate == nil {
		rec.Record(observability.Event{
			Kind:   observability.EventMergeRejected,
			Scope:  "call_2",
			Detail: "no project object found in result",
		})
		return doc
	}
	if _, hasTitle := candidate["title"]; !hasTitle {
		if _, hasName := candidate["name"]; !hasName {
			rec.Record(observability.Event{
				Kind:   observability.EventMergeRejected,
				Scope:  "call_2",
				Detail: "candidate has neither title nor name",
			})
			return doc
		}
	}

	rec.Record(observability.Event{Kind: observability.EventMergeAccepted, Scope: "call_2"})

	m := DocumentToMap(doc)
	m["flagship_project"] = candidate
	return Normalize(m, role, rec)
}

// probeCandidate returns the first non-empty object under flagship_project
// or project, else the result itself if it is non-empty.
func probeCandidate(result map[string]any) map[string]any {
	for _, key := range []string{"flagship_project", "project"} {
		if obj, ok := result[key].(map[string]any); ok && len(obj) > 0 {
			return obj
		}
	}
	if len(result) > 0 {
		return result
	}
	return nil
}
