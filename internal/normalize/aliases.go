// Package normalize repairs free-form generator output into a structurally
// complete plan document: alias resolution, slot synthesis, and second-call
// project merging.
package normalize

import (
	"github.com/jonathan/career-navigator/internal/observability"
)

// Scope identifies which object an alias rule applies to.
type Scope string

// Alias scopes.
const (
	// ScopeDocument covers the top-level plan document.
	ScopeDocument Scope = "document"
	// ScopeProject covers the flagship project sub-object.
	ScopeProject Scope = "project"
)

// AliasRule maps a generator's alternate key name to the canonical key
// within one scope.
type AliasRule struct {
	Scope     Scope
	Alias     string
	Canonical string
}

// aliasTable is the full set of tolerated key variants. The resolution
// mechanism below is generic; the policy lives entirely in this table.
var aliasTable = []AliasRule{
	{ScopeDocument, "project", "flagship_project"},
	{ScopeDocument, "skills", "skill_map"},
	{ScopeDocument, "gaps", "gap_analysis"},
	{ScopeDocument, "requirements", "role_requirements"},

	{ScopeProject, "name", "title"},
	{ScopeProject, "project_name", "title"},
	{ScopeProject, "stack", "tech_stack"},
	{ScopeProject, "technologies", "tech_stack"},
	{ScopeProject, "technology", "tech_stack"},
	{ScopeProject, "features", "weekly_features"},
	{ScopeProject, "problem", "problem_statement"},
	{ScopeProject, "description", "problem_statement"},
	{ScopeProject, "quality", "portfolio_quality"},
}

// Rules returns the alias rules for a scope.
func Rules(scope Scope) []AliasRule {
	var out []AliasRule
	for _, r := range aliasTable {
		if r.Scope == scope {
			out = append(out, r)
		}
	}
	return out
}

// ResolveAliases renames alias keys in m to their canonical names for the
// given scope. If the canonical key is already present the alias is dropped
// silently (canonical wins). Values are moved as-is; wrong types are left
// for the completeness synthesizer to overwrite. Idempotent, best-effort,
// never errors.
func ResolveAliases(m map[string]any, scope Scope, rec observability.Recorder) {
	if m == nil {
		return
	}
	if rec == nil {
		rec = observability.Nop{}
	}
	for _, rule := range Rules(scope) {
		v, ok := m[rule.Alias]
		if !ok {
			continue
		}
		if _, exists := m[rule.Canonical]; exists {
			delete(m, rule.Alias)
			rec.Record(observability.Event{
				Kind:   observability.EventAliasDropped,
				Scope:  string(scope),
				Key:    rule.Alias,
				Detail: "canonical key " + rule.Canonical + " already present",
			})
			continue
		}
		m[rule.Canonical] = v
		delete(m, rule.Alias)
		rec.Record(observability.Event{
			Kind:   observability.EventAliasResolved,
			Scope:  string(scope),
			Key:    rule.Alias,
			Detail: "moved to " + rule.Canonical,
		})
	}
}
