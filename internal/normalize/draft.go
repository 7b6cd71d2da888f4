package normalize

import (
	"encoding/json"

	"github.com/jonathan/career-navigator/internal/types"
)

// Draft is the intermediate representation of a plan document during repair.
// Every section is optional; the completeness synthesizer converts a Draft
// into a strict PlanDocument once all invariants hold.
type Draft struct {
	SkillMap         *types.SkillMap
	RoleRequirements *types.RoleRequirements
	GapAnalysis      *types.GapAnalysis
	Roadmap          *types.Roadmap
	FlagshipProject  *types.FlagshipProject
	Reasoning        string
}

// Decode-boundary defaults for keys the generator omitted entirely. A key
// that is present with an empty value is never replaced.
const (
	defaultSkillLevel    = "beginner"
	defaultSkillCategory = "technical"
)

// DraftFromMap decodes a free-form (post-alias-resolution) map into a Draft.
// Decoding is lenient per section and per list element: anything that does
// not fit its slot is discarded and left for the synthesizer to fill.
func DraftFromMap(m map[string]any) *Draft {
	d := &Draft{}
	if m == nil {
		return d
	}

	if v, ok := m["skill_map"]; ok {
		var sm types.SkillMap
		if decodeInto(v, &sm) {
			applySkillDefaults(v, &sm)
			d.SkillMap = &sm
		}
	}
	if v, ok := m["role_requirements"]; ok {
		var rr types.RoleRequirements
		if decodeInto(v, &rr) {
			d.RoleRequirements = &rr
		}
	}
	if v, ok := m["gap_analysis"]; ok {
		var ga types.GapAnalysis
		if decodeInto(v, &ga) {
			d.GapAnalysis = &ga
		}
	}
	if rm, ok := m["roadmap"].(map[string]any); ok {
		d.Roadmap = decodeRoadmap(rm)
	}
	if pm, ok := m["flagship_project"].(map[string]any); ok {
		d.FlagshipProject = decodeProject(pm)
	}
	if s, ok := m["reasoning"].(string); ok {
		d.Reasoning = s
	}
	return d
}

// decodeRoadmap decodes days and milestones element-wise so that one
// malformed entry does not discard the rest.
func decodeRoadmap(rm map[string]any) *types.Roadmap {
	r := &types.Roadmap{}
	if list, ok := rm["days"].([]any); ok {
		for _, e := range list {
			var dp types.DayPlan
			if decodeInto(e, &dp) {
				if em, ok := e.(map[string]any); ok {
					if _, present := em["hours"]; !present {
						dp.Hours = defaultDayHours
					}
				}
				r.Days = append(r.Days, dp)
			}
		}
	}
	if list, ok := rm["weekly_milestones"].([]any); ok {
		for _, e := range list {
			var wm types.WeeklyMilestone
			if decodeInto(e, &wm) {
				r.WeeklyMilestones = append(r.WeeklyMilestones, wm)
			}
		}
	}
	return r
}

// decodeProject decodes scalar fields independently so a wrong-typed field
// degrades to its zero value instead of losing the whole project.
func decodeProject(pm map[string]any) *types.FlagshipProject {
	p := &types.FlagshipProject{}
	decodeInto(pm["title"], &p.Title)
	decodeInto(pm["problem_statement"], &p.ProblemStatement)
	decodeInto(pm["tech_stack"], &p.TechStack)
	decodeInto(pm["portfolio_quality"], &p.PortfolioQuality)
	if list, ok := pm["weekly_features"].([]any); ok {
		for _, e := range list {
			var wf types.WeeklyFeature
			if decodeInto(e, &wf) {
				p.WeeklyFeatures = append(p.WeeklyFeatures, wf)
			}
		}
	}
	return p
}

// applySkillDefaults fills level and category on skills whose source object
// omitted the key. Decoded skills line up 1:1 with the raw list because the
// skill map only survives decoding as a whole.
func applySkillDefaults(v any, sm *types.SkillMap) {
	m, ok := v.(map[string]any)
	if !ok {
		return
	}
	list, ok := m["skills"].([]any)
	if !ok {
		return
	}
	for i, e := range list {
		if i >= len(sm.Skills) {
			return
		}
		em, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if _, present := em["level"]; !present {
			sm.Skills[i].Level = defaultSkillLevel
		}
		if _, present := em["category"]; !present {
			sm.Skills[i].Category = defaultSkillCategory
		}
	}
}

// decodeInto re-marshals v into target, reporting whether it fit.
func decodeInto(v any, target any) bool {
	if v == nil {
		return false
	}
	b, err := json.Marshal(v)
	if err != nil {
		return false
	}
	return json.Unmarshal(b, target) == nil
}

// DocumentToMap converts a finalized document back to its map form so it can
// be re-run through alias resolution and synthesis after a merge.
func DocumentToMap(doc *types.PlanDocument) map[string]any {
	b, err := json.Marshal(doc)
	if err != nil {
		return map[string]any{}
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return map[string]any{}
	}
	return m
}
