package normalize

import (
	"fmt"
	"sort"

	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/types"
)

const (
	roadmapDays     = 30
	planWeeks       = 4
	defaultDayHours = 2
)

// defaultWeeklyFeatures is the fixed fallback feature per project week.
var defaultWeeklyFeatures = [planWeeks]string{
	"Core setup & architecture",
	"Feature development",
	"Integration & testing",
	"Polish & deployment",
}

// Complete converts a Draft into a PlanDocument satisfying every structural
// invariant: days 1..30 present and sorted, milestones and weekly features
// covering weeks 1..4, and all required project strings non-empty. Content
// already present is preserved verbatim; only missing or empty slots are
// synthesized. Re-running Complete on its own output is a no-op.
func Complete(d *Draft, role string, rec observability.Recorder) *types.PlanDocument {
	if rec == nil {
		rec = observability.Nop{}
	}
	if d == nil {
		d = &Draft{}
	}

	doc := &types.PlanDocument{Reasoning: d.Reasoning}

	if d.SkillMap != nil {
		doc.SkillMap = *d.SkillMap
	} else {
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "document", Key: "skill_map"})
	}
	if d.RoleRequirements != nil {
		doc.RoleRequirements = *d.RoleRequirements
	} else {
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "document", Key: "role_requirements"})
	}
	if d.GapAnalysis != nil {
		doc.GapAnalysis = *d.GapAnalysis
	} else {
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "document", Key: "gap_analysis"})
	}
	if d.Roadmap != nil {
		doc.Roadmap = *d.Roadmap
	} else {
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "document", Key: "roadmap"})
	}
	if d.FlagshipProject != nil {
		doc.FlagshipProject = *d.FlagshipProject
	} else {
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "document", Key: "flagship_project"})
	}

	if doc.Reasoning == "" {
		doc.Reasoning = fmt.Sprintf("Career analysis generated for %s role based on the provided resume.", role)
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "document", Key: "reasoning"})
	}

	completeDays(&doc.Roadmap, role, rec)
	completeMilestones(&doc.Roadmap, role, rec)
	completeProject(&doc.FlagshipProject, role, rec)

	ensureSlices(doc)
	return doc
}

// completeDays appends a synthesized entry for every day number 1..30 not
// present, then re-sorts ascending by day. Existing entries are never
// altered, even when their own fields are empty.
func completeDays(r *types.Roadmap, role string, rec observability.Recorder) {
	present := make(map[int]bool, len(r.Days))
	for _, d := range r.Days {
		present[d.Day] = true
	}
	for day := 1; day <= roadmapDays; day++ {
		if present[day] {
			continue
		}
		r.Days = append(r.Days, types.DayPlan{
			Day:       day,
			Objective: fmt.Sprintf("Self-study: %s skills (Day %d)", role, day),
			Resource:  "Online tutorials & documentation",
			Task:      "Practice and build portfolio",
			Hours:     defaultDayHours,
		})
		rec.Record(observability.Event{
			Kind:  observability.EventSlotSynthesized,
			Scope: "roadmap",
			Key:   fmt.Sprintf("day_%d", day),
		})
	}
	sort.SliceStable(r.Days, func(i, j int) bool { return r.Days[i].Day < r.Days[j].Day })
}

// completeMilestones fills weeks 1..4, sorts by week, and truncates to the
// first four entries in week order.
func completeMilestones(r *types.Roadmap, role string, rec observability.Recorder) {
	present := make(map[int]bool, len(r.WeeklyMilestones))
	for _, m := range r.WeeklyMilestones {
		present[m.Week] = true
	}
	for week := 1; week <= planWeeks; week++ {
		if present[week] {
			continue
		}
		r.WeeklyMilestones = append(r.WeeklyMilestones, types.WeeklyMilestone{
			Week:         week,
			Milestone:    fmt.Sprintf("Week %d progress checkpoint", week),
			SkillsGained: []string{fmt.Sprintf("%s foundations", role)},
		})
		rec.Record(observability.Event{
			Kind:  observability.EventSlotSynthesized,
			Scope: "roadmap",
			Key:   fmt.Sprintf("milestone_%d", week),
		})
	}
	sort.SliceStable(r.WeeklyMilestones, func(i, j int) bool {
		return r.WeeklyMilestones[i].Week < r.WeeklyMilestones[j].Week
	})
	if len(r.WeeklyMilestones) > planWeeks {
		r.WeeklyMilestones = r.WeeklyMilestones[:planWeeks]
	}
}

// completeProject defaults each empty scalar field independently, fills the
// four weekly feature slots, and backfills empty feature/description fields
// of weeks that are present.
func completeProject(p *types.FlagshipProject, role string, rec observability.Recorder) {
	if p.Title == "" {
		p.Title = fmt.Sprintf("%s Portfolio Project", role)
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "project", Key: "title"})
	}
	if p.ProblemStatement == "" {
		p.ProblemStatement = fmt.Sprintf("Build a project demonstrating %s skills", role)
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "project", Key: "problem_statement"})
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	if p.PortfolioQuality == "" {
		p.PortfolioQuality = "Demonstrates core competencies"
		rec.Record(observability.Event{Kind: observability.EventSlotSynthesized, Scope: "project", Key: "portfolio_quality"})
	}

	present := make(map[int]bool, len(p.WeeklyFeatures))
	for _, f := range p.WeeklyFeatures {
		present[f.Week] = true
	}
	for week := 1; week <= planWeeks; week++ {
		def := defaultWeeklyFeatures[week-1]
		if !present[week] {
			p.WeeklyFeatures = append(p.WeeklyFeatures, types.WeeklyFeature{
				Week:        week,
				Feature:     def,
				Description: fmt.Sprintf("Week %d: %s", week, def),
			})
			rec.Record(observability.Event{
				Kind:  observability.EventSlotSynthesized,
				Scope: "project",
				Key:   fmt.Sprintf("feature_%d", week),
			})
			continue
		}
		// Week exists: backfill only the empty fields from the default table.
		for i := range p.WeeklyFeatures {
			if p.WeeklyFeatures[i].Week != week {
				continue
			}
			if p.WeeklyFeatures[i].Feature == "" {
				p.WeeklyFeatures[i].Feature = def
				rec.Record(observability.Event{
					Kind:  observability.EventSlotSynthesized,
					Scope: "project",
					Key:   fmt.Sprintf("feature_%d.feature", week),
				})
			}
			if p.WeeklyFeatures[i].Description == "" {
				p.WeeklyFeatures[i].Description = fmt.Sprintf("Week %d: %s", week, def)
				rec.Record(observability.Event{
					Kind:  observability.EventSlotSynthesized,
					Scope: "project",
					Key:   fmt.Sprintf("feature_%d.description", week),
				})
			}
		}
	}
	sort.SliceStable(p.WeeklyFeatures, func(i, j int) bool {
		return p.WeeklyFeatures[i].Week < p.WeeklyFeatures[j].Week
	})
	if len(p.WeeklyFeatures) > planWeeks {
		p.WeeklyFeatures = p.WeeklyFeatures[:planWeeks]
	}
}

// ensureSlices replaces nil slices with empty ones so the document always
// serializes list fields as [] and repeated normalization is byte-stable.
func ensureSlices(doc *types.PlanDocument) {
	if doc.SkillMap.Skills == nil {
		doc.SkillMap.Skills = []types.Skill{}
	}
	if doc.SkillMap.Strengths == nil {
		doc.SkillMap.Strengths = []string{}
	}
	if doc.SkillMap.Weaknesses == nil {
		doc.SkillMap.Weaknesses = []string{}
	}
	if doc.RoleRequirements.CoreTechnical == nil {
		doc.RoleRequirements.CoreTechnical = []string{}
	}
	if doc.RoleRequirements.SupportingSkills == nil {
		doc.RoleRequirements.SupportingSkills = []string{}
	}
	if doc.RoleRequirements.TheoryMath == nil {
		doc.RoleRequirements.TheoryMath = []string{}
	}
	if doc.RoleRequirements.Tools == nil {
		doc.RoleRequirements.Tools = []string{}
	}
	if doc.RoleRequirements.SoftSkills == nil {
		doc.RoleRequirements.SoftSkills = []string{}
	}
	if doc.RoleRequirements.PortfolioExpectations == nil {
		doc.RoleRequirements.PortfolioExpectations = []string{}
	}
	if doc.GapAnalysis.Critical == nil {
		doc.GapAnalysis.Critical = []types.GapItem{}
	}
	if doc.GapAnalysis.Important == nil {
		doc.GapAnalysis.Important = []types.GapItem{}
	}
	if doc.GapAnalysis.NiceToHave == nil {
		doc.GapAnalysis.NiceToHave = []types.GapItem{}
	}
}

// Normalize runs the full repair sequence over a free-form generator result:
// alias resolution at document and project scope, lenient draft decoding,
// then completeness synthesis.
func Normalize(m map[string]any, role string, rec observability.Recorder) *types.PlanDocument {
	ResolveAliases(m, ScopeDocument, rec)
	if pm, ok := m["flagship_project"].(map[string]any); ok {
		ResolveAliases(pm, ScopeProject, rec)
	}
	return Complete(DraftFromMap(m), role, rec)
}
