package normalize

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-navigator/internal/observability"
	"github.com/jonathan/career-navigator/internal/types"
)

func assertComplete(t *testing.T, doc *types.PlanDocument) {
	t.Helper()
	require.Len(t, doc.Roadmap.Days, 30)
	for i, d := range doc.Roadmap.Days {
		assert.Equal(t, i+1, d.Day)
	}
	require.Len(t, doc.Roadmap.WeeklyMilestones, 4)
	for i, m := range doc.Roadmap.WeeklyMilestones {
		assert.Equal(t, i+1, m.Week)
		assert.NotEmpty(t, m.Milestone)
	}
	require.Len(t, doc.FlagshipProject.WeeklyFeatures, 4)
	for i, f := range doc.FlagshipProject.WeeklyFeatures {
		assert.Equal(t, i+1, f.Week)
		assert.NotEmpty(t, f.Feature)
		assert.NotEmpty(t, f.Description)
	}
	assert.NotEmpty(t, doc.FlagshipProject.Title)
	assert.NotEmpty(t, doc.FlagshipProject.ProblemStatement)
	assert.NotEmpty(t, doc.FlagshipProject.PortfolioQuality)
	assert.NotEmpty(t, doc.Reasoning)
}

func TestComplete_EmptyDraft(t *testing.T) {
	doc := Complete(&Draft{}, "ML Engineer", nil)
	assertComplete(t, doc)

	assert.Equal(t, "ML Engineer Portfolio Project", doc.FlagshipProject.Title)
	assert.Contains(t, doc.Reasoning, "ML Engineer")
}

func TestComplete_ArbitraryMissingDaySubsets(t *testing.T) {
	subsets := [][]int{
		{},
		{1},
		{30},
		{1, 15, 30},
		{2, 3, 5, 7, 11, 13, 17, 19, 23, 29},
	}
	for _, present := range subsets {
		t.Run(fmt.Sprintf("present=%v", present), func(t *testing.T) {
			r := &types.Roadmap{}
			for _, day := range present {
				r.Days = append(r.Days, types.DayPlan{Day: day, Objective: "keep"})
			}
			doc := Complete(&Draft{Roadmap: r}, "Data Engineer", nil)
			assertComplete(t, doc)

			kept := map[int]bool{}
			for _, day := range present {
				kept[day] = true
			}
			for _, d := range doc.Roadmap.Days {
				if kept[d.Day] {
					assert.Equal(t, "keep", d.Objective)
				} else {
					assert.Contains(t, d.Objective, "Self-study")
				}
			}
		})
	}
}

func TestComplete_ExistingDayPreservedVerbatim(t *testing.T) {
	// An existing entry keeps its own empty fields; synthesis fills whole
	// missing days only.
	r := &types.Roadmap{Days: []types.DayPlan{
		{Day: 5, Objective: "X", Resource: "", Task: ""},
	}}

	doc := Complete(&Draft{Roadmap: r}, "ML Engineer", nil)
	assertComplete(t, doc)

	day5 := doc.Roadmap.Days[4]
	assert.Equal(t, "X", day5.Objective)
	assert.Equal(t, "", day5.Resource)
	assert.Equal(t, "", day5.Task)

	day6 := doc.Roadmap.Days[5]
	assert.Equal(t, "Self-study: ML Engineer skills (Day 6)", day6.Objective)
	assert.Equal(t, "Online tutorials & documentation", day6.Resource)
	assert.Equal(t, float64(2), day6.Hours)
}

func TestComplete_MilestoneOverflowTruncated(t *testing.T) {
	r := &types.Roadmap{WeeklyMilestones: []types.WeeklyMilestone{
		{Week: 4, Milestone: "ship"},
		{Week: 1, Milestone: "start"},
		{Week: 6, Milestone: "beyond the plan"},
	}}

	doc := Complete(&Draft{Roadmap: r}, "ML Engineer", nil)
	assertComplete(t, doc)

	assert.Equal(t, "start", doc.Roadmap.WeeklyMilestones[0].Milestone)
	assert.Equal(t, "ship", doc.Roadmap.WeeklyMilestones[3].Milestone)
}

func TestComplete_ProjectFalsyFieldsDefaulted(t *testing.T) {
	p := &types.FlagshipProject{
		Title:     "MedScan",
		TechStack: []string{"Python"},
	}

	doc := Complete(&Draft{FlagshipProject: p}, "ML Engineer", nil)

	assert.Equal(t, "MedScan", doc.FlagshipProject.Title)
	assert.Equal(t, []string{"Python"}, doc.FlagshipProject.TechStack)
	assert.Equal(t, "Build a project demonstrating ML Engineer skills", doc.FlagshipProject.ProblemStatement)
	assert.Equal(t, "Demonstrates core competencies", doc.FlagshipProject.PortfolioQuality)
}

func TestComplete_FeatureWeekBackfill(t *testing.T) {
	// A present week keeps its non-empty fields and backfills empty ones
	// from the default for that week.
	p := &types.FlagshipProject{WeeklyFeatures: []types.WeeklyFeature{
		{Week: 2, Feature: "Custom ingest", Description: ""},
	}}

	doc := Complete(&Draft{FlagshipProject: p}, "ML Engineer", nil)

	week2 := doc.FlagshipProject.WeeklyFeatures[1]
	assert.Equal(t, "Custom ingest", week2.Feature)
	assert.Equal(t, "Week 2: Feature development", week2.Description)

	week1 := doc.FlagshipProject.WeeklyFeatures[0]
	assert.Equal(t, "Core setup & architecture", week1.Feature)
}

func TestComplete_SlotEventsEmitted(t *testing.T) {
	rec := &observability.MemoryRecorder{}
	Complete(&Draft{}, "ML Engineer", rec)

	events := rec.Filter(observability.EventSlotSynthesized)
	assert.NotEmpty(t, events)

	keys := map[string]bool{}
	for _, e := range events {
		keys[e.Key] = true
	}
	assert.True(t, keys["day_1"])
	assert.True(t, keys["milestone_4"])
	assert.True(t, keys["title"])
	assert.True(t, keys["reasoning"])
}

func TestNormalize_Idempotent(t *testing.T) {
	m := map[string]any{
		"project": map[string]any{
			"name":  "MedScan",
			"stack": []any{"Python"},
		},
		"roadmap": map[string]any{
			"days": []any{
				map[string]any{"day": float64(3), "objective": "learn pandas", "resource": "docs", "task": "drills", "hours": float64(1.5)},
			},
		},
	}

	first := Normalize(m, "ML Engineer", nil)
	b1, err := json.Marshal(first)
	require.NoError(t, err)

	second := Normalize(DocumentToMap(first), "ML Engineer", nil)
	b2, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, string(b1), string(b2))
}

func TestNormalize_ProjectAliasInsideDocumentAlias(t *testing.T) {
	m := map[string]any{
		"project": map[string]any{
			"name":    "MedScan",
			"problem": "Radiology backlogs",
		},
	}

	doc := Normalize(m, "ML Engineer", nil)
	assertComplete(t, doc)

	assert.Equal(t, "MedScan", doc.FlagshipProject.Title)
	assert.Equal(t, "Radiology backlogs", doc.FlagshipProject.ProblemStatement)
}

func TestNormalize_WrongTypedSectionDiscarded(t *testing.T) {
	m := map[string]any{
		"skill_map": "not an object",
		"roadmap": map[string]any{
			"days": []any{
				"not a day",
				map[string]any{"day": float64(1), "objective": "keep"},
			},
		},
	}

	doc := Normalize(m, "ML Engineer", nil)
	assertComplete(t, doc)

	assert.Empty(t, doc.SkillMap.Skills)
	assert.Equal(t, "keep", doc.Roadmap.Days[0].Objective)
}

func TestNormalize_OmittedFieldsGetDefaults(t *testing.T) {
	// Keys the generator omitted entirely take their model defaults at the
	// decode boundary.
	m := map[string]any{
		"roadmap": map[string]any{
			"days": []any{
				map[string]any{"day": float64(5), "objective": "X"},
			},
		},
		"skill_map": map[string]any{
			"skills": []any{
				map[string]any{"name": "Python"},
			},
		},
	}

	doc := Normalize(m, "ML Engineer", nil)
	assertComplete(t, doc)

	day5 := doc.Roadmap.Days[4]
	assert.Equal(t, "X", day5.Objective)
	assert.Equal(t, 2.0, day5.Hours)

	require.Len(t, doc.SkillMap.Skills, 1)
	assert.Equal(t, "Python", doc.SkillMap.Skills[0].Name)
	assert.Equal(t, "beginner", doc.SkillMap.Skills[0].Level)
	assert.Equal(t, "technical", doc.SkillMap.Skills[0].Category)
}

func TestDraftFromMap_PresentEmptyFieldsUntouched(t *testing.T) {
	// A key that is present keeps its value even when falsy; only absence
	// triggers the default.
	d := DraftFromMap(map[string]any{
		"roadmap": map[string]any{
			"days": []any{
				map[string]any{"day": float64(1), "objective": "X", "hours": float64(0)},
			},
		},
		"skill_map": map[string]any{
			"skills": []any{
				map[string]any{"name": "Go", "level": "", "category": ""},
				map[string]any{"name": "SQL"},
			},
		},
	})

	require.NotNil(t, d.Roadmap)
	require.Len(t, d.Roadmap.Days, 1)
	assert.Equal(t, 0.0, d.Roadmap.Days[0].Hours)

	require.NotNil(t, d.SkillMap)
	require.Len(t, d.SkillMap.Skills, 2)
	assert.Equal(t, "", d.SkillMap.Skills[0].Level)
	assert.Equal(t, "", d.SkillMap.Skills[0].Category)
	assert.Equal(t, "beginner", d.SkillMap.Skills[1].Level)
	assert.Equal(t, "technical", d.SkillMap.Skills[1].Category)
}

func TestDraftFromMap_NilAndEmpty(t *testing.T) {
	d := DraftFromMap(nil)
	require.NotNil(t, d)
	assert.Nil(t, d.Roadmap)

	d = DraftFromMap(map[string]any{})
	assert.Nil(t, d.SkillMap)
	assert.Nil(t, d.FlagshipProject)
	assert.Empty(t, d.Reasoning)
}
