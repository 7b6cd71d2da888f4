// Package types provides type definitions for structured data used throughout the career-navigator system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// PlanDocument is the full output of a generation request: skill analysis,
// role requirements, gap analysis, a 30-day roadmap, and a flagship project.
type PlanDocument struct {
	SkillMap         SkillMap         `json:"skill_map"`
	RoleRequirements RoleRequirements `json:"role_requirements"`
	GapAnalysis      GapAnalysis      `json:"gap_analysis"`
	Roadmap          Roadmap          `json:"roadmap"`
	FlagshipProject  FlagshipProject  `json:"flagship_project"`
	Reasoning        string           `json:"reasoning"`
}

// Skill represents a single skill with a proficiency level and category.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`    // beginner | intermediate | advanced
	Category string `json:"category"` // technical | soft | tool
}

// SkillMap represents the extracted skill inventory plus free-text
// strengths and weaknesses. Skill names are not required to be unique.
type SkillMap struct {
	Skills     []Skill  `json:"skills"`
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// RoleRequirements represents what the target role demands, bucketed by kind.
type RoleRequirements struct {
	CoreTechnical         []string `json:"core_technical"`
	SupportingSkills      []string `json:"supporting_skills"`
	TheoryMath            []string `json:"theory_math"`
	Tools                 []string `json:"tools"`
	SoftSkills            []string `json:"soft_skills"`
	PortfolioExpectations []string `json:"portfolio_expectations"`
}

// GapItem represents one missing skill and why it matters.
type GapItem struct {
	Skill  string `json:"skill"`
	Reason string `json:"reason"`
}

// GapAnalysis buckets gaps by severity. Bucket membership carries the
// meaning; nothing forces the buckets to be disjoint.
type GapAnalysis struct {
	Critical   []GapItem `json:"critical"`
	Important  []GapItem `json:"important"`
	NiceToHave []GapItem `json:"nice_to_have"`
}

// DayPlan represents a single day of the roadmap.
type DayPlan struct {
	Day       int     `json:"day"`
	Objective string  `json:"objective"`
	Resource  string  `json:"resource"`
	Task      string  `json:"task"`
	Output    string  `json:"output,omitempty"`
	Hours     float64 `json:"hours"`
}

// WeeklyMilestone represents the checkpoint for one of the four weeks.
type WeeklyMilestone struct {
	Week         int      `json:"week"`
	Milestone    string   `json:"milestone"`
	SkillsGained []string `json:"skills_gained"`
}

// Roadmap holds the 30-day plan. In a finalized PlanDocument the day values
// are exactly 1..30 sorted ascending and the milestones cover weeks 1..4.
type Roadmap struct {
	Days             []DayPlan         `json:"days"`
	WeeklyMilestones []WeeklyMilestone `json:"weekly_milestones"`
}

// WeeklyFeature represents one week of flagship project work.
type WeeklyFeature struct {
	Week        int    `json:"week"`
	Feature     string `json:"feature"`
	Description string `json:"description"`
}

// FlagshipProject represents the portfolio project built alongside the
// roadmap. In a finalized PlanDocument every required string is non-empty
// and weekly features cover weeks 1..4.
type FlagshipProject struct {
	Title            string          `json:"title"`
	ProblemStatement string          `json:"problem_statement"`
	TechStack        []string        `json:"tech_stack"`
	WeeklyFeatures   []WeeklyFeature `json:"weekly_features"`
	PortfolioQuality string          `json:"portfolio_quality"`
}
