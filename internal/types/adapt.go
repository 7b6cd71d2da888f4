package types

// AdaptedProject describes how the flagship project scope changed after a
// progress update.
type AdaptedProject struct {
	Changes        string          `json:"changes"`
	WeeklyFeatures []WeeklyFeature `json:"weekly_features"`
}

// AdaptedPlan is the output of the revision path. The adapted roadmap and
// project reuse the roadmap shapes but cover only the remaining days, so the
// exactly-30/exactly-4 rules deliberately do not apply here.
type AdaptedPlan struct {
	AdaptationReasoning string         `json:"adaptation_reasoning"`
	AdaptedRoadmap      Roadmap        `json:"adapted_roadmap"`
	AdaptedProject      AdaptedProject `json:"adapted_project"`
	Motivation          string         `json:"motivation"`
}
