// Package prompts - build.go constructs the Career Brain prompts from the
// embedded templates.
package prompts

import (
	"fmt"
	"strings"
)

const promptFile = "careerbrain.json"

const (
	maxPromptSkills = 10
	maxPromptGaps   = 8
)

// BuildRoadmap constructs the first-call prompt: skill analysis, gap
// analysis, and the 30-day roadmap. githubContext may be empty.
func BuildRoadmap(resumeText, dreamRole, roleContext, githubContext string) string {
	githubSection := ""
	if strings.TrimSpace(githubContext) != "" {
		githubSection = fmt.Sprintf("\nGITHUB PROFILE:\n%s\n", githubContext)
	}
	template := MustGet(promptFile, "roadmap")
	return Format(template, map[string]string{
		"ResumeText":    resumeText,
		"DreamRole":     dreamRole,
		"RoleContext":   roleContext,
		"GitHubSection": githubSection,
	})
}

// BuildProject constructs the second-call prompt from the normalized first
// call: a flagship project addressing the extracted skills and gaps. At most
// 10 skills and 8 gaps are embedded.
func BuildProject(dreamRole string, skills, gaps []string) string {
	skillsText := "general skills"
	if len(skills) > 0 {
		if len(skills) > maxPromptSkills {
			skills = skills[:maxPromptSkills]
		}
		skillsText = strings.Join(skills, ", ")
	}
	gapsText := "core role skills"
	if len(gaps) > 0 {
		if len(gaps) > maxPromptGaps {
			gaps = gaps[:maxPromptGaps]
		}
		gapsText = strings.Join(gaps, ", ")
	}

	template := MustGet(promptFile, "flagship-project")
	return Format(template, map[string]string{
		"DreamRole": dreamRole,
		"Skills":    skillsText,
		"Gaps":      gapsText,
	})
}

// BuildAdapt constructs the revision prompt embedding the stored plan JSON
// and the progress report.
func BuildAdapt(originalPlanJSON string, daysCompleted, daysMissed int, reason string, confidence int) string {
	template := MustGet(promptFile, "adapt-roadmap")
	return Format(template, map[string]string{
		"OriginalPlan":  originalPlanJSON,
		"DaysCompleted": fmt.Sprintf("%d", daysCompleted),
		"DaysMissed":    fmt.Sprintf("%d", daysMissed),
		"Reason":        reason,
		"Confidence":    fmt.Sprintf("%d", confidence),
		"NextDay":       fmt.Sprintf("%d", daysCompleted+daysMissed+1),
	})
}
