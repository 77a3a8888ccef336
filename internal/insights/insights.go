// Package insights generates rules-based "future jobs" advice by merging
// a static baseline with country and industry override tables.
package insights

import (
	"fmt"
	"strings"
)

// Input is the (local-only, optional) user profile.
type Input struct {
	Country         string   `json:"country"`
	Industry        string   `json:"industry"`
	RoleOrStudy     string   `json:"roleOrStudy"`
	ExperienceLevel string   `json:"experienceLevel"` // student | junior | mid
	Skills          []string `json:"skills"`
}

// Insights is the generated advice payload. Field names follow the
// client contract.
type Insights struct {
	Summary           string   `json:"summary_plain_language"`
	JobsAtRisk        []string `json:"jobs_at_risk"`
	EmergingRoles     []string `json:"emerging_roles"`
	FastGrowingSkills []string `json:"fast_growing_skills"`
	DecliningSkills   []string `json:"declining_skills"`
	WhatThisMeans     []string `json:"what_this_means_for_you"`
	Rationale         string   `json:"rationale"`
}

// ParseSkills splits comma-separated skill text, dropping blanks.
func ParseSkills(skillsText string) []string {
	var out []string
	for _, s := range strings.Split(skillsText, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func uniqPreserveOrder(items []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.TrimSpace(item)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	return out
}

func capN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

// mergeList puts override entries ahead of the base, deduplicated.
func mergeList(base, extra []string) []string {
	return uniqPreserveOrder(append(append([]string{}, extra...), base...))
}

func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimSpace(item), strings.TrimSpace(s)) {
			return true
		}
	}
	return false
}

// Generate merges the baseline with country/industry overrides and
// renders the advice lines. Unknown keys fall back to global/general.
func Generate(input Input) Insights {
	country := input.Country
	if country == "" {
		country = "global"
	}
	industry := input.Industry
	if industry == "" {
		industry = "general"
	}
	level := input.ExperienceLevel
	if level == "" {
		level = "student"
	}

	co := countryOverrides[country]
	io := industryOverrides[industry]

	jobsAtRisk := capN(mergeList(baseline.JobsAtRisk, mergeList(io.JobsAtRisk, co.JobsAtRisk)), 6)
	emergingRoles := capN(mergeList(baseline.EmergingRoles, mergeList(io.EmergingRoles, co.EmergingRoles)), 6)
	growing := capN(mergeList(baseline.FastGrowingSkills, mergeList(io.FastGrowingSkills, co.FastGrowingSkills)), 8)
	declining := capN(mergeList(baseline.DecliningSkills, mergeList(io.DecliningSkills, co.DecliningSkills)), 6)

	cLabel := countryLabel(country)
	iLabel := industryLabel(industry)
	personalized := country != "global"

	var summary string
	if personalized {
		summary = fmt.Sprintf(
			"For %s (%s), the near-term shift is away from repetitive work and toward roles that combine digital tools, data quality, and risk awareness. This is a simplified, MVP-level view inspired by themes from the WEF Future of Jobs reports.",
			cLabel, iLabel)
	} else {
		summary = "Global trends continue to shift work away from repetitive tasks and toward roles that combine digital tools, data quality, and risk awareness. This is a simplified, MVP-level view inspired by themes from the WEF Future of Jobs reports."
	}

	var growingMatches, decliningMatches []string
	for _, s := range input.Skills {
		if containsFold(growing, s) {
			growingMatches = append(growingMatches, s)
		}
		if containsFold(declining, s) {
			decliningMatches = append(decliningMatches, s)
		}
	}

	var complementary []string
	for _, s := range growing {
		if !containsFold(input.Skills, s) {
			complementary = append(complementary, s)
		}
	}
	complementary = capN(complementary, 3)

	var stageLine string
	switch level {
	case "mid":
		stageLine = "At mid-level, prioritize impact stories and cross-functional skills that travel across teams."
	case "junior":
		stageLine = "At junior level, build fundamentals and prove consistency through small, shipped projects."
	default:
		stageLine = "As a student/early starter, focus on transferable skills and a small portfolio of proof."
	}

	projectLine := "Pick 1-2 growing skills and apply them inside a small project (even a mini portfolio)."
	if industry != "general" {
		projectLine = fmt.Sprintf("Pick 1-2 growing skills and apply them inside a small %s-relevant project (even a mini portfolio).", iLabel)
	}

	lines := []string{
		projectLine,
		stageLine,
	}
	if role := strings.TrimSpace(input.RoleOrStudy); role != "" {
		lines = append(lines, fmt.Sprintf("Because you selected %q, bias your next steps toward skills that appear repeatedly in %s job descriptions.", role, iLabel))
	}
	lines = append(lines,
		"Reduce reliance on repetitive/manual workflows; learn one automation-friendly tool or method.",
		"Track job descriptions in your country/industry weekly and note recurring tools/skills to prioritize.",
	)
	if len(input.Skills) > 0 {
		growingPart := "none matched"
		if len(growingMatches) > 0 {
			growingPart = strings.Join(growingMatches, ", ")
		}
		decliningPart := "none matched"
		if len(decliningMatches) > 0 {
			decliningPart = strings.Join(decliningMatches, ", ")
		}
		lines = append(lines, fmt.Sprintf("Your skills check: growing (%s); declining (%s).", growingPart, decliningPart))
		if len(complementary) > 0 {
			lines = append(lines, fmt.Sprintf("Consider adding: %s.", strings.Join(complementary, ", ")))
		}
	}
	whatThisMeans := capN(uniqPreserveOrder(lines), 5)

	var rationale string
	if personalized {
		rationale = fmt.Sprintf("Highlighted items are prioritized using your selections (country: %s; industry: %s) and a small curated MVP dataset.", cLabel, iLabel)
		if len(input.Skills) > 0 {
			rationale += " Skills were used to highlight matches and suggest complements."
		}
	} else {
		rationale = "No country selected, so this uses a global baseline. Add a country to get a more tailored, MVP-level view."
	}

	return Insights{
		Summary:           summary,
		JobsAtRisk:        jobsAtRisk,
		EmergingRoles:     emergingRoles,
		FastGrowingSkills: growing,
		DecliningSkills:   declining,
		WhatThisMeans:     whatThisMeans,
		Rationale:         rationale,
	}
}
