package usecase

import (
	"context"

	"github.com/breakroom-app/breakroom/internal/insights"
)

// ProfileInput mirrors the locally persisted client profile.
type ProfileInput struct {
	Country         string `json:"country"`
	Industry        string `json:"industry"`
	RoleOrStudy     string `json:"roleOrStudy"`
	ExperienceLevel string `json:"experienceLevel"`
	SkillsText      string `json:"skillsText"`
}

type InsightUsecase struct{}

func NewInsightUsecase() *InsightUsecase {
	return &InsightUsecase{}
}

// Generate turns a profile into rules-based future-jobs advice.
func (uc *InsightUsecase) Generate(ctx context.Context, profile ProfileInput) insights.Insights {
	return insights.Generate(insights.Input{
		Country:         profile.Country,
		Industry:        profile.Industry,
		RoleOrStudy:     profile.RoleOrStudy,
		ExperienceLevel: profile.ExperienceLevel,
		Skills:          insights.ParseSkills(profile.SkillsText),
	})
}
