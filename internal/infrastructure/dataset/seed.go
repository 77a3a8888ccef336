package dataset

import "github.com/breakroom-app/breakroom/internal/domain"

// SeedPosts returns the starter reviews shown before anyone has posted.
// Scores only drive "top" sorting; dates are day-precision on purpose.
func SeedPosts() []domain.Post {
	return []domain.Post{
		{
			ID:          "p_001",
			CompanyID:   "amazon",
			Category:    "red_flags",
			Title:       "High pace culture—not for everyone",
			Body:        "Expectations are intense. You need to be comfortable with ambiguity and fast iteration. Document everything and manage up proactively.",
			AuthorLabel: "Anonymous K7Q2",
			AuthorKey:   "seed_1",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-12-01",
			Score:       34,
		},
		{
			ID:          "p_002",
			CompanyID:   "amazon",
			Category:    "interview_process",
			Title:       "Bar raiser process is thorough",
			Body:        "Multiple loops with different teams. Prepare STAR stories for leadership principles. Expect 5-6 hours of interviews total.",
			AuthorLabel: "Anonymous W3PM",
			AuthorKey:   "seed_2",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-11-18",
			Score:       28,
		},
		{
			ID:          "p_003",
			CompanyID:   "walmart",
			Category:    "green_flags",
			Title:       "Benefits are solid for retail",
			Body:        "Healthcare coverage starts on day one. Education benefits and career development programs are real if you use them.",
			AuthorLabel: "Anonymous D9XR",
			AuthorKey:   "seed_3",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-11-25",
			Score:       22,
		},
		{
			ID:          "p_004",
			CompanyID:   "walmart",
			Category:    "salary_reality",
			Title:       "Retail wages improved but vary by location",
			Body:        "Starting pay increased company-wide, but COL adjustments matter. Check local rates before accepting.",
			AuthorLabel: "Anonymous T4HN",
			AuthorKey:   "seed_4",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-10-30",
			Score:       15,
		},
		{
			ID:          "p_005",
			CompanyID:   "microsoft",
			Category:    "management_politics",
			Title:       "Manager quality varies widely",
			Body:        "Your experience depends heavily on your direct manager. Ask about team dynamics during interviews.",
			AuthorLabel: "Anonymous B8SC",
			AuthorKey:   "seed_5",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-12-05",
			Score:       19,
		},
		{
			ID:          "p_006",
			CompanyID:   "microsoft",
			Category:    "career_growth_reality",
			Title:       "Internal mobility is encouraged",
			Body:        "After 18 months you can transfer internally. Explore before committing long-term. Promotions follow a clear rubric.",
			AuthorLabel: "Anonymous F2VJ",
			AuthorKey:   "seed_6",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-11-08",
			Score:       26,
		},
		{
			ID:          "p_007",
			CompanyID:   "apple",
			Category:    "red_flags",
			Title:       "Secrecy culture can be isolating",
			Body:        "Teams are siloed. You won't know what adjacent teams are building. If you need cross-team collaboration, clarify early.",
			AuthorLabel: "Anonymous M6YD",
			AuthorKey:   "seed_7",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-11-15",
			Score:       31,
		},
		{
			ID:          "p_008",
			CompanyID:   "google-alphabet",
			Category:    "green_flags",
			Title:       "Learning resources are endless",
			Body:        "Internal tech talks, reading groups, and senior mentorship if you seek it out. Take advantage early.",
			AuthorLabel: "Anonymous R5KT",
			AuthorKey:   "seed_8",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-11-20",
			Score:       29,
		},
		{
			ID:          "p_009",
			CompanyID:   "tesla",
			Category:    "management_politics",
			Title:       "Fast-moving but expect long hours",
			Body:        "Mission-driven culture attracts true believers. Work-life balance is not the priority. Know what you're signing up for.",
			AuthorLabel: "Anonymous H3ZW",
			AuthorKey:   "seed_9",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-12-03",
			Score:       17,
		},
		{
			ID:          "p_010",
			CompanyID:   "meta-facebook",
			Category:    "salary_reality",
			Title:       "Comp is top-tier but tied to stock",
			Body:        "Base + RSUs make up total comp. Refreshers depend on performance. Understand your equity vesting schedule.",
			AuthorLabel: "Anonymous X9GA",
			AuthorKey:   "seed_10",
			Status:      domain.StatusVisible,
			CreatedDate: "2025-11-10",
			Score:       33,
		},
	}
}
