package domain

// Categories is the fixed set of post topics, in display order.
var Categories = []string{
	"red_flags",
	"green_flags",
	"salary_reality",
	"management_politics",
	"interview_process",
	"career_growth_reality",
}

func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// ReportReasons the app offers when flagging a post.
var ReportReasons = []string{
	"doxxing_or_identity",
	"hate_or_harassment",
	"illegal_or_harm",
	"other",
}

func IsReportReason(s string) bool {
	for _, r := range ReportReasons {
		if r == s {
			return true
		}
	}
	return false
}

// AdminReasonCodes is the fixed internal menu for admin actions.
var AdminReasonCodes = []string{
	"policy_violation",
	"doxxing",
	"hate",
	"illegal",
	"spam",
	"ok",
}
