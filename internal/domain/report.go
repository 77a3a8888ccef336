package domain

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportResolved ReportStatus = "resolved"
)

// Report is a user flag against a post. PostID may dangle if the post is
// later removed; the report stays as audit trail.
type Report struct {
	ID          string       `json:"id"`
	PostID      string       `json:"postId"`
	Reason      string       `json:"reason"`
	CreatedDate string       `json:"createdDate"`
	Status      ReportStatus `json:"status"`
}
