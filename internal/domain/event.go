package domain

// Event is broadcast on the moderation channel so admin clients can watch
// the queue in realtime.
type Event struct {
	Type      string `json:"type"`
	PostID    string `json:"postId,omitempty"`
	ReportID  string `json:"reportId,omitempty"`
	CompanyID string `json:"companyId,omitempty"`
	Category  string `json:"category,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Date      string `json:"date"`
}

const (
	EventPostHeld     = "post_held"
	EventPostVisible  = "post_visible"
	EventPostApproved = "post_approved"
	EventPostRemoved  = "post_removed"
	EventReportOpen   = "report_open"
	EventLock         = "category_locked"
	EventBan          = "author_banned"
)
