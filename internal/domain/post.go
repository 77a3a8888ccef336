package domain

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/zeebo/xxh3"
)

type PostStatus string

const (
	StatusVisible PostStatus = "visible"
	StatusHeld    PostStatus = "held"
	StatusRemoved PostStatus = "removed"
)

// Post is an anonymous review. AuthorKey is an opaque per-device key used
// only for abuse control; it never leaves the server in any projection.
type Post struct {
	ID                string     `json:"id"`
	CompanyID         string     `json:"companyId"`
	Category          string     `json:"category"`
	Title             string     `json:"title"`
	Body              string     `json:"body"`
	AuthorLabel       string     `json:"authorLabel"`
	AuthorKey         string     `json:"-"`
	Status            PostStatus `json:"status"`
	ModerationReasons []string   `json:"moderationReasons,omitempty"`
	CreatedDate       string     `json:"createdDate"`
	Score             int        `json:"score"`
	LockReason        string     `json:"lockReason,omitempty"`
	BanReason         string     `json:"banReason,omitempty"`
	AdminReason       string     `json:"adminReason,omitempty"`
}

// PublicPost is the browse-facing projection: no score, no status
// bookkeeping, and nothing that could link posts to a device.
type PublicPost struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	AuthorLabel string `json:"authorLabel"`
	CreatedDate string `json:"createdDate"`
}

func (p Post) Public() PublicPost {
	return PublicPost{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Category:    p.Category,
		Title:       p.Title,
		Body:        p.Body,
		AuthorLabel: p.AuthorLabel,
		CreatedDate: p.CreatedDate,
	}
}

// SortMode orders company listings.
type SortMode string

const (
	SortNewest SortMode = "newest"
	SortTop    SortMode = "top"
)

func ParseSortMode(s string) SortMode {
	if s == string(SortTop) {
		return SortTop
	}
	return SortNewest
}

// LockKey identifies a (company, category) posting lock.
type LockKey struct {
	CompanyID string
	Category  string
}

// DateOnly formats t at day precision. Post dates deliberately carry no
// time component so they cannot be correlated with other signals.
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// NewID derives an id from the content hash plus the creation instant,
// rendered as prefix_hex.
func NewID(prefix, content string, t time.Time) string {
	h := xxh3.HashString(content + t.Format(time.RFC3339Nano))
	return fmt.Sprintf("%s_%016x", prefix, h)
}

const anonLabelChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewAnonLabel returns a fresh per-post display label. Not a username,
// not linkable across posts.
func NewAnonLabel() string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = anonLabelChars[rand.Intn(len(anonLabelChars))]
	}
	return "Anonymous " + string(suffix)
}
