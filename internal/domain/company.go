package domain

import (
	"strings"
	"unicode"
)

// Company is a browsable employer from the embedded dataset, or an ad-hoc
// entry created at runtime with a slug id derived from the name.
type Company struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Country         string `json:"country,omitempty"`
	Industry        string `json:"industry,omitempty"`
	EmployeeCount   int    `json:"employeeCount,omitempty"`
	RankByEmployees int    `json:"rankByEmployees,omitempty"`
}

// Slugify derives a stable company id from a display name.
// "Acme Corp." -> "acme-corp"
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
