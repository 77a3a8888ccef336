// Package moderation is the placeholder submission classifier: a fixed,
// ordered set of textual checks producing allow/hold/block. It is a
// heuristic gate for the MVP review flow, not a trust & safety system.
package moderation

import (
	"regexp"
	"strings"
)

type Decision string

const (
	Allow Decision = "allow"
	Hold  Decision = "hold"
	Block Decision = "block"
)

// Result is the classifier outcome. Reasons keeps check order.
type Result struct {
	Decision Decision `json:"decision"`
	Reasons  []string `json:"reasons"`
}

const (
	ReasonEmail   = "Contains an email address (possible identifying information)."
	ReasonPhone   = "Contains a phone number (possible identifying information)."
	ReasonHate    = "Contains content flagged as potentially hateful/unsafe."
	ReasonIllegal = "Contains content flagged as potentially illegal/unsafe."
	ReasonHold    = "Potential identifying context detected (requires review)."
)

var (
	emailRe = regexp.MustCompile(`(?i)\b[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?[0-9]{1,3}[\s-]?)?(\(?[0-9]{2,4}\)?[\s-]?)?[0-9]{3}[\s-]?[0-9]{4}\b`)
	hateRe  = regexp.MustCompile(`(?i)\bhate\s*speech\b`)

	// Placeholder marker; real detection would be expanded later.
	illegalRe = regexp.MustCompile(`(?i)\billegal content\b`)

	// Soft signals only. These hold for review instead of blocking.
	contactRe = regexp.MustCompile(`(?i)\b(contact me|dm me|my name is|linkedin|instagram|snapchat|telegram)\b`)
)

type check struct {
	re     *regexp.Regexp
	reason string
}

// blockChecks run in this order; matched reasons accumulate in order.
var blockChecks = []check{
	{emailRe, ReasonEmail},
	{phoneRe, ReasonPhone},
	{hateRe, ReasonHate},
	{illegalRe, ReasonIllegal},
}

// Classify renders an allow/hold/block decision over the draft title and
// body. Block conditions are conservative patterns treated as
// unsafe-until-reviewed and take precedence over hold signals.
// Pure function of its inputs.
func Classify(title, body string) Result {
	combined := strings.TrimSpace(title + "\n" + body)

	var reasons []string
	for _, c := range blockChecks {
		if c.re.MatchString(combined) {
			reasons = append(reasons, c.reason)
		}
	}
	if len(reasons) > 0 {
		return Result{Decision: Block, Reasons: reasons}
	}

	if contactRe.MatchString(combined) {
		return Result{Decision: Hold, Reasons: []string{ReasonHold}}
	}

	return Result{Decision: Allow, Reasons: []string{}}
}
