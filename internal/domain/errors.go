package domain

import (
	"errors"
	"fmt"
)

// NotFoundError represents a missing resource.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError regardless of resource.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

var (
	ErrCompanyNotFound = NotFoundError{Resource: "company"}
	ErrPostNotFound    = NotFoundError{Resource: "post"}
)

var (
	// ErrEmptyBody rejects drafts without a body.
	ErrEmptyBody = errors.New("post body is required")
	// ErrEmptyName rejects ad-hoc companies without a usable name.
	ErrEmptyName = errors.New("company name is required")
	// ErrInvalidCategory rejects drafts outside the fixed category set.
	ErrInvalidCategory = errors.New("unknown category")
	// ErrInvalidReason rejects reports outside the fixed reason set.
	ErrInvalidReason = errors.New("unknown report reason")
	// ErrBanned rejects submissions from a banned author key.
	ErrBanned = errors.New("posting is blocked for this device")
	// ErrLocked rejects submissions into a locked company/category pair.
	ErrLocked = errors.New("posting is locked for this company and category")
	// ErrCompanyExists rejects ad-hoc company creation on a slug collision.
	ErrCompanyExists = errors.New("company already exists")
	// ErrEmptyAuthorKey rejects ban actions without a usable author key.
	ErrEmptyAuthorKey = errors.New("author key is empty")
)

// ModerationBlockedError carries the classifier reasons back to the caller.
type ModerationBlockedError struct {
	Reasons []string
}

func (e ModerationBlockedError) Error() string {
	return "submission blocked by moderation"
}

func (e ModerationBlockedError) Is(target error) bool {
	_, ok := target.(ModerationBlockedError)
	if ok {
		return true
	}
	_, ok = target.(*ModerationBlockedError)
	return ok
}

// ErrModerationBlocked is the sentinel for blocked submissions.
var ErrModerationBlocked = ModerationBlockedError{}
