package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/breakroom-app/breakroom/internal/domain"
	"github.com/breakroom-app/breakroom/moderation"
)

type PostUsecase struct {
	posts     PostRepository
	companies CompanyRepository
	state     ModerationStateRepository
	signal    EventPublisher

	// classify is swappable for tests; defaults to moderation.Classify.
	classify func(title, body string) moderation.Result
	now      func() time.Time
}

func NewPostUsecase(
	posts PostRepository,
	companies CompanyRepository,
	state ModerationStateRepository,
	signal EventPublisher,
) *PostUsecase {
	return &PostUsecase{
		posts:     posts,
		companies: companies,
		state:     state,
		signal:    signal,
		classify:  moderation.Classify,
		now:       time.Now,
	}
}

// ListVisible returns the browse view for a company: visible posts only,
// optionally narrowed to a recognized category, ordered by the sort mode.
// An unknown company fails with domain.ErrCompanyNotFound so callers can
// distinguish "no posts yet" from "no such company".
func (uc *PostUsecase) ListVisible(ctx context.Context, companyID, category string, sortMode domain.SortMode) ([]domain.PublicPost, error) {
	if _, err := uc.companies.Get(ctx, companyID); err != nil {
		return nil, err
	}

	posts, err := uc.posts.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, errors.Wrap(err, "PostUsecase.ListVisible: list failed")
	}

	filtered := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Status != domain.StatusVisible {
			continue
		}
		if category != "" && domain.IsCategory(category) && p.Category != category {
			continue
		}
		filtered = append(filtered, p)
	}

	// Stable sorts keep input order on ties, which the contract requires.
	switch sortMode {
	case domain.SortTop:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Score > filtered[j].Score
		})
	default:
		// YYYY-MM-DD compares lexicographically in date order.
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedDate > filtered[j].CreatedDate
		})
	}

	out := make([]domain.PublicPost, 0, len(filtered))
	for _, p := range filtered {
		out = append(out, p.Public())
	}
	return out, nil
}

// GetPublic returns a single post by id. Removed posts are treated as
// missing; held posts stay reachable by direct id so an author can see
// their own pending submission.
func (uc *PostUsecase) GetPublic(ctx context.Context, id string) (domain.PublicPost, error) {
	post, err := uc.posts.Get(ctx, id)
	if err != nil {
		return domain.PublicPost{}, err
	}
	if post.Status == domain.StatusRemoved {
		return domain.PublicPost{}, domain.ErrPostNotFound
	}
	return post.Public(), nil
}

type SubmitInput struct {
	CompanyID string `json:"-"`
	Category  string `json:"category"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	AuthorKey string `json:"authorKey"`
}

// Submit runs the submission pipeline: validation, then ban and lock
// gates, then the moderation classifier. The ban and lock checks run
// before classification on purpose; a banned device never gets a
// moderation verdict to probe against.
func (uc *PostUsecase) Submit(ctx context.Context, input SubmitInput) (domain.Post, moderation.Result, error) {
	none := moderation.Result{}

	if _, err := uc.companies.Get(ctx, input.CompanyID); err != nil {
		return domain.Post{}, none, err
	}

	body := strings.TrimSpace(input.Body)
	if body == "" {
		return domain.Post{}, none, domain.ErrEmptyBody
	}
	if !domain.IsCategory(input.Category) {
		return domain.Post{}, none, domain.ErrInvalidCategory
	}

	banned, err := uc.state.IsBanned(ctx, input.AuthorKey)
	if err != nil {
		return domain.Post{}, none, errors.Wrap(err, "PostUsecase.Submit: ban check failed")
	}
	if banned {
		return domain.Post{}, none, domain.ErrBanned
	}

	locked, err := uc.state.IsLocked(ctx, domain.LockKey{CompanyID: input.CompanyID, Category: input.Category})
	if err != nil {
		return domain.Post{}, none, errors.Wrap(err, "PostUsecase.Submit: lock check failed")
	}
	if locked {
		return domain.Post{}, none, domain.ErrLocked
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = truncateTitle(body)
	}

	result := uc.classify(title, body)
	if result.Decision == moderation.Block {
		return domain.Post{}, result, domain.ModerationBlockedError{Reasons: result.Reasons}
	}

	now := uc.now()
	status := domain.StatusVisible
	if result.Decision == moderation.Hold {
		status = domain.StatusHeld
	}

	post := domain.Post{
		ID:                domain.NewID("p", title+body, now),
		CompanyID:         input.CompanyID,
		Category:          input.Category,
		Title:             title,
		Body:              body,
		AuthorLabel:       domain.NewAnonLabel(),
		AuthorKey:         input.AuthorKey,
		Status:            status,
		ModerationReasons: result.Reasons,
		CreatedDate:       domain.DateOnly(now),
		Score:             0,
	}

	if err := uc.posts.Create(ctx, post); err != nil {
		return domain.Post{}, none, errors.Wrap(err, "PostUsecase.Submit: create failed")
	}

	eventType := domain.EventPostVisible
	if status == domain.StatusHeld {
		eventType = domain.EventPostHeld
	}
	uc.publish(ctx, domain.Event{
		Type:      eventType,
		PostID:    post.ID,
		CompanyID: post.CompanyID,
		Category:  post.Category,
		Date:      post.CreatedDate,
	})

	return post, result, nil
}

func (uc *PostUsecase) publish(ctx context.Context, event domain.Event) {
	if uc.signal == nil {
		return
	}
	if err := uc.signal.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			slog.String("type", event.Type),
			slog.String("error", err.Error()),
		)
	}
}

// truncateTitle derives a title from the first 60 runes of the body.
func truncateTitle(body string) string {
	runes := []rune(body)
	if len(runes) <= 60 {
		return body
	}
	return string(runes[:60]) + "…"
}
