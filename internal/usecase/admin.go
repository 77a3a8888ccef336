package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/breakroom-app/breakroom/internal/domain"
)

var tracer = otel.Tracer("admin")

// AdminUsecase applies the post lifecycle transitions and the lock/ban
// actions. Transitions: held->visible (approve), held->removed and
// visible->removed (remove). Removed is terminal; there is no restore.
type AdminUsecase struct {
	posts  PostRepository
	state  ModerationStateRepository
	signal EventPublisher
	now    func() time.Time
}

func NewAdminUsecase(posts PostRepository, state ModerationStateRepository, signal EventPublisher) *AdminUsecase {
	return &AdminUsecase{
		posts:  posts,
		state:  state,
		signal: signal,
		now:    time.Now,
	}
}

// ListHeld returns full post records awaiting review. Admin screens see
// everything, including score and moderation reasons.
func (uc *AdminUsecase) ListHeld(ctx context.Context) ([]domain.Post, error) {
	return uc.posts.ListByStatus(ctx, domain.StatusHeld)
}

// Approve transitions a held post to visible. Unknown ids and posts in
// any other state are a no-op.
func (uc *AdminUsecase) Approve(ctx context.Context, postID, reason string) error {
	ctx, span := tracer.Start(ctx, "Admin.Usecase.Approve")
	defer span.End()

	post, err := uc.posts.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return errors.Wrap(err, "AdminUsecase.Approve: get failed")
	}
	if post.Status != domain.StatusHeld {
		return nil
	}

	if err := uc.posts.SetStatus(ctx, postID, domain.StatusVisible, reason); err != nil {
		return errors.Wrap(err, "AdminUsecase.Approve: set status failed")
	}

	uc.publish(ctx, domain.Event{
		Type:   domain.EventPostApproved,
		PostID: postID,
		Reason: reason,
		Date:   domain.DateOnly(uc.now()),
	})
	return nil
}

// Remove transitions a held or visible post to removed. Removed is
// terminal, so removing again is a no-op.
func (uc *AdminUsecase) Remove(ctx context.Context, postID, reason string) error {
	ctx, span := tracer.Start(ctx, "Admin.Usecase.Remove")
	defer span.End()

	post, err := uc.posts.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return errors.Wrap(err, "AdminUsecase.Remove: get failed")
	}
	if post.Status == domain.StatusRemoved {
		return nil
	}

	if err := uc.posts.SetStatus(ctx, postID, domain.StatusRemoved, reason); err != nil {
		return errors.Wrap(err, "AdminUsecase.Remove: set status failed")
	}

	uc.publish(ctx, domain.Event{
		Type:   domain.EventPostRemoved,
		PostID: postID,
		Reason: reason,
		Date:   domain.DateOnly(uc.now()),
	})
	return nil
}

// Lock disables posting for a (company, category) pair and stamps the
// reason on existing matching posts. Existing posts are not hidden; the
// lock only gates new submissions. Idempotent.
func (uc *AdminUsecase) Lock(ctx context.Context, companyID, category, reason string) error {
	ctx, span := tracer.Start(ctx, "Admin.Usecase.Lock")
	defer span.End()

	if !domain.IsCategory(category) {
		return domain.ErrInvalidCategory
	}

	key := domain.LockKey{CompanyID: companyID, Category: category}
	if err := uc.state.Lock(ctx, key, reason); err != nil {
		return errors.Wrap(err, "AdminUsecase.Lock: lock failed")
	}
	if err := uc.posts.StampLock(ctx, companyID, category, reason); err != nil {
		return errors.Wrap(err, "AdminUsecase.Lock: stamp failed")
	}

	uc.publish(ctx, domain.Event{
		Type:      domain.EventLock,
		CompanyID: companyID,
		Category:  category,
		Reason:    reason,
		Date:      domain.DateOnly(uc.now()),
	})
	return nil
}

// Ban blocks future submissions from the author of the given post and
// stamps the reason on their existing posts. Existing visible posts stay
// visible; enforcement is submission-time only. A post with an empty
// author key is rejected without touching the ban set. Unknown post ids
// are a no-op.
func (uc *AdminUsecase) Ban(ctx context.Context, postID, reason string) error {
	ctx, span := tracer.Start(ctx, "Admin.Usecase.Ban")
	defer span.End()

	post, err := uc.posts.Get(ctx, postID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return errors.Wrap(err, "AdminUsecase.Ban: get failed")
	}
	if post.AuthorKey == "" {
		return domain.ErrEmptyAuthorKey
	}

	if err := uc.state.Ban(ctx, post.AuthorKey, reason); err != nil {
		return errors.Wrap(err, "AdminUsecase.Ban: ban failed")
	}
	if err := uc.posts.StampBan(ctx, post.AuthorKey, reason); err != nil {
		return errors.Wrap(err, "AdminUsecase.Ban: stamp failed")
	}

	uc.publish(ctx, domain.Event{
		Type:   domain.EventBan,
		PostID: postID,
		Reason: reason,
		Date:   domain.DateOnly(uc.now()),
	})
	return nil
}

func (uc *AdminUsecase) publish(ctx context.Context, event domain.Event) {
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
