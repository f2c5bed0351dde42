package service

import (
	"context"
	"errors"
	"time"

	"buddyboard/internal/model"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"

	"go.uber.org/zap"
)

type PostService struct {
	repo        *mysql.PostRepository
	settingsSvc *SettingsService
	logger      *zap.Logger
}

func NewPostService(settingsSvc *SettingsService, logger *zap.Logger) *PostService {
	return &PostService{
		repo:        mysql.NewPostRepository(),
		settingsSvc: settingsSvc,
		logger:      logger,
	}
}

// Create stores a new board post with its initial publish state computed by
// the moderation decision over a fresh settings snapshot.
func (s *PostService) Create(author policy.Requester, title, body string, unpublished bool, publishAt *time.Time) (*model.Post, error) {
	if title == "" {
		return nil, errors.New("title required")
	}

	decision := policy.DecideModeration(author, policy.PostInput{
		Title:       title,
		Body:        body,
		Unpublished: unpublished,
		PublishAt:   publishAt,
	}, s.settingsSvc.Snapshot())

	post := &model.Post{
		AuthorID:   author.ID,
		AuthorRole: string(author.Role),
		Title:      decision.Title,
		Body:       decision.Body,
		Published:  decision.Published,
		Held:       decision.Held,
		PublishAt:  publishAt,
	}

	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	return post, nil
}

// ListPublished 游标分页 — first page when lastCreatedAt is zero; returns the
// cursor for the next page.
func (s *PostService) ListPublished(lastID uint64, lastCreatedAt int64, size int) ([]model.Post, uint64, int64, error) {
	if size <= 0 || size > 50 {
		size = 20
	}
	list, err := s.repo.ListPublished(lastID, lastCreatedAt, size)
	if err != nil {
		return nil, 0, 0, err
	}
	var nextID uint64
	var nextTS int64
	if len(list) > 0 {
		last := list[len(list)-1]
		nextID = last.ID
		nextTS = last.CreatedAt.Unix()
	}
	return list, nextID, nextTS, nil
}

// ListPending is the admin review queue, oldest first.
func (s *PostService) ListPending(page, size int) ([]model.Post, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return s.repo.ListPending((page-1)*size, size)
}

// Approve publishes a held post. Idempotent.
func (s *PostService) Approve(ctx context.Context, adminID, postID uint64) (bool, error) {
	return s.repo.Approve(ctx, postID, adminID)
}

// Reject deletes a held post. Idempotent.
func (s *PostService) Reject(ctx context.Context, adminID, postID uint64) error {
	return s.repo.Reject(ctx, postID, adminID)
}

// RunScheduler flips due scheduled posts to published. One-minute resolution
// is fine: publishAt is advisory, not a hard deadline.
func (s *PostService) RunScheduler(ctx context.Context) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.publishDueOnce()
		}
	}
}

func (s *PostService) publishDueOnce() {
	due, err := s.repo.ListScheduledDue(time.Now(), 100)
	if err != nil {
		s.logger.Warn("scheduled post query failed", zap.Error(err))
		return
	}
	for i := range due {
		changed, err := s.repo.Publish(due[i].ID)
		if err != nil {
			s.logger.Warn("scheduled publish failed", zap.Uint64("post_id", due[i].ID), zap.Error(err))
			continue
		}
		if changed {
			s.logger.Info("scheduled post published", zap.Uint64("post_id", due[i].ID))
		}
	}
}
