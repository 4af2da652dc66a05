package sessions

import (
	"context"
	"fmt"
	"time"
)

type sessionsRepo interface {
	Add(ctx context.Context, session TrainingSession) (*TrainingSession, error)
	Get(ctx context.Context, id int) (*TrainingSession, error)
	Delete(ctx context.Context, id int) error
	ListForUser(ctx context.Context, userID string) ([]TrainingSession, error)
}

// OnCreatedFunc is invoked after a session record has been stored.
type OnCreatedFunc func(session TrainingSession)

type Service struct {
	repo      sessionsRepo
	onCreated OnCreatedFunc
	now       func() time.Time
}

func NewService(repo sessionsRepo, onCreated OnCreatedFunc) *Service {
	return &Service{
		repo:      repo,
		onCreated: onCreated,
		now:       time.Now,
	}
}

func (s *Service) Create(ctx context.Context, session TrainingSession) (*TrainingSession, error) {
	if session.UserID == "" {
		return nil, fmt.Errorf("user id is empty")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now()
	}
	if session.CreatedBy == "" {
		session.CreatedBy = session.UserID
	}

	added, err := s.repo.Add(ctx, session)
	if err != nil {
		return nil, err
	}

	if s.onCreated != nil {
		s.onCreated(*added)
	}
	return added, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]TrainingSession, error) {
	return s.repo.ListForUser(ctx, userID)
}

// Delete removes a session record, but only when requesterUID owns it.
func (s *Service) Delete(ctx context.Context, id int, requesterUID string) error {
	session, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if session.UserID != requesterUID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
