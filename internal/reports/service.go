package reports

import (
	"context"
	"time"

	"github.com/mpetrov/fittrack/internal/sessions"
	"github.com/mpetrov/fittrack/internal/telemetry/tracing"
	"github.com/mpetrov/fittrack/internal/weights"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=reports

type sessionsStore interface {
	ListAll(ctx context.Context) ([]sessions.TrainingSession, error)
	ListForUser(ctx context.Context, userID string) ([]sessions.TrainingSession, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]sessions.TrainingSession, error)
}

type weightsStore interface {
	ListForUser(ctx context.Context, userID string) ([]weights.WeightRecord, error)
}

// Service produces the monthly aggregate reports. All reports cover the
// calendar month containing the current time.
type Service struct {
	sessions sessionsStore
	weights  weightsStore
	now      func() time.Time
}

func NewService(sessionsStore sessionsStore, weightsStore weightsStore) *Service {
	return &Service{
		sessions: sessionsStore,
		weights:  weightsStore,
		now:      time.Now,
	}
}

func (s *Service) PopularTrainings(ctx context.Context) (_ []TrainingPopularity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reports.popularTrainings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window := NewMonthWindow(s.now())
	records, err := s.sessions.ListCreatedBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, &StoreUnavailableError{Cause: err}
	}

	ranked := PopularTrainings(records)
	span.SetAttributes(attribute.Int("entries", len(ranked)))
	return ranked, nil
}

func (s *Service) UsersDirectory(ctx context.Context) (_ []UserEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reports.usersDirectory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	records, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, &StoreUnavailableError{Cause: err}
	}

	directory := UsersDirectory(records)
	span.SetAttributes(attribute.Int("entries", len(directory)))
	return directory, nil
}

func (s *Service) UserProgress(ctx context.Context, userID string) (_ *UserProgress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reports.userProgress")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if userID == "" {
		return nil, &ValidationError{Param: "userId"}
	}
	span.SetAttributes(attribute.String("user.id", userID))

	userSessions, err := s.sessions.ListForUser(ctx, userID)
	if err != nil {
		return nil, &StoreUnavailableError{Cause: err}
	}
	userWeights, err := s.weights.ListForUser(ctx, userID)
	if err != nil {
		return nil, &StoreUnavailableError{Cause: err}
	}

	window := NewMonthWindow(s.now())
	return ProgressForUser(window, userSessions, userWeights), nil
}

func (s *Service) AverageActivity(ctx context.Context) (_ *ActivityReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reports.averageActivity")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window := NewMonthWindow(s.now())
	records, err := s.sessions.ListCreatedBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, &StoreUnavailableError{Cause: err}
	}

	return AverageActivity(window, records), nil
}

func (s *Service) MonthlyRankings(ctx context.Context) (_ []UserRanking, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reports.monthlyRankings")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	window := NewMonthWindow(s.now())
	records, err := s.sessions.ListCreatedBetween(ctx, window.Start, window.End)
	if err != nil {
		return nil, &StoreUnavailableError{Cause: err}
	}

	ranked := MonthlyRankings(records)
	span.SetAttributes(attribute.Int("entries", len(ranked)))
	return ranked, nil
}
