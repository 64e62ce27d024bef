package service

import (
	"context"
	"time"

	"github.com/lounnaci/gestion-eau/internal/entity"
	"github.com/lounnaci/gestion-eau/pkg/config"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	SetPassword(ctx context.Context, id, hashed string) error
}

type AttemptRepository interface {
	Get(ctx context.Context, username string) (entity.LoginAttempt, error)
	RecordFailure(ctx context.Context, username string, max int, blockUntil time.Time) (entity.LoginAttempt, error)
	RecordSuccess(ctx context.Context, username string) error
	CleanExpired(ctx context.Context) error
	Clear(ctx context.Context, username string) (int64, error)
	ClearAll(ctx context.Context) (int64, error)
}

type DocumentRepository interface {
	List(ctx context.Context, collection string) ([]entity.Document, error)
	Save(ctx context.Context, collection string, doc entity.Document) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string) (int, error)
	NextRequestID(ctx context.Context, prefix, year string) (string, error)
	CountAdmins(ctx context.Context, excludeID string) (int, error)
}

// SecurityEvents receives lockout notifications; delivery is best effort and
// never influences the authentication outcome.
type SecurityEvents interface {
	LoginBlocked(ctx context.Context, username string, blockedUntil time.Time)
}

type Service struct {
	cfg         config.Config
	userRepo    UserRepository
	attemptRepo AttemptRepository
	docRepo     DocumentRepository
	events      SecurityEvents
}

func NewService(
	cfg config.Config,
	userRepo UserRepository,
	attemptRepo AttemptRepository,
	docRepo DocumentRepository,
	events SecurityEvents,
) *Service {
	return &Service{
		cfg:         cfg,
		userRepo:    userRepo,
		attemptRepo: attemptRepo,
		docRepo:     docRepo,
		events:      events,
	}
}
