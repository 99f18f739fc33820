package usecase

import (
	"context"
	"strings"

	"opticode_backend/internal/feature/history/domain/entity"
)

// SessionRepository abstracts the persistence layer for optimization sessions.
// Every method takes the owner's id and must filter by it; a record id alone
// can never reach another user's data.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type SessionRepository interface {
	// Save persists a new session, assigning its id, auto-generated name,
	// creation time and starred=false default.
	Save(ctx context.Context, s *entity.OptimizationSession) error

	// ListByOwner returns all of the owner's sessions, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error)

	// Delete removes the session when both id and owner match. It reports
	// whether a deletion occurred.
	Delete(ctx context.Context, id, ownerID string) (bool, error)

	// Rename updates the session's name when both id and owner match. It
	// reports whether a modification occurred.
	Rename(ctx context.Context, id, ownerID, newName string) (bool, error)

	// ToggleStar atomically flips the starred flag and returns the new value.
	// Returns ErrSessionNotFound when id and owner do not match a record.
	ToggleStar(ctx context.Context, id, ownerID string) (bool, error)

	// Stats aggregates the owner's sessions in a single query.
	Stats(ctx context.Context, ownerID string) (*entity.Stats, error)
}

// historyUsecase implements the session history operations.
type historyUsecase struct {
	sessions SessionRepository
}

// NewHistoryUsecase creates a new instance of historyUsecase.
func NewHistoryUsecase(sessions SessionRepository) *historyUsecase {
	return &historyUsecase{sessions: sessions}
}

// List returns the owner's sessions, newest first.
func (u *historyUsecase) List(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error) {
	return u.sessions.ListByOwner(ctx, ownerID)
}

// Delete removes one of the owner's sessions.
func (u *historyUsecase) Delete(ctx context.Context, id, ownerID string) error {
	deleted, err := u.sessions.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrSessionNotFound
	}
	return nil
}

// Rename relabels one of the owner's sessions. The new name must be non-empty
// after trimming.
func (u *historyUsecase) Rename(ctx context.Context, id, ownerID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrNameRequired
	}

	renamed, err := u.sessions.Rename(ctx, id, ownerID, newName)
	if err != nil {
		return err
	}
	if !renamed {
		return ErrSessionNotFound
	}
	return nil
}

// ToggleStar flips the starred flag on one of the owner's sessions and
// returns the new value.
func (u *historyUsecase) ToggleStar(ctx context.Context, id, ownerID string) (bool, error) {
	return u.sessions.ToggleStar(ctx, id, ownerID)
}

// Stats aggregates the owner's history. A user with no sessions gets zero
// counts, not an error.
func (u *historyUsecase) Stats(ctx context.Context, ownerID string) (*entity.Stats, error) {
	return u.sessions.Stats(ctx, ownerID)
}
