package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"opticode_backend/internal/feature/history/domain/entity"
	"opticode_backend/internal/feature/history/usecase"
)

// sessionGorm is the GORM implementation of the SessionRepository interface.
type sessionGorm struct {
	db *gorm.DB
}

// Compile-time check that sessionGorm implements SessionRepository.
var _ usecase.SessionRepository = (*sessionGorm)(nil)

// NewSessionGorm creates a new sessionGorm backed by the given gorm.DB connection.
func NewSessionGorm(db *gorm.DB) *sessionGorm {
	return &sessionGorm{db: db}
}

// Save persists a new session. It assigns the id, the timestamp-derived
// default name and the starred=false default.
func (r *sessionGorm) Save(ctx context.Context, s *entity.OptimizationSession) error {
	m := SessionModelFromEntity(s)
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if m.Name == "" {
		m.Name = fmt.Sprintf("Session · %s", m.CreatedAt.Format("02 Jan 2006, 15:04"))
	}
	m.Starred = false

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}

	s.ID = m.ID
	s.Name = m.Name
	s.Starred = m.Starred
	s.CreatedAt = m.CreatedAt
	return nil
}

// ListByOwner returns the owner's sessions, newest first.
func (r *sessionGorm) ListByOwner(ctx context.Context, ownerID string) ([]entity.OptimizationSession, error) {
	var models []SessionModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	sessions := make([]entity.OptimizationSession, 0, len(models))
	for i := range models {
		sessions = append(sessions, *models[i].ToEntity())
	}
	return sessions, nil
}

// Delete removes a session only when both id and owner match.
func (r *sessionGorm) Delete(ctx context.Context, id, ownerID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&SessionModel{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// Rename updates a session's name only when both id and owner match.
func (r *sessionGorm) Rename(ctx context.Context, id, ownerID, newName string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("name", newName)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ToggleStar flips the starred flag with a single conditional UPDATE, then
// reads the new value inside the same transaction. The row lock taken by the
// UPDATE serializes concurrent toggles on the same record, so each toggle
// observes the value written by the previous one.
func (r *sessionGorm) ToggleStar(ctx context.Context, id, ownerID string) (bool, error) {
	var starred bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&SessionModel{}).
			Where("id = ? AND owner_id = ?", id, ownerID).
			Update("starred", gorm.Expr("NOT starred"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrSessionNotFound
		}

		var m SessionModel
		if err := tx.Select("starred").
			Where("id = ? AND owner_id = ?", id, ownerID).
			Take(&m).Error; err != nil {
			return err
		}
		starred = m.Starred
		return nil
	})
	if err != nil {
		return false, err
	}
	return starred, nil
}

// statsRow receives the aggregate counts scan.
type statsRow struct {
	Total        int64
	Level1Count  int64
	Level2Count  int64
	StarredCount int64
}

// Stats computes the counts for one owner in a single scan. The latest
// activity timestamp comes from a separate plain-column query: wrapping
// created_at in MAX() strips the column type, and the sqlite driver then
// hands back a string that cannot be scanned into a time value.
func (r *sessionGorm) Stats(ctx context.Context, ownerID string) (*entity.Stats, error) {
	var row statsRow
	err := r.db.WithContext(ctx).
		Model(&SessionModel{}).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN level = 'level1' THEN 1 ELSE 0 END), 0) AS level1_count,
			COALESCE(SUM(CASE WHEN level = 'level2' THEN 1 ELSE 0 END), 0) AS level2_count,
			COALESCE(SUM(CASE WHEN starred THEN 1 ELSE 0 END), 0) AS starred_count`).
		Where("owner_id = ?", ownerID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	stats := &entity.Stats{
		Total:        row.Total,
		Level1Count:  row.Level1Count,
		Level2Count:  row.Level2Count,
		StarredCount: row.StarredCount,
	}
	if row.Total > 0 {
		var m SessionModel
		err := r.db.WithContext(ctx).
			Select("created_at").
			Where("owner_id = ?", ownerID).
			Order("created_at DESC").
			Take(&m).Error
		if err != nil {
			return nil, err
		}
		t := m.CreatedAt
		stats.LastActive = &t
	}
	return stats, nil
}
