// Package adapters provides the repository implementations for the history feature.
package adapters

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"opticode_backend/internal/feature/history/domain/entity"
)

// StringList stores an ordered list of strings as a JSON text column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// JSONMap stores an opaque key/value record as a JSON text column.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		m = JSONMap{}
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(src any) error {
	return scanJSON(src, m)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}

// SessionModel is the GORM model for the optimization_sessions table.
// The composite owner/created index backs the history listing, which always
// filters by owner and orders by creation time.
type SessionModel struct {
	ID                string     `gorm:"primaryKey;size:36"`
	OwnerID           string     `gorm:"size:36;not null;index:idx_sessions_owner_created,priority:1"`
	Name              string     `gorm:"size:255;not null"`
	OriginalCode      string     `gorm:"type:text"`
	OptimizedCode     string     `gorm:"type:text"`
	Level             string     `gorm:"size:16;not null"`
	Changes           StringList `gorm:"type:text"`
	OriginalAnalysis  JSONMap    `gorm:"type:text"`
	OptimizedAnalysis JSONMap    `gorm:"type:text"`
	Error             *string    `gorm:"type:text"`
	Starred           bool       `gorm:"not null;default:false"`
	CreatedAt         time.Time  `gorm:"not null;index:idx_sessions_owner_created,priority:2,sort:desc"`
}

// TableName returns the table name for GORM.
func (SessionModel) TableName() string {
	return "optimization_sessions"
}

// ToEntity converts the GORM model to a domain entity.
func (m *SessionModel) ToEntity() *entity.OptimizationSession {
	return &entity.OptimizationSession{
		ID:                m.ID,
		OwnerID:           m.OwnerID,
		Name:              m.Name,
		OriginalCode:      m.OriginalCode,
		OptimizedCode:     m.OptimizedCode,
		Level:             m.Level,
		Changes:           m.Changes,
		OriginalAnalysis:  m.OriginalAnalysis,
		OptimizedAnalysis: m.OptimizedAnalysis,
		Error:             m.Error,
		Starred:           m.Starred,
		CreatedAt:         m.CreatedAt,
	}
}

// SessionModelFromEntity converts a domain entity to a GORM model.
func SessionModelFromEntity(s *entity.OptimizationSession) *SessionModel {
	return &SessionModel{
		ID:                s.ID,
		OwnerID:           s.OwnerID,
		Name:              s.Name,
		OriginalCode:      s.OriginalCode,
		OptimizedCode:     s.OptimizedCode,
		Level:             s.Level,
		Changes:           StringList(s.Changes),
		OriginalAnalysis:  JSONMap(s.OriginalAnalysis),
		OptimizedAnalysis: JSONMap(s.OptimizedAnalysis),
		Error:             s.Error,
		Starred:           s.Starred,
		CreatedAt:         s.CreatedAt,
	}
}
