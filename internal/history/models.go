// Package history implements the session/history log SPEC_FULL.md adds
// as a supplemented feature (§10.3): a harmless ambient record of what
// was declared/explained/shown in a session, persisted the way the
// teacher persists its own session state — gorm models plus a
// SQLite-backed gorm.DB (models/models.go, db/sqlite.go).
package history

import (
	"time"

	"gorm.io/datatypes"
)

// Session tracks one REPL or one-shot CLI invocation.
type Session struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	StartedAt time.Time `gorm:"autoCreateTime"`
	EndedAt   *time.Time

	Dialect string `gorm:"type:varchar(16)"`

	CommandsCount int `gorm:"default:0"`
}

// Command records one declare/explain/define/show invocation within a
// Session, along with its rendered result and any diagnostics.
type Command struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	SessionID string `gorm:"type:varchar(36);index"`

	Kind  string `gorm:"type:varchar(20);not null"` // declare, explain, define, show
	Input string `gorm:"type:text"`
	Output string `gorm:"type:text"`

	Diagnostics datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName customizations for cleaner names, matching the teacher's
// models/models.go convention.
func (Session) TableName() string { return "sessions" }
func (Command) TableName() string { return "commands" }
