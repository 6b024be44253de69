package history

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recorder writes Session/Command rows for a single session. It is a
// thin wrapper that a Check failure or a closed database must never
// be allowed to take down the CLI over: every method swallows its own
// persistence error into a returned value the caller may log and
// ignore, since history is diagnostic, not authoritative.
type Recorder struct {
	db        *gorm.DB
	sessionID string
}

// NewRecorder opens a Session row for dialectName and returns a
// Recorder bound to it.
func NewRecorder(db *gorm.DB, dialectName string) (*Recorder, error) {
	s := Session{ID: uuid.NewString(), Dialect: dialectName}
	if err := db.Create(&s).Error; err != nil {
		return nil, err
	}
	return &Recorder{db: db, sessionID: s.ID}, nil
}

// Record appends one Command row and bumps the Session's CommandsCount.
func (r *Recorder) Record(kind, input, output string, diagnostics any) error {
	blob, err := json.Marshal(diagnostics)
	if err != nil {
		blob = []byte("null")
	}
	cmd := Command{
		ID:          uuid.NewString(),
		SessionID:   r.sessionID,
		Kind:        kind,
		Input:       input,
		Output:      output,
		Diagnostics: datatypes.JSON(blob),
	}
	if err := r.db.Create(&cmd).Error; err != nil {
		return err
	}
	return r.db.Model(&Session{}).Where("id = ?", r.sessionID).
		UpdateColumn("commands_count", gorm.Expr("commands_count + 1")).Error
}

// Close records the session's end time.
func (r *Recorder) Close() error {
	now := time.Now()
	return r.db.Model(&Session{}).Where("id = ?", r.sessionID).
		Update("ended_at", now).Error
}
