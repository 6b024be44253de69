package history

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = Migrate(db)
	require.NoError(t, err)

	return db
}

func cleanupTestDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func TestTableNames(t *testing.T) {
	require.Equal(t, "sessions", Session{}.TableName())
	require.Equal(t, "commands", Command{}.TableName())
}

func TestRecorderRecordsCommandsAndBumpsCount(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(db)

	rec, err := NewRecorder(db, "C++17")
	require.NoError(t, err)

	err = rec.Record("declare", "declare p as pointer to int", "int *p;", nil)
	require.NoError(t, err)

	var session Session
	require.NoError(t, db.First(&session, "id = ?", rec.sessionID).Error)
	require.Equal(t, 1, session.CommandsCount)
	require.Equal(t, "C++17", session.Dialect)

	var commands []Command
	require.NoError(t, db.Where("session_id = ?", rec.sessionID).Find(&commands).Error)
	require.Len(t, commands, 1)
	require.Equal(t, "declare", commands[0].Kind)
}

func TestRecorderClose(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(db)

	rec, err := NewRecorder(db, "C11")
	require.NoError(t, err)
	require.NoError(t, rec.Close())

	var session Session
	require.NoError(t, db.First(&session, "id = ?", rec.sessionID).Error)
	require.NotNil(t, session.EndedAt)
}
