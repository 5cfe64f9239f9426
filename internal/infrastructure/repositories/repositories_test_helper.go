package repositories

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"brand-connector.backend/internal/domain/entities"
)

var dsnSanitizer = strings.NewReplacer("/", "_", " ", "_", "#", "_")

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", dsnSanitizer.Replace(t.Name()), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db), "migrate")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entities.Role, tag, location string) *entities.User {
	t.Helper()
	u := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Role:         role,
	}
	if tag != "" {
		u.Tag = null.StringFrom(tag)
	}
	if location != "" {
		u.Location = null.StringFrom(location)
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), u))
	return u
}

func mustDate(t *testing.T, s string) null.Time {
	t.Helper()
	d, err := entities.ParseDate(s)
	require.NoError(t, err)
	return null.TimeFrom(d)
}
