package repository

import (
	"context"
	"testing"
	"time"

	"course_cert_backend/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// exerciseSubstrate checks the contract every substrate must meet.
func exerciseSubstrate(t *testing.T, s Substrate) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "course_progress:nobody")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "course_progress:u1", `{"courses":{}}`))
	v, ok, err := s.Get(ctx, "course_progress:u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"courses":{}}`, v)

	require.NoError(t, s.Set(ctx, "course_progress:u1", `{"courses":{"c1":{}}}`))
	v, _, err = s.Get(ctx, "course_progress:u1")
	require.NoError(t, err)
	assert.Equal(t, `{"courses":{"c1":{}}}`, v, "second write overwrites")
}

func TestMemorySubstrate(t *testing.T) {
	m := NewMemorySubstrate()
	exerciseSubstrate(t, m)

	m.Delete("course_progress:u1")
	_, ok, err := m.Get(context.Background(), "course_progress:u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSubstrate(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	exerciseSubstrate(t, NewRedisSubstrate(rdb, 0))
	assert.Zero(t, mr.TTL("course_progress:u1"))
}

func TestRedisSubstrate_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sub := NewRedisSubstrate(rdb, time.Hour)
	require.NoError(t, sub.Set(context.Background(), "course_progress:u1", "{}"))
	assert.Equal(t, time.Hour, mr.TTL("course_progress:u1"))

	mr.FastForward(2 * time.Hour)
	_, ok, err := sub.Get(context.Background(), "course_progress:u1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisSubstrate_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	store := NewProgressStore(NewRedisSubstrate(rdb, 0), "")
	p := store.Load(context.Background(), "u1")
	assert.Empty(t, p.Courses)
}

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// 内存库按连接隔离，只保留一个连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.ProgressDocument{}))
	return db
}

func TestGormSubstrate(t *testing.T) {
	db := openSQLite(t)
	exerciseSubstrate(t, NewGormSubstrate(db))

	var count int64
	require.NoError(t, db.Model(&model.ProgressDocument{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "upsert keeps one row per key")
}

func TestGormSubstrate_WithStore(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore(NewGormSubstrate(openSQLite(t)), "")

	store.Save(ctx, "u1", sampleProgress())
	loaded := store.Load(ctx, "u1")
	require.Contains(t, loaded.Courses, "react-basics")
	assert.Equal(t, 3, loaded.Courses["react-basics"].TotalVideos)
}
