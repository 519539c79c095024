package app

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// syncRecorder is a zap sink that remembers whether it was flushed
type syncRecorder struct {
	synced atomic.Bool
}

func (s *syncRecorder) Write(p []byte) (int, error) { return len(p), nil }

func (s *syncRecorder) Sync() error {
	s.synced.Store(true)
	return nil
}

func TestNewDependencyContainer_CleansUpWhenMigrationFails(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	sink := &syncRecorder{}
	logger := zap.New(zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zapcore.InfoLevel))

	deps, err := NewDependencyContainer(testConfig("http://127.0.0.1:1"), DependencyOptions{
		DB:     db,
		Logger: logger,
	})

	assert.Nil(t, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialize database")
	assert.True(t, sink.synced.Load(), "logger must be flushed on the failure path")
}
