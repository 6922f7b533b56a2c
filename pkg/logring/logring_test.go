// Copyright (c) 2026 EventInc. All rights reserved.

package logring_test

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventinc/api/pkg/logring"
)

func newBuffer(opts logring.Options) (*logring.Handler, *slog.Logger) {
	handler := logring.NewHandler(opts)
	return handler, slog.New(handler)
}

/*
TestBufferNeverExceedsCap pushes max+k records and verifies the buffer holds
exactly max entries with the first k evicted (FIFO).
*/
func TestBufferNeverExceedsCap(t *testing.T) {
	const max, extra = 10, 4

	handler, logger := newBuffer(logring.Options{Enabled: true, MaxEntries: max})

	for i := 0; i < max+extra; i++ {
		logger.Info(fmt.Sprintf("entry-%d", i))
	}

	entries := handler.Entries()
	require.Len(t, entries, max)

	// The oldest `extra` entries are gone; ordering of the rest is preserved.
	assert.Equal(t, fmt.Sprintf("entry-%d", extra), entries[0].Message)
	assert.Equal(t, fmt.Sprintf("entry-%d", max+extra-1), entries[max-1].Message)
}

func TestDisabledHandlerDropsEverything(t *testing.T) {
	handler, logger := newBuffer(logring.Options{Enabled: false})

	logger.Error("should not be retained")

	assert.Zero(t, handler.Len())
}

func TestMinLevelFiltering(t *testing.T) {
	handler, logger := newBuffer(logring.Options{Enabled: true, MinLevel: slog.LevelWarn})

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")

	entries := handler.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, "error", entries[1].Level)
}

func TestAttrsAreCaptured(t *testing.T) {
	handler, logger := newBuffer(logring.Options{Enabled: true})

	logger.With(slog.String("component", "guard")).Info("permitted", slog.String("path", "/admin"))

	entries := handler.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "guard", entries[0].Data["component"])
	assert.Equal(t, "/admin", entries[0].Data["path"])
}

func TestDerivedLoggersShareTheBuffer(t *testing.T) {
	handler, logger := newBuffer(logring.Options{Enabled: true, MaxEntries: 5})

	logger.Info("root")
	logger.With(slog.String("k", "v")).Info("derived")
	logger.WithGroup("sub").Info("grouped", slog.String("key", "value"))

	entries := handler.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "value", entries[2].Data["sub.key"])
}

/*
TestPersistenceRoundTrip verifies that a persisted buffer survives a process
restart (modeled as a second handler over the same store).
*/
func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")
	store := logring.NewFileStore(path)

	handler, logger := newBuffer(logring.Options{
		Enabled: true, Persist: true, Store: store, MaxEntries: 100,
	})
	logger.Info("first")
	logger.Warn("second")
	require.Equal(t, 2, handler.Len())

	// "Restart": a fresh handler over the same store sees the history.
	restarted := logring.NewHandler(logring.Options{
		Enabled: true, Persist: true, Store: store, MaxEntries: 100,
	})
	entries := restarted.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Message)
	assert.Equal(t, "second", entries[1].Message)
}

func TestPersistedHistoryTrimmedToCap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")
	store := logring.NewFileStore(path)

	_, logger := newBuffer(logring.Options{
		Enabled: true, Persist: true, Store: store, MaxEntries: 50,
	})
	for i := 0; i < 20; i++ {
		logger.Info(fmt.Sprintf("entry-%d", i))
	}

	// The reloading handler has a smaller cap: only the newest entries load.
	restarted := logring.NewHandler(logring.Options{
		Enabled: true, Persist: true, Store: store, MaxEntries: 5,
	})
	entries := restarted.Entries()
	require.Len(t, entries, 5)
	assert.Equal(t, "entry-15", entries[0].Message)
}

func TestClearEmptiesBufferAndStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs.json")
	store := logring.NewFileStore(path)

	handler, logger := newBuffer(logring.Options{
		Enabled: true, Persist: true, Store: store,
	})
	logger.Info("entry")
	require.Equal(t, 1, handler.Len())

	handler.Clear()

	assert.Zero(t, handler.Len())

	persisted, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, persisted)
}
