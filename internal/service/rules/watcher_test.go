package rules

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/rohitsharma/rohitai/backend/internal/analysis/intent"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const firstTable = `
rules:
  - name: hello
    triggers: ["hello"]
    response: "first"
`

const secondTable = `
rules:
  - name: hello
    triggers: ["hello"]
    response: "second"
`

func writeRules(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestReloadKeepsPreviousTableOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	writeRules(t, path, firstTable)

	var current *intent.Dispatcher
	w, err := NewWatcher(path, func(d *intent.Dispatcher) { current = d }, zaptest.NewLogger(t))
	require.NoError(t, err)

	require.NoError(t, w.Reload())
	require.NotNil(t, current)
	assert.Equal(t, "first", current.Resolve("hello"))

	writeRules(t, path, "rules: [")
	assert.ErrorIs(t, w.Reload(), intent.ErrInvalidRules)
	assert.Equal(t, "first", current.Resolve("hello"))

	stats := w.Stats()
	assert.Equal(t, 1, stats.Reloads)
	assert.Equal(t, 1, stats.Failures)
	assert.NotEmpty(t, stats.LastError)
}

func TestRunReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	writeRules(t, path, firstTable)

	reloaded := make(chan *intent.Dispatcher, 4)
	w, err := NewWatcher(path, func(d *intent.Dispatcher) { reloaded <- d }, zaptest.NewLogger(t),
		WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher a moment to register the directory.
	time.Sleep(50 * time.Millisecond)
	writeRules(t, path, secondTable)

	select {
	case d := <-reloaded:
		assert.Equal(t, "second", d.Resolve("hello"))
	case <-time.After(3 * time.Second):
		t.Fatal("rule file change was not picked up")
	}
}

func TestRunIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	writeRules(t, path, firstTable)

	reloaded := make(chan *intent.Dispatcher, 4)
	w, err := NewWatcher(path, func(d *intent.Dispatcher) { reloaded <- d }, zaptest.NewLogger(t),
		WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	writeRules(t, filepath.Join(dir, "other.yaml"), secondTable)

	select {
	case <-reloaded:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	assert.NoError(t, <-done)
}

func TestNewWatcherValidatesArguments(t *testing.T) {
	_, err := NewWatcher("", func(*intent.Dispatcher) {}, nil)
	assert.Error(t, err)

	_, err = NewWatcher("rules.yaml", nil, nil)
	assert.Error(t, err)

	w, err := NewWatcher("rules.yaml", func(*intent.Dispatcher) {}, nil)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(w.Path()))
}
