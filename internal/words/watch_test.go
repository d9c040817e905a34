package words

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	writeFile(t, path, "crane\n")

	l, err := LoadList(path)
	require.NoError(t, err)

	w, err := NewWatcher(l, 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	reloaded := make(chan error, 8)
	w.OnReload = func(err error) { reloaded <- err }

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	writeFile(t, path, "crane\ntiger\nmelon\n")

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("word list was not reloaded")
	}
	assert.Eventually(t, func() bool { return l.Len() == 3 }, time.Second, 10*time.Millisecond)
	assert.True(t, l.Contains("tiger"))
}

func TestWatcherNeedsFile(t *testing.T) {
	_, err := NewWatcher(NewList("crane"), 0)
	require.Error(t, err)
}
