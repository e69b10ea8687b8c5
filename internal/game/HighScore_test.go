package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteScoreStore(t *testing.T) {
	store, err := NewSQLiteScoreStore(filepath.Join(t.TempDir(), "scores.db"), discardLogger())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.LoadHighScore()
	assert.ErrorIs(t, err, ErrNoHighScore)

	require.NoError(t, store.SaveHighScore(HighScore{PlayerName: "ann", Score: 900, RunID: "run-1"}))
	require.NoError(t, store.SaveHighScore(HighScore{PlayerName: "bob", Score: 2645, RunID: "run-2"}))
	require.NoError(t, store.SaveHighScore(HighScore{PlayerName: "cat", Score: 1200, RunID: "run-3"}))

	high, err := store.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, "bob", high.PlayerName)
	assert.Equal(t, 2645, high.Score)
	assert.Equal(t, "run-2", high.RunID)

	count, err := store.GetTotalScoreCount()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	page, err := store.GetHighScores(2, 1)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "cat", page[0].PlayerName)
	assert.Equal(t, "ann", page[1].PlayerName)
}

func TestSQLiteScoreStoreWithManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.db")
	store, err := NewSQLiteScoreStore(path, discardLogger())
	require.NoError(t, err)

	sm := NewScoreManager(store, discardLogger())
	sm.StartRun("ann")
	sm.AddLevelScore(1, 0)
	require.NoError(t, sm.SaveHighScore())
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteScoreStore(path, discardLogger())
	require.NoError(t, err)
	defer reopened.Close()

	loaded := NewScoreManager(reopened, discardLogger())
	assert.Equal(t, "ann", loaded.HighScoreName())
	assert.Equal(t, 474, loaded.HighScoreValue())
	assert.Equal(t, sm.RunID(), loaded.HighScore().RunID)
}
