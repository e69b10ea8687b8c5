package game

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelScore(t *testing.T) {
	cases := []struct {
		level, moves, want int
	}{
		{1, 0, 474},
		{1, 1, 472},
		{1, 154, 237},
		{1, 400, 237},
		{1, 10000, 237},
		{2, 0, 1280},
		{2, 253, 640},
		{3, 0, 898},
		{3, 212, 449},
		{0, 50, 150},
		{4, 0, 200},
		{4, 100, 100},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelScore(tc.level, tc.moves), "level %d moves %d", tc.level, tc.moves)
	}
}

func TestScoreManager(t *testing.T) {
	t.Run("defaults when nothing is stored", func(t *testing.T) {
		sm := NewScoreManager(&memoryStore{}, discardLogger())
		assert.Equal(t, DefaultHighScoreName, sm.HighScoreName())
		assert.Equal(t, 0, sm.HighScoreValue())
	})

	t.Run("defaults when the store fails", func(t *testing.T) {
		sm := NewScoreManager(brokenStore{}, discardLogger())
		assert.Equal(t, DefaultHighScoreName, sm.HighScoreName())
		assert.Equal(t, 0, sm.HighScoreValue())
	})

	t.Run("accumulates level scores", func(t *testing.T) {
		sm := NewScoreManager(nil, discardLogger())
		sm.StartRun("ann")
		assert.Equal(t, 472, sm.AddLevelScore(1, 1))
		assert.Equal(t, 237, sm.AddLevelScore(1, 500))
		assert.Equal(t, 709, sm.CurrentScore())
		assert.NotEmpty(t, sm.RunID())

		sm.ResetScore()
		assert.Equal(t, 0, sm.CurrentScore())
	})

	t.Run("new high score is strictly greater", func(t *testing.T) {
		store := &memoryStore{high: &HighScore{PlayerName: "bob", Score: 472}}
		sm := NewScoreManager(store, discardLogger())
		sm.StartRun("ann")

		sm.AddLevelScore(1, 1)
		assert.Equal(t, 472, sm.CurrentScore())
		assert.False(t, sm.IsNewHighScore())

		sm.AddLevelScore(4, 1000)
		assert.True(t, sm.IsNewHighScore())
	})

	t.Run("save updates the record", func(t *testing.T) {
		store := &memoryStore{}
		sm := NewScoreManager(store, discardLogger())
		sm.StartRun("ann")
		sm.AddLevelScore(1, 0)

		require.NoError(t, sm.SaveHighScore())
		assert.Equal(t, 1, store.saves)
		assert.Equal(t, "ann", store.high.PlayerName)
		assert.Equal(t, 474, store.high.Score)
		assert.Equal(t, sm.RunID(), store.high.RunID)
		assert.False(t, sm.IsNewHighScore())
	})

	t.Run("failed save keeps the old record", func(t *testing.T) {
		sm := NewScoreManager(brokenStore{}, discardLogger())
		sm.StartRun("ann")
		sm.AddLevelScore(1, 0)

		err := sm.SaveHighScore()
		require.ErrorIs(t, err, errDiskFull)
		assert.Equal(t, 0, sm.HighScoreValue())
		assert.True(t, sm.IsNewHighScore())
	})
}

func TestFileScoreStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.dat")
	store := NewFileScoreStore(path)

	_, err := store.LoadHighScore()
	assert.ErrorIs(t, err, ErrNoHighScore)
	count, err := store.GetTotalScoreCount()
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, store.SaveHighScore(HighScore{PlayerName: "ann lee", Score: 2645}))

	high, err := store.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, "ann_lee", high.PlayerName)
	assert.Equal(t, 2645, high.Score)

	sm := NewScoreManager(store, discardLogger())
	assert.Equal(t, "ann_lee", sm.HighScoreName())
	assert.Equal(t, 2645, sm.HighScoreValue())

	scores, err := store.GetHighScores(10, 0)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 2645, scores[0].Score)
}

func TestFileScoreStoreUnwritable(t *testing.T) {
	store := NewFileScoreStore(filepath.Join(t.TempDir(), "missing", "score.dat"))
	assert.Error(t, store.SaveHighScore(HighScore{PlayerName: "ann", Score: 1}))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "ann", SanitizeName("  ann "))
	assert.Equal(t, "ann_lee", SanitizeName("ann lee"))
	assert.Equal(t, "abcdefghij", SanitizeName("abcdefghijklmnop"))
	assert.Equal(t, DefaultPlayerName, SanitizeName("   "))
}
