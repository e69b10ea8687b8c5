package game

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"
)

const tableName = "high_scores"

// SQLiteScoreStore keeps every saved high score; the best one is current.
type SQLiteScoreStore struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSQLiteScoreStore(dbPath string, logger *log.Logger) (*SQLiteScoreStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	store := &SQLiteScoreStore{db: db, logger: logger}
	if err := store.createTable(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

// createTable creates the high_scores table if it does not exist.
func (store *SQLiteScoreStore) createTable() error {
	const createTableSQL = `
	CREATE TABLE IF NOT EXISTS ` + tableName + ` (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		player_name TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	_, err := store.db.Exec(createTableSQL)
	if err != nil {
		return fmt.Errorf("failed to execute CREATE TABLE: %w", err)
	}
	store.logger.Debug("High scores table ensured.")
	return nil
}

func (store *SQLiteScoreStore) Close() error {
	return store.db.Close()
}

func (store *SQLiteScoreStore) LoadHighScore() (HighScore, error) {
	scores, err := store.GetHighScores(1, 0)
	if err != nil {
		return HighScore{}, err
	}
	if len(scores) == 0 {
		return HighScore{}, ErrNoHighScore
	}
	return scores[0], nil
}

func (store *SQLiteScoreStore) SaveHighScore(score HighScore) error {
	const insertSQL = `
	INSERT INTO ` + tableName + ` (run_id, player_name, score)
	VALUES (?, ?, ?);`

	_, err := store.db.Exec(insertSQL, score.RunID, score.PlayerName, score.Score)
	if err != nil {
		return fmt.Errorf("failed to insert high score for %s: %w", score.PlayerName, err)
	}

	return nil
}

// GetHighScores retrieves a page of saved records, best first.
func (store *SQLiteScoreStore) GetHighScores(limit, offset int) ([]HighScore, error) {
	const selectSQL = `
	SELECT run_id, player_name, score, created_at
	FROM ` + tableName + `
	ORDER BY score DESC, id ASC
	LIMIT ? OFFSET ?;`

	rows, err := store.db.Query(selectSQL, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query high scores: %w", err)
	}
	defer rows.Close()

	var scores []HighScore

	for rows.Next() {
		var score HighScore
		var createdAt sql.NullString
		if err := rows.Scan(&score.RunID, &score.PlayerName, &score.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if createdAt.Valid {
			parsed, err := parseCreatedAt(createdAt.String)
			if err == nil {
				score.CreatedAt = parsed
			} else {
				store.logger.Warn("Time parsing error for score", "run", score.RunID, "name", score.PlayerName, "raw", createdAt.String, "error", err)
			}
		}
		scores = append(scores, score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}

	return scores, nil
}

func (store *SQLiteScoreStore) GetTotalScoreCount() (int, error) {
	const countSQL = `SELECT COUNT(*) FROM ` + tableName + `;`
	var count int
	err := store.db.QueryRow(countSQL).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get total score count: %w", err)
	}
	return count, nil
}

// The driver hands DATETIME back either as RFC3339 or as SQLite's own layout.
func parseCreatedAt(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02 15:04:05", raw)
	if err != nil {
		return time.Time{}, errors.Join(fmt.Errorf("unrecognised timestamp %q", raw), err)
	}
	return t, nil
}
