package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one terminal command recorded for a project
type Entry struct {
	ID        int64
	SessionID string
	Project   string
	Command   string
	Timestamp time.Time
}

// Manager persists terminal command history in a SQLite database.
// All rows written by one Manager share a session id, so commands from a
// single app run can be told apart later.
type Manager struct {
	db        *sql.DB
	sessionID string
}

// NewManager opens (or creates) the history database at dbPath
func NewManager(dbPath string) (*Manager, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}

	m := &Manager{
		db:        db,
		sessionID: uuid.NewString(),
	}
	if err := m.initSchema(); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS commands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		project TEXT NOT NULL,
		command TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_commands_project ON commands(project, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_commands_session ON commands(session_id);
	`

	_, err := m.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return nil
}

// SessionID returns the id tagged onto every row this Manager writes
func (m *Manager) SessionID() string {
	return m.sessionID
}

// Append records one submitted command for a project
func (m *Manager) Append(projectName, command string) error {
	query := `
		INSERT INTO commands (session_id, project, command, created_at)
		VALUES (?, ?, ?, ?)
	`

	// Format timestamp for SQLite in local time
	timestampStr := time.Now().Local().Format("2006-01-02 15:04:05")

	_, err := m.db.Exec(query, m.sessionID, projectName, command, timestampStr)
	if err != nil {
		return fmt.Errorf("failed to save history entry: %w", err)
	}

	return nil
}

// Recent returns the newest entries first, optionally filtered by project.
// An empty project name matches every project.
func (m *Manager) Recent(projectName string, limit int) ([]Entry, error) {
	query := `
		SELECT id, session_id, project, command, created_at
		FROM commands
		WHERE (? = '' OR project = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := m.db.Query(query, projectName, projectName, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var timestamp string

		if err := rows.Scan(&entry.ID, &entry.SessionID, &entry.Project, &entry.Command, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		parsedTime, err := time.ParseInLocation("2006-01-02 15:04:05", timestamp, time.Local)
		if err != nil {
			parsedTime, _ = time.Parse(time.RFC3339, timestamp)
		}
		entry.Timestamp = parsedTime

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Clear removes all recorded commands
func (m *Manager) Clear() error {
	_, err := m.db.Exec("DELETE FROM commands")
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// GetCount returns the number of recorded commands
func (m *Manager) GetCount() (int, error) {
	var count int
	err := m.db.QueryRow("SELECT COUNT(*) FROM commands").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get history count: %w", err)
	}
	return count, nil
}

// Close releases the database handle
func (m *Manager) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}
