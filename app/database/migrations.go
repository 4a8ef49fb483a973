package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

type migration struct {
	name  string
	query string
}

// The DDL sticks to the subset PostgreSQL and SQLite share: text keys generated
// by the application, timestamps bound from Go, uniqueness enforced by constraints.
var migrations = []migration{
	{"create colleges", `
		CREATE TABLE IF NOT EXISTS colleges (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`},
	{"create students", `
		CREATE TABLE IF NOT EXISTS students (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			roll_no TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			year TEXT NOT NULL DEFAULT '',
			branch TEXT NOT NULL DEFAULT '',
			college_id TEXT NOT NULL REFERENCES colleges(id),
			created_at TIMESTAMP NOT NULL
		)`},
	{"index students.college_id", `CREATE INDEX IF NOT EXISTS idx_students_college_id ON students(college_id)`},
	{"create judges", `
		CREATE TABLE IF NOT EXISTS judges (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			password_hash TEXT NOT NULL,
			college_id TEXT NOT NULL REFERENCES colleges(id),
			created_at TIMESTAMP NOT NULL
		)`},
	{"index judges.college_id", `CREATE INDEX IF NOT EXISTS idx_judges_college_id ON judges(college_id)`},
	{"create hackathons", `
		CREATE TABLE IF NOT EXISTS hackathons (
			id TEXT PRIMARY KEY,
			college_id TEXT NOT NULL REFERENCES colleges(id),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			posted_at TIMESTAMP NOT NULL,
			deadline TIMESTAMP NOT NULL,
			prizes TEXT NOT NULL DEFAULT '',
			poster_url TEXT
		)`},
	{"index hackathons.college_id", `CREATE INDEX IF NOT EXISTS idx_hackathons_college_id ON hackathons(college_id, posted_at)`},
	{"create ideas", `
		CREATE TABLE IF NOT EXISTS ideas (
			id TEXT PRIMARY KEY,
			student_id TEXT NOT NULL REFERENCES students(id),
			hackathon_id TEXT NOT NULL REFERENCES hackathons(id),
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			prototype TEXT NOT NULL DEFAULT '',
			submitted_at TIMESTAMP NOT NULL
		)`},
	{"index ideas.student_id", `CREATE INDEX IF NOT EXISTS idx_ideas_student_id ON ideas(student_id)`},
	{"index ideas.hackathon_id", `CREATE INDEX IF NOT EXISTS idx_ideas_hackathon_id ON ideas(hackathon_id)`},
	{"create scores", `
		CREATE TABLE IF NOT EXISTS scores (
			id TEXT PRIMARY KEY,
			idea_id TEXT NOT NULL REFERENCES ideas(id),
			judge_id TEXT NOT NULL REFERENCES judges(id),
			score INTEGER NOT NULL,
			updated_at TIMESTAMP NOT NULL,
			UNIQUE (idea_id, judge_id)
		)`},
}

// RunMigrations creates the schema. Safe to call multiple times.
func RunMigrations(db *sql.DB) error {
	slog.Info("Running database migrations...")

	for _, m := range migrations {
		if _, err := db.Exec(m.query); err != nil {
			slog.Error("Migration failed", "migration", m.name, "error", err)
			return fmt.Errorf("migration %q: %w", m.name, err)
		}
		slog.Debug("Migration applied", "migration", m.name)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}
