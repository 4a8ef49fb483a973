package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"hackhub/app/database"
	"hackhub/app/models"

	_ "modernc.org/sqlite"
)

// OpenTestDB creates a fresh SQLite database in a temp dir with the full schema applied.
func OpenTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "hackhub.db") +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.RunMigrations(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// CreateTestCollege inserts a college with the given name and password hash.
func CreateTestCollege(t *testing.T, db *sql.DB, name, passwordHash string) *models.College {
	t.Helper()

	college := &models.College{
		Name:         name,
		Email:        "admin@" + name + ".test",
		Address:      "1 Campus Road",
		PasswordHash: passwordHash,
	}
	if err := database.CreateCollege(db, college); err != nil {
		t.Fatalf("Failed to create test college %q: %v", name, err)
	}
	return college
}

// CreateTestStudent inserts a student of collegeID.
func CreateTestStudent(t *testing.T, db *sql.DB, collegeID, rollNo, passwordHash string) *models.Student {
	t.Helper()

	student := &models.Student{
		Name:         "Student " + rollNo,
		RollNo:       rollNo,
		PasswordHash: passwordHash,
		Year:         "3",
		Branch:       "CSE",
		CollegeID:    collegeID,
	}
	if err := database.CreateStudent(db, student); err != nil {
		t.Fatalf("Failed to create test student %q: %v", rollNo, err)
	}
	return student
}

// CreateTestJudge inserts a judge of collegeID.
func CreateTestJudge(t *testing.T, db *sql.DB, collegeID, judgeID, passwordHash string) *models.Judge {
	t.Helper()

	judge := &models.Judge{
		ID:           judgeID,
		Name:         "Judge " + judgeID,
		PasswordHash: passwordHash,
		CollegeID:    collegeID,
	}
	if err := database.CreateJudge(db, judge); err != nil {
		t.Fatalf("Failed to create test judge %q: %v", judgeID, err)
	}
	return judge
}

// CreateTestHackathon posts a hackathon for collegeID with a deadline a month out.
func CreateTestHackathon(t *testing.T, db *sql.DB, collegeID, title string) *models.Hackathon {
	t.Helper()

	h := &models.Hackathon{
		CollegeID:   collegeID,
		Title:       title,
		Description: title + " description",
		Deadline:    time.Now().UTC().AddDate(0, 1, 0).Truncate(24 * time.Hour),
		Prizes:      "Swag",
	}
	if err := database.CreateHackathon(db, h); err != nil {
		t.Fatalf("Failed to create test hackathon %q: %v", title, err)
	}
	return h
}

// CreateTestIdea submits an idea by studentID to hackathonID.
func CreateTestIdea(t *testing.T, db *sql.DB, studentID, hackathonID, title string) *models.Idea {
	t.Helper()

	idea := &models.Idea{
		StudentID:   studentID,
		HackathonID: hackathonID,
		Title:       title,
		Description: title + " description",
		Prototype:   "https://example.com/" + title,
	}
	if err := database.CreateIdea(db, idea); err != nil {
		t.Fatalf("Failed to create test idea %q: %v", title, err)
	}
	return idea
}
