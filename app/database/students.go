package database

import (
	"database/sql"
	"hackhub/app/models"
)

// CreateStudent inserts a student, returning ErrDuplicate if the roll number is taken.
func CreateStudent(db *sql.DB, student *models.Student) error {
	student.ID = newID()
	student.CreatedAt = now()

	query := `
		INSERT INTO students (id, name, roll_no, password_hash, year, branch, college_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT DO NOTHING
	`
	return insertedOne(db.Exec(query,
		student.ID, student.Name, student.RollNo, student.PasswordHash,
		student.Year, student.Branch, student.CollegeID, student.CreatedAt,
	))
}

func GetStudentByRollNo(db *sql.DB, rollNo string) (*models.Student, error) {
	query := `SELECT id, name, roll_no, password_hash, year, branch, college_id, created_at
			  FROM students WHERE roll_no = $1`
	return scanStudent(db.QueryRow(query, rollNo))
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	query := `SELECT id, name, roll_no, password_hash, year, branch, college_id, created_at
			  FROM students WHERE id = $1`
	return scanStudent(db.QueryRow(query, id))
}

func scanStudent(row *sql.Row) (*models.Student, error) {
	s := &models.Student{}
	err := row.Scan(
		&s.ID, &s.Name, &s.RollNo, &s.PasswordHash,
		&s.Year, &s.Branch, &s.CollegeID, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}
