package database

import (
	"database/sql"
	"hackhub/app/models"
)

// CreateCollege inserts a college, returning ErrDuplicate if the name is taken.
func CreateCollege(db *sql.DB, college *models.College) error {
	college.ID = newID()
	college.CreatedAt = now()

	query := `
		INSERT INTO colleges (id, name, email, address, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
	`
	return insertedOne(db.Exec(query,
		college.ID, college.Name, college.Email, college.Address, college.PasswordHash, college.CreatedAt,
	))
}

func GetCollegeByName(db *sql.DB, name string) (*models.College, error) {
	query := `SELECT id, name, email, address, password_hash, created_at FROM colleges WHERE name = $1`
	return scanCollege(db.QueryRow(query, name))
}

func GetCollegeByID(db *sql.DB, id string) (*models.College, error) {
	query := `SELECT id, name, email, address, password_hash, created_at FROM colleges WHERE id = $1`
	return scanCollege(db.QueryRow(query, id))
}

func scanCollege(row *sql.Row) (*models.College, error) {
	college := &models.College{}
	err := row.Scan(
		&college.ID, &college.Name, &college.Email, &college.Address,
		&college.PasswordHash, &college.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return college, nil
}

// ListColleges returns every college for the student signup form, ordered by name.
func ListColleges(db *sql.DB) ([]models.CollegeOption, error) {
	rows, err := db.Query(`SELECT id, name FROM colleges ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var colleges []models.CollegeOption
	for rows.Next() {
		var c models.CollegeOption
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		colleges = append(colleges, c)
	}
	return colleges, rows.Err()
}
