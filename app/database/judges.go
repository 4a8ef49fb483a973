package database

import (
	"database/sql"
	"hackhub/app/models"
)

// CreateJudge inserts a judge under the id the college chose.
// Judge ids are unique across all colleges; a taken id yields ErrDuplicate.
func CreateJudge(db *sql.DB, judge *models.Judge) error {
	judge.CreatedAt = now()

	query := `
		INSERT INTO judges (id, name, password_hash, college_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT DO NOTHING
	`
	return insertedOne(db.Exec(query,
		judge.ID, judge.Name, judge.PasswordHash, judge.CollegeID, judge.CreatedAt,
	))
}

func GetJudgeByID(db *sql.DB, id string) (*models.Judge, error) {
	judge := &models.Judge{}
	query := `SELECT id, name, password_hash, college_id, created_at FROM judges WHERE id = $1`

	err := db.QueryRow(query, id).Scan(
		&judge.ID, &judge.Name, &judge.PasswordHash, &judge.CollegeID, &judge.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return judge, nil
}

func ListJudgesByCollege(db *sql.DB, collegeID string) ([]models.Judge, error) {
	query := `SELECT id, name, college_id, created_at FROM judges WHERE college_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := db.Query(query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var judges []models.Judge
	for rows.Next() {
		var j models.Judge
		if err := rows.Scan(&j.ID, &j.Name, &j.CollegeID, &j.CreatedAt); err != nil {
			return nil, err
		}
		judges = append(judges, j)
	}
	return judges, rows.Err()
}
