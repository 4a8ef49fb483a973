package database

import (
	"database/sql"
	"hackhub/app/models"
)

// CreateHackathon posts a hackathon for its college, stamping the post time.
func CreateHackathon(db *sql.DB, h *models.Hackathon) error {
	h.ID = newID()
	h.PostedAt = now()

	query := `
		INSERT INTO hackathons (id, college_id, title, description, posted_at, deadline, prizes, poster_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := db.Exec(query,
		h.ID, h.CollegeID, h.Title, h.Description, h.PostedAt, h.Deadline, h.Prizes, nullString(h.PosterURL),
	)
	return err
}

// ListHackathonsByCollege returns a college's hackathons, newest post first.
func ListHackathonsByCollege(db *sql.DB, collegeID string) ([]models.Hackathon, error) {
	query := `
		SELECT id, college_id, title, description, posted_at, deadline, prizes, poster_url
		FROM hackathons
		WHERE college_id = $1
		ORDER BY posted_at DESC, id ASC
	`
	rows, err := db.Query(query, collegeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hackathons []models.Hackathon
	for rows.Next() {
		var h models.Hackathon
		var poster sql.NullString
		if err := rows.Scan(
			&h.ID, &h.CollegeID, &h.Title, &h.Description,
			&h.PostedAt, &h.Deadline, &h.Prizes, &poster,
		); err != nil {
			return nil, err
		}
		h.PosterURL = poster.String
		hackathons = append(hackathons, h)
	}
	return hackathons, rows.Err()
}

func GetHackathonByID(db *sql.DB, id string) (*models.Hackathon, error) {
	h := &models.Hackathon{}
	var poster sql.NullString
	query := `
		SELECT id, college_id, title, description, posted_at, deadline, prizes, poster_url
		FROM hackathons WHERE id = $1
	`
	err := db.QueryRow(query, id).Scan(
		&h.ID, &h.CollegeID, &h.Title, &h.Description,
		&h.PostedAt, &h.Deadline, &h.Prizes, &poster,
	)
	if err != nil {
		return nil, err
	}
	h.PosterURL = poster.String
	return h, nil
}
