package database

import (
	"database/sql"
	"hackhub/app/models"
)

// CreateIdea records a student's submission. A student may submit any number
// of ideas to the same hackathon.
func CreateIdea(db *sql.DB, idea *models.Idea) error {
	idea.ID = newID()
	idea.SubmittedAt = now()

	query := `
		INSERT INTO ideas (id, student_id, hackathon_id, title, description, prototype, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Exec(query,
		idea.ID, idea.StudentID, idea.HackathonID, idea.Title, idea.Description, idea.Prototype, idea.SubmittedAt,
	)
	return err
}

const ideaDetailSelect = `
	SELECT i.id, i.student_id, i.hackathon_id, i.title, i.description, i.prototype, i.submitted_at,
		   s.name, s.roll_no, s.year, s.branch, h.title
	FROM ideas i
	JOIN students s ON s.id = i.student_id
	JOIN hackathons h ON h.id = i.hackathon_id
`

// ListIdeasForCollege returns every idea submitted to one of the college's hackathons,
// with author, hackathon title and scores attached.
func ListIdeasForCollege(db *sql.DB, collegeID string) ([]models.IdeaDetail, error) {
	return listIdeaDetails(db, ideaDetailSelect+`
		WHERE h.college_id = $1
		ORDER BY i.submitted_at DESC, i.id ASC`, collegeID)
}

// ListIdeasForStudent returns the student's own ideas with hackathon title and scores.
func ListIdeasForStudent(db *sql.DB, studentID string) ([]models.IdeaDetail, error) {
	return listIdeaDetails(db, ideaDetailSelect+`
		WHERE i.student_id = $1
		ORDER BY i.submitted_at DESC, i.id ASC`, studentID)
}

func listIdeaDetails(db *sql.DB, query string, args ...interface{}) ([]models.IdeaDetail, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}

	var ideas []models.IdeaDetail
	for rows.Next() {
		var d models.IdeaDetail
		if err := rows.Scan(
			&d.ID, &d.StudentID, &d.HackathonID, &d.Title, &d.Description, &d.Prototype, &d.SubmittedAt,
			&d.StudentName, &d.StudentRollNo, &d.StudentYear, &d.StudentBranch, &d.HackathonTitle,
		); err != nil {
			rows.Close()
			return nil, err
		}
		ideas = append(ideas, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(ideas) == 0 {
		return ideas, nil
	}

	ids := make([]string, len(ideas))
	for i, d := range ideas {
		ids[i] = d.ID
	}
	scores, err := ListScoresForIdeas(db, ids)
	if err != nil {
		return nil, err
	}

	byIdea := make(map[string][]models.Score, len(ideas))
	for _, s := range scores {
		byIdea[s.IdeaID] = append(byIdea[s.IdeaID], s)
	}
	for i := range ideas {
		ideas[i].Scores = byIdea[ideas[i].ID]
	}
	return ideas, nil
}

// GetIdeaCollegeID returns the college owning the hackathon the idea was submitted to.
func GetIdeaCollegeID(db *sql.DB, ideaID string) (string, error) {
	var collegeID string
	query := `
		SELECT h.college_id
		FROM ideas i
		JOIN hackathons h ON h.id = i.hackathon_id
		WHERE i.id = $1
	`
	err := db.QueryRow(query, ideaID).Scan(&collegeID)
	return collegeID, err
}
