package database

import (
	"database/sql"
	"hackhub/app/models"
)

// UpsertScore stores a judge's score for an idea, replacing any earlier score
// from the same judge in one statement. The row keeps the id it was first created with.
func UpsertScore(db *sql.DB, score *models.Score) error {
	score.UpdatedAt = now()

	query := `
		INSERT INTO scores (id, idea_id, judge_id, score, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (idea_id, judge_id)
		DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
	`
	_, err := db.Exec(query, newID(), score.IdeaID, score.JudgeID, score.Value, score.UpdatedAt)
	return err
}

// scoreBatchSize keeps each IN list far below PostgreSQL's 65535 bind parameters.
var scoreBatchSize = 1000

// ListScoresForIdeas returns the scores of the given ideas. Scores of one idea
// are ordered by judge.
func ListScoresForIdeas(db *sql.DB, ideaIDs []string) ([]models.Score, error) {
	var scores []models.Score
	for start := 0; start < len(ideaIDs); start += scoreBatchSize {
		end := start + scoreBatchSize
		if end > len(ideaIDs) {
			end = len(ideaIDs)
		}
		batch, err := listScoresBatch(db, ideaIDs[start:end])
		if err != nil {
			return nil, err
		}
		scores = append(scores, batch...)
	}
	return scores, nil
}

func listScoresBatch(db *sql.DB, ideaIDs []string) ([]models.Score, error) {
	query := `
		SELECT sc.id, sc.idea_id, sc.judge_id, j.name, sc.score, sc.updated_at
		FROM scores sc
		JOIN judges j ON j.id = sc.judge_id
		WHERE sc.idea_id IN (` + placeholders(1, len(ideaIDs)) + `)
		ORDER BY sc.idea_id, sc.judge_id
	`
	args := make([]interface{}, len(ideaIDs))
	for i, id := range ideaIDs {
		args[i] = id
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []models.Score
	for rows.Next() {
		var s models.Score
		if err := rows.Scan(&s.ID, &s.IdeaID, &s.JudgeID, &s.JudgeName, &s.Value, &s.UpdatedAt); err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}
