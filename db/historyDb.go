package db

import (
	"database/sql"
	"fmt"

	"skilledu/models"

	_ "github.com/lib/pq"
)

type HistoryRepository interface {
	SaveResponse(record *models.HistoryRecord) error
	GetUserResponses(userID int) ([]*models.HistoryRecord, error)
	DeleteResponse(userID, responseID int) error
	DeleteAllResponses(userID int) error
}

type PostgresHistoryRepository struct {
	db *sql.DB
}

func NewPostgresHistoryRepository(databaseURL string) (*PostgresHistoryRepository, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresHistoryRepository{db: db}, nil
}

func (r *PostgresHistoryRepository) SaveResponse(record *models.HistoryRecord) error {
	query := `
		INSERT INTO ai_responses (user_id, question, answer, explanation, steps, subject)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	row := r.db.QueryRow(query,
		record.UserID,
		record.Question,
		record.Answer,
		nullableString(record.Explanation),
		nullableString(record.Steps),
		record.Subject,
	)

	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		return fmt.Errorf("failed to save response: %w", err)
	}

	return nil
}

func (r *PostgresHistoryRepository) GetUserResponses(userID int) ([]*models.HistoryRecord, error) {
	query := `
		SELECT id, user_id, question, answer, explanation, steps, subject, created_at
		FROM ai_responses
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query responses: %w", err)
	}
	defer rows.Close()

	records := make([]*models.HistoryRecord, 0)
	for rows.Next() {
		record := &models.HistoryRecord{}
		var explanation, steps sql.NullString
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Question,
			&record.Answer,
			&explanation,
			&steps,
			&record.Subject,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}

		record.Explanation = explanation.String
		record.Steps = steps.String
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating over responses: %w", err)
	}

	return records, nil
}

func (r *PostgresHistoryRepository) DeleteResponse(userID, responseID int) error {
	query := "DELETE FROM ai_responses WHERE id = $1 AND user_id = $2"

	result, err := r.db.Exec(query, responseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete response: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("response with id %d not found", responseID)
	}

	return nil
}

func (r *PostgresHistoryRepository) DeleteAllResponses(userID int) error {
	query := "DELETE FROM ai_responses WHERE user_id = $1"

	if _, err := r.db.Exec(query, userID); err != nil {
		return fmt.Errorf("failed to delete responses: %w", err)
	}

	return nil
}

func (r *PostgresHistoryRepository) Close() error {
	return r.db.Close()
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
