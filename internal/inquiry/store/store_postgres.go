package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"vetgate/internal/inquiry/models"
	"vetgate/internal/sentinel"
)

// PostgresStore persists inquiry records in PostgreSQL. The full provider
// document is kept as JSONB so provider-side additions survive round-trips;
// status and timestamps are extracted for querying.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed inquiry store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Save(ctx context.Context, inq *models.Inquiry) error {
	if inq == nil {
		return fmt.Errorf("inquiry record is required")
	}
	payload, err := json.Marshal(inq)
	if err != nil {
		return fmt.Errorf("encode inquiry: %w", err)
	}
	query := `
		INSERT INTO inquiries (id, status, created_at, expires_at, payload)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status, payload = EXCLUDED.payload, updated_at = now()
	`
	if _, err := s.db.ExecContext(ctx, query,
		inq.ID,
		string(inq.Status),
		inq.CreatedAt,
		inq.ExpiresAt,
		payload,
	); err != nil {
		return fmt.Errorf("save inquiry: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*models.Inquiry, error) {
	query := `SELECT payload FROM inquiries WHERE id = $1`
	var payload []byte
	err := s.db.QueryRowContext(ctx, query, id).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find inquiry: %w", err)
	}
	return decodeInquiry(payload)
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Inquiry, error) {
	query := `SELECT payload FROM inquiries ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	var out []*models.Inquiry
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		inq, err := decodeInquiry(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiries: %w", err)
	}
	return out, nil
}

func decodeInquiry(payload []byte) (*models.Inquiry, error) {
	var inq models.Inquiry
	if err := json.Unmarshal(payload, &inq); err != nil {
		return nil, fmt.Errorf("decode inquiry payload: %w", err)
	}
	return &inq, nil
}
