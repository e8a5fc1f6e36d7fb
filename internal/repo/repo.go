package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Evaluation is one persisted lift safety check.
type Evaluation struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id"`
	RiskLevel  string          `json:"risk_level"`
	SafeToLift bool            `json:"safe_to_lift"`
	Config     json.RawMessage `json:"config"`
	Report     json.RawMessage `json:"report"`
	CreatedAt  time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetBylogin(ctx context.Context, login string) (int, string, error)

	SaveEvaluation(ctx context.Context, userID int, riskLevel string, safeToLift bool, config, report []byte) (int, error)
	ListEvaluations(ctx context.Context, userID, limit int) ([]Evaluation, error)
	GetEvaluation(ctx context.Context, userID, id int) (Evaluation, error)
	ListCriticalSince(ctx context.Context, since time.Time) ([]Evaluation, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetBylogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) SaveEvaluation(ctx context.Context, userID int, riskLevel string, safeToLift bool, config, report []byte) (int, error) {
	var id int
	query := `INSERT INTO evaluations (user_id, risk_level, safe_to_lift, config, report, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, userID, riskLevel, safeToLift, config, report).Scan(&id)
	return id, err
}

func (r *PostgresRepository) ListEvaluations(ctx context.Context, userID, limit int) ([]Evaluation, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	query := `SELECT id, user_id, risk_level, safe_to_lift, config, report, created_at
		FROM evaluations WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvaluations(rows)
}

func (r *PostgresRepository) GetEvaluation(ctx context.Context, userID, id int) (Evaluation, error) {
	var ev Evaluation
	query := `SELECT id, user_id, risk_level, safe_to_lift, config, report, created_at
		FROM evaluations WHERE user_id=$1 AND id=$2`
	err := r.db.QueryRowContext(ctx, query, userID, id).
		Scan(&ev.ID, &ev.UserID, &ev.RiskLevel, &ev.SafeToLift, &ev.Config, &ev.Report, &ev.CreatedAt)
	return ev, err
}

func (r *PostgresRepository) ListCriticalSince(ctx context.Context, since time.Time) ([]Evaluation, error) {
	query := `SELECT id, user_id, risk_level, safe_to_lift, config, report, created_at
		FROM evaluations WHERE risk_level='CRITICAL' AND created_at > $1 ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEvaluations(rows)
}

func scanEvaluations(rows *sql.Rows) ([]Evaluation, error) {
	var out []Evaluation
	for rows.Next() {
		var ev Evaluation
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.RiskLevel, &ev.SafeToLift, &ev.Config, &ev.Report, &ev.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}
