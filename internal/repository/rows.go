package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/DanRulev/sentrack.git/internal/models"
	"github.com/lib/pq"
)

type RowsR struct {
	db QueryI
}

func NewRowsRepository(db QueryI) *RowsR {
	return &RowsR{db: db}
}

type rowRecord struct {
	ID        string         `db:"id"`
	No        int            `db:"no"`
	Ko        string         `db:"ko"`
	En        string         `db:"en"`
	History   pq.StringArray `db:"history"`
	Count     int            `db:"attempt_count"`
	ReviewDay sql.NullTime   `db:"review_day"`
}

func (r rowRecord) toModel() models.Row {
	row := models.Row{
		ID:      r.ID,
		No:      r.No,
		Ko:      r.Ko,
		En:      r.En,
		History: make([]models.Outcome, 0, len(r.History)),
		Count:   r.Count,
	}
	for _, h := range r.History {
		row.History = append(row.History, models.Outcome(h))
	}
	if r.ReviewDay.Valid {
		row.ReviewDay = r.ReviewDay.Time.Format(time.DateOnly)
	}
	return row
}

func historyArray(history []models.Outcome) pq.StringArray {
	arr := make(pq.StringArray, len(history))
	for i, h := range history {
		arr[i] = string(h)
	}
	return arr
}

// reviewDay is NULL until the first outcome is recorded.
func reviewDay(day string) sql.NullTime {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t, Valid: true}
}

func (r *RowsR) ListRows(ctx context.Context, ownerID string) ([]models.Row, error) {
	query := `
		SELECT id, no, ko, en, history, attempt_count, review_day
		FROM practice_rows
		WHERE user_id = $1
		ORDER BY no ASC
	`

	records := make([]rowRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list rows for %s: %w", ownerID, err)
	}

	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		rows = append(rows, rec.toModel())
	}
	return rows, nil
}

func (r *RowsR) InsertRow(ctx context.Context, ownerID string, row models.Row) (string, error) {
	query := `
		INSERT INTO practice_rows (user_id, no, ko, en, history, attempt_count, review_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id string
	err := r.db.GetContext(ctx, &id, query,
		ownerID, row.No, row.Ko, row.En, historyArray(row.History), row.Count, reviewDay(row.ReviewDay))
	if err != nil {
		return "", fmt.Errorf("failed to insert row: %w", err)
	}
	return id, nil
}

func (r *RowsR) UpdateRow(ctx context.Context, ownerID string, row models.Row) error {
	query := `
		UPDATE practice_rows SET
			ko = $3,
			en = $4,
			history = $5,
			attempt_count = $6,
			review_day = $7,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
	`

	_, err := r.db.ExecContext(ctx, query,
		row.ID, ownerID, row.Ko, row.En, historyArray(row.History), row.Count, reviewDay(row.ReviewDay))
	if err != nil {
		return fmt.Errorf("failed to update row %s: %w", row.ID, err)
	}
	return nil
}

func (r *RowsR) DeleteRow(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM practice_rows WHERE id = $1 AND user_id = $2`

	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		return fmt.Errorf("failed to delete row %s: %w", id, err)
	}
	return nil
}

// ReorderRows writes all sequence numbers in one statement.
func (r *RowsR) ReorderRows(ctx context.Context, ownerID string, order []models.RowOrder) error {
	if len(order) == 0 {
		return nil
	}

	ids := make(pq.StringArray, len(order))
	nos := make(pq.Int64Array, len(order))
	for i, o := range order {
		ids[i] = o.ID
		nos[i] = int64(o.No)
	}

	query := `
		UPDATE practice_rows AS p
		SET no = v.no, updated_at = NOW()
		FROM unnest($1::uuid[], $2::int[]) AS v(id, no)
		WHERE p.id = v.id AND p.user_id = $3
	`

	if _, err := r.db.ExecContext(ctx, query, ids, nos, ownerID); err != nil {
		return fmt.Errorf("failed to reorder rows: %w", err)
	}
	return nil
}
