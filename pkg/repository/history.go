package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/delta/pkg/domain"
)

// HistoryRepository handles transcript database operations
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a new history repository
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Add appends one transcript entry and fills in its ID and timestamp
func (r *HistoryRepository) Add(ctx context.Context, entry *domain.HistoryEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO history (role, text, intent, created_at) VALUES (?, ?, ?, ?)`
		result, err := r.db.ExecContext(ctx, query, entry.Role, entry.Text, entry.Intent, entry.CreatedAt)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("insert history entry: %w", err)}
		}
		id, err := result.LastInsertId()
		if err != nil {
			return &criticalError{err: fmt.Errorf("get history entry id: %w", err)}
		}
		entry.ID = id
		return nil
	})
}

// Recent returns up to limit newest entries in chronological order
func (r *HistoryRepository) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	var entries []domain.HistoryEntry
	query := `
		SELECT id, role, text, intent, created_at FROM
			(SELECT * FROM history ORDER BY id DESC LIMIT ?)
		ORDER BY id ASC
	`
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("get recent history: %w", err)
	}
	return entries, nil
}

// Clear wipes the whole transcript
func (r *HistoryRepository) Clear(ctx context.Context) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		if _, err := r.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("clear history: %w", err)}
		}
		return nil
	})
}

// Count returns the number of stored transcript entries
func (r *HistoryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM history"); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}
