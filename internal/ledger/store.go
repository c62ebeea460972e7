// Package ledger provides the durable, insertion-ordered collection of
// spending decisions and the mutation surface that keeps remote aggregate
// statistics reconciled with it.
package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/saveup-app/saveup/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrRemindAtInPast is returned when a new decision carries a reminder
// timestamp that is not strictly after its creation time.
var ErrRemindAtInPast = errors.New("ledger: remind_at must be after created_at")

// ErrInvalidDecisionType is returned when a new decision carries an
// unknown decision type.
var ErrInvalidDecisionType = errors.New("ledger: invalid decision type")

// Store is the SQLite-backed decision collection. Insertion order is the
// ledger order: rows are returned ordered by rowid, which is monotonic
// because ids are never reused and rows are only removed explicitly.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the ledger database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Input holds the caller-supplied fields for a new decision. ID and
// CreatedAt are assigned by Append.
type Input struct {
	ItemName        string
	ItemPrice       float64
	WorkHours       float64
	InvestmentValue float64
	DecisionType    model.DecisionType
	RemindAt        *time.Time
	Categories      []string
}

// Patch holds the optional field updates for an existing decision.
// Nil fields are left untouched.
type Patch struct {
	ItemName        *string
	ItemPrice       *float64
	WorkHours       *float64
	InvestmentValue *float64
	DecisionType    *model.DecisionType
	RemindAt        *time.Time
	ClearRemindAt   bool
	Categories      []string
}

// Append stores a new decision with a fresh id and the current time as its
// creation timestamp, and returns the stored record.
func (s *Store) Append(ctx context.Context, in Input) (model.SpendingDecision, error) {
	if !in.DecisionType.Valid() {
		return model.SpendingDecision{}, ErrInvalidDecisionType
	}

	now := time.Now().UTC()
	if in.RemindAt != nil && !in.RemindAt.After(now) {
		return model.SpendingDecision{}, ErrRemindAtInPast
	}

	d := model.SpendingDecision{
		ID:              uuid.NewString(),
		ItemName:        in.ItemName,
		ItemPrice:       in.ItemPrice,
		WorkHours:       in.WorkHours,
		InvestmentValue: in.InvestmentValue,
		DecisionType:    in.DecisionType,
		RemindAt:        in.RemindAt,
		Categories:      in.Categories,
		CreatedAt:       now,
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO decisions
		(id, item_name, item_price, work_hours, investment_value,
		 decision_type, remind_at, categories, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.ID, nullString(d.ItemName), d.ItemPrice, d.WorkHours, d.InvestmentValue,
		string(d.DecisionType), nullTime(d.RemindAt), encodeCategories(d.Categories),
		d.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return model.SpendingDecision{}, fmt.Errorf("appending decision: %w", err)
	}

	return d, nil
}

// Update merges the patch into the decision with the given id. An unknown
// id is a silent no-op, not an error.
func (s *Store) Update(ctx context.Context, id string, p Patch) error {
	d, found, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	if p.ItemName != nil {
		d.ItemName = *p.ItemName
	}
	if p.ItemPrice != nil {
		d.ItemPrice = *p.ItemPrice
	}
	if p.WorkHours != nil {
		d.WorkHours = *p.WorkHours
	}
	if p.InvestmentValue != nil {
		d.InvestmentValue = *p.InvestmentValue
	}
	if p.DecisionType != nil {
		d.DecisionType = *p.DecisionType
	}
	if p.ClearRemindAt {
		d.RemindAt = nil
	} else if p.RemindAt != nil {
		d.RemindAt = p.RemindAt
	}
	if p.Categories != nil {
		d.Categories = p.Categories
	}

	_, err = s.db.ExecContext(ctx, `UPDATE decisions SET
		item_name = ?, item_price = ?, work_hours = ?, investment_value = ?,
		decision_type = ?, remind_at = ?, categories = ?
		WHERE id = ?`,
		nullString(d.ItemName), d.ItemPrice, d.WorkHours, d.InvestmentValue,
		string(d.DecisionType), nullTime(d.RemindAt), encodeCategories(d.Categories),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating decision: %w", err)
	}
	return nil
}

// Remove deletes the decision with the given id. An unknown id is a
// silent no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM decisions WHERE id = ?", id); err != nil {
		return fmt.Errorf("removing decision: %w", err)
	}
	return nil
}

// Clear empties the ledger.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM decisions"); err != nil {
		return fmt.Errorf("clearing ledger: %w", err)
	}
	return nil
}

// All returns every decision in insertion order.
func (s *Store) All(ctx context.Context) ([]model.SpendingDecision, error) {
	return s.query(ctx, selectSQL+" ORDER BY rowid")
}

// ActiveReminders returns let_me_think decisions whose reminder is still in
// the future at the given time, in insertion order.
func (s *Store) ActiveReminders(ctx context.Context, now time.Time) ([]model.SpendingDecision, error) {
	return s.query(ctx,
		selectSQL+` WHERE decision_type = ? AND remind_at IS NOT NULL AND remind_at > ?
		ORDER BY rowid`,
		string(model.DecisionLetMeThink), now.UTC().Format(time.RFC3339),
	)
}

// DueReminders returns let_me_think decisions whose reminder time has
// already passed, in insertion order. Used by the reminder daemon.
func (s *Store) DueReminders(ctx context.Context, now time.Time) ([]model.SpendingDecision, error) {
	return s.query(ctx,
		selectSQL+` WHERE decision_type = ? AND remind_at IS NOT NULL AND remind_at <= ?
		ORDER BY rowid`,
		string(model.DecisionLetMeThink), now.UTC().Format(time.RFC3339),
	)
}

// Count returns the number of decisions in the ledger.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM decisions").Scan(&n)
	return n, err
}

const selectSQL = `SELECT id, item_name, item_price, work_hours,
	investment_value, decision_type, remind_at, categories, created_at
	FROM decisions`

func (s *Store) get(ctx context.Context, id string) (model.SpendingDecision, bool, error) {
	rows, err := s.query(ctx, selectSQL+" WHERE id = ?", id)
	if err != nil {
		return model.SpendingDecision{}, false, err
	}
	if len(rows) == 0 {
		return model.SpendingDecision{}, false, nil
	}
	return rows[0], true, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]model.SpendingDecision, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying decisions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.SpendingDecision
	for rows.Next() {
		var (
			d          model.SpendingDecision
			itemName   sql.NullString
			remindAt   sql.NullString
			categories sql.NullString
			createdAt  string
			decType    string
		)
		if err := rows.Scan(&d.ID, &itemName, &d.ItemPrice, &d.WorkHours,
			&d.InvestmentValue, &decType, &remindAt, &categories, &createdAt); err != nil {
			return nil, err
		}

		d.DecisionType = model.DecisionType(decType)
		if itemName.Valid {
			d.ItemName = itemName.String
		}
		if remindAt.Valid && remindAt.String != "" {
			if t, err := time.Parse(time.RFC3339, remindAt.String); err == nil {
				d.RemindAt = &t
			}
		}
		if categories.Valid && categories.String != "" {
			_ = json.Unmarshal([]byte(categories.String), &d.Categories)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			d.CreatedAt = t
		}

		result = append(result, d)
	}
	return result, rows.Err()
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

func encodeCategories(cats []string) any {
	if len(cats) == 0 {
		return nil
	}
	b, err := json.Marshal(cats)
	if err != nil {
		return nil
	}
	return string(b)
}
