package alignment

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	"github.com/KirkDiggler/rpg-alignment/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-alignment/internal/repositories/alignment/migrations"
	"github.com/KirkDiggler/rpg-alignment/internal/sqlite"
)

// SQLiteConfig contains configuration for the SQLite alignment repository.
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", cfg.Path, vb)
	return vb.Build()
}

// SQLiteRepository persists alignment records in one row per character.
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens the database and applies migrations
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sqlite.Open(ctx, cfg.Path, migrations.FS)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open alignment database")
	}
	// One connection serializes read-modify-write transactions in process;
	// busy_timeout covers other processes.
	db.SetMaxOpenConns(1)

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

var _ Repository = (*SQLiteRepository)(nil)

// Close closes the database handle
func (s *SQLiteRepository) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the stored record for one character
func (s *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record, found, err := s.load(ctx, s.db, input.CharacterID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Record: record, Found: found}, nil
}

// GetMany returns records for several characters
func (s *SQLiteRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	records := make(map[string]alignment.Record, len(input.CharacterIDs))
	if len(input.CharacterIDs) == 0 {
		return &GetManyOutput{Records: records}, nil
	}

	args := make([]any, len(input.CharacterIDs))
	for i, id := range input.CharacterIDs {
		if id == "" {
			return nil, errors.InvalidArgument(errCharacterIDEmpty)
		}
		args[i] = id
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(args)), ",")
	rows, err := s.db.QueryContext(ctx,
		`SELECT character_id, law, moral, history FROM alignment_records WHERE character_id IN (`+placeholders+`)`,
		args...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query alignment records")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id      string
			record  alignment.Record
			history string
		)
		if err := rows.Scan(&id, &record.Values.Law, &record.Values.Moral, &history); err != nil {
			return nil, errors.Wrapf(err, "failed to scan alignment record")
		}
		if err := json.Unmarshal([]byte(history), &record.History); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "corrupt alignment history")
		}
		records[id] = normalize(record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read alignment records")
	}

	return &GetManyOutput{Records: records}, nil
}

// Set overwrites the record for one character
func (s *SQLiteRepository) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	record := normalize(input.Record)
	if err := s.store(ctx, s.db, input.CharacterID, record); err != nil {
		return nil, err
	}

	return &SetOutput{Record: record}, nil
}

// Update reads, mutates and writes the record inside one transaction
func (s *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}
	if input.Mutate == nil {
		return nil, errors.InvalidArgument(errMutateNil)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to begin alignment transaction")
	}
	defer func() { _ = tx.Rollback() }()

	current, found, err := s.load(ctx, tx, input.CharacterID)
	if err != nil {
		return nil, err
	}
	if !found {
		current = normalize(input.Default)
	}

	next, changed, err := input.Mutate(current.Clone())
	if err != nil {
		return nil, err
	}
	if !changed {
		return &UpdateOutput{Record: current, Found: found}, nil
	}

	next = normalize(next)
	if err := s.store(ctx, tx, input.CharacterID, next); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrapf(err, "failed to commit alignment transaction")
	}

	return &UpdateOutput{Record: next, Applied: true, Found: found}, nil
}

// Delete removes the record for one character
func (s *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM alignment_records WHERE character_id = ?`, input.CharacterID); err != nil {
		return nil, errors.Wrapf(err, "failed to delete alignment record")
	}

	return &DeleteOutput{}, nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *SQLiteRepository) load(ctx context.Context, q queryer, characterID string) (alignment.Record, bool, error) {
	var (
		record  alignment.Record
		history string
	)
	err := q.QueryRowContext(ctx,
		`SELECT law, moral, history FROM alignment_records WHERE character_id = ?`,
		characterID,
	).Scan(&record.Values.Law, &record.Values.Moral, &history)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return alignment.Record{}, false, nil
		}
		return alignment.Record{}, false, errors.Wrapf(err, "failed to get alignment record")
	}

	if err := json.Unmarshal([]byte(history), &record.History); err != nil {
		return alignment.Record{}, false, errors.WrapWithCode(err, errors.CodeInternal, "corrupt alignment history")
	}

	return normalize(record), true, nil
}

func (s *SQLiteRepository) store(ctx context.Context, q queryer, characterID string, record alignment.Record) error {
	history, err := json.Marshal(record.History)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal alignment history")
	}

	_, err = q.ExecContext(ctx,
		`INSERT INTO alignment_records (character_id, law, moral, history, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(character_id) DO UPDATE SET
		   law = excluded.law,
		   moral = excluded.moral,
		   history = excluded.history,
		   updated_at = excluded.updated_at`,
		characterID,
		record.Values.Law,
		record.Values.Moral,
		string(history),
		s.clock.Now().UnixMilli(),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to store alignment record")
	}
	return nil
}
