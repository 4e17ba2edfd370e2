package character

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/rpg-alignment/internal/entities"
	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	"github.com/KirkDiggler/rpg-alignment/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-alignment/internal/repositories/character/migrations"
	"github.com/KirkDiggler/rpg-alignment/internal/sqlite"
)

// SQLiteConfig contains configuration for the SQLite character repository.
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

// SQLiteRepository keeps the roster in a characters table.
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
		return nil, errors.Wrap(err, "failed to open character database")
	}
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

const characterColumns = `id, name, type, player_owned, traits, created_at, updated_at`

// Create inserts a new character
func (s *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	character := *input.Character
	now := s.clock.Now()
	if character.CreatedAt.IsZero() {
		character.CreatedAt = now
	}
	character.UpdatedAt = now

	traits, err := json.Marshal(nonNilTraits(character.Traits))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal traits")
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO characters (`+characterColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO NOTHING`,
		character.ID, character.Name, character.Type, character.PlayerOwned, string(traits),
		character.CreatedAt.UnixNano(), character.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	} else if n == 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", character.ID)
	}

	return &CreateOutput{Character: &character}, nil
}

// Get loads one character
func (s *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+characterColumns+` FROM characters WHERE id = ?`, input.ID)
	character, err := scanCharacter(row)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	if err != nil {
		return nil, err
	}

	return &GetOutput{Character: character}, nil
}

// Update overwrites an existing character, keeping its creation time
func (s *SQLiteRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	existing, err := s.Get(ctx, GetInput{ID: input.Character.ID})
	if err != nil {
		return nil, err
	}

	character := *input.Character
	character.CreatedAt = existing.Character.CreatedAt
	character.UpdatedAt = s.clock.Now()

	traits, err := json.Marshal(nonNilTraits(character.Traits))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal traits")
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE characters SET name = ?, type = ?, player_owned = ?, traits = ?, updated_at = ? WHERE id = ?`,
		character.Name, character.Type, character.PlayerOwned, string(traits),
		character.UpdatedAt.UnixNano(), character.ID,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: &character}, nil
}

// Delete removes one character
func (s *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM characters WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}
	if n, err := res.RowsAffected(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	} else if n == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

// List returns the roster ordered by creation time, then ID
func (s *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+characterColumns+` FROM characters ORDER BY created_at, id`)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query characters")
	}
	defer rows.Close()

	characters := make([]*entities.Character, 0)
	for rows.Next() {
		character, err := scanCharacter(rows)
		if err != nil {
			return nil, err
		}
		if input.PlayerCharactersOnly && !character.IsPlayerCharacter() {
			continue
		}
		characters = append(characters, character)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read characters")
	}

	return &ListOutput{Characters: characters}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCharacter(row scanner) (*entities.Character, error) {
	var (
		character          entities.Character
		traits             string
		createdAt, updated int64
	)
	if err := row.Scan(
		&character.ID, &character.Name, &character.Type, &character.PlayerOwned,
		&traits, &createdAt, &updated,
	); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to scan character")
	}
	if err := json.Unmarshal([]byte(traits), &character.Traits); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal traits for %s", character.ID)
	}
	if len(character.Traits) == 0 {
		character.Traits = nil
	}
	character.CreatedAt = time.Unix(0, createdAt).UTC()
	character.UpdatedAt = time.Unix(0, updated).UTC()

	return &character, nil
}

func nonNilTraits(traits []string) []string {
	if traits == nil {
		return []string{}
	}
	return traits
}
