// Package alignment provides persistence for per-character alignment ledgers
package alignment

//go:generate mockgen -destination=mock/mock_repository.go -package=alignmentmock github.com/KirkDiggler/rpg-alignment/internal/repositories/alignment Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-alignment/internal/entities/alignment"
)

// MutateFunc receives the current record (or the default when none is
// stored) and returns the record to store. Returning changed=false skips the
// write.
type MutateFunc func(current alignment.Record) (next alignment.Record, changed bool, err error)

// Repository stores one alignment.Record per character. Value and history are
// always written together.
type Repository interface {
	// Get returns the stored record. A missing record is not an error:
	// Found is false and Record is zero.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetMany returns records for several characters in one read.
	// Characters without a record are absent from the map.
	GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error)

	// Set overwrites the record
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// Update atomically reads, mutates and writes the record.
	// Returns errors.Aborted if the record kept changing underneath
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes the record. Deleting a missing record succeeds.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a record
type GetInput struct {
	CharacterID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record alignment.Record
	Found  bool
}

// GetManyInput defines the input for a multi-character read
type GetManyInput struct {
	CharacterIDs []string
}

// GetManyOutput maps character ID to its stored record
type GetManyOutput struct {
	Records map[string]alignment.Record
}

// SetInput defines the input for overwriting a record
type SetInput struct {
	CharacterID string
	Record      alignment.Record
}

// SetOutput defines the output for overwriting a record
type SetOutput struct {
	Record alignment.Record
}

// UpdateInput defines the input for an atomic read-modify-write
type UpdateInput struct {
	CharacterID string
	// Default is handed to Mutate when nothing is stored yet
	Default alignment.Record
	Mutate  MutateFunc
}

// UpdateOutput defines the output for an atomic read-modify-write
type UpdateOutput struct {
	Record  alignment.Record
	Applied bool
	// Found reports whether a record was stored before the update
	Found bool
}

// DeleteInput defines the input for deleting a record
type DeleteInput struct {
	CharacterID string
}

// DeleteOutput defines the output for deleting a record
type DeleteOutput struct{}
