// Package inventory orchestrates item CRUD: it validates payloads, applies
// them against the store, and translates the outcome into the error kinds the
// HTTP layer maps onto responses.
package inventory

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
	"github.com/HEADSALESSDAD/inventory-mini/internal/store"
	"github.com/HEADSALESSDAD/inventory-mini/internal/validate"
)

// ErrNotFound marks an operation targeting an id that does not exist.
var ErrNotFound = errors.New("item not found")

// Create validates a create payload and persists a new item, returning the
// canonical stored row.
func Create(ctx context.Context, db *sql.DB, body io.Reader) (*model.Item, error) {
	c, err := validate.ParseCreate(body)
	if err != nil {
		return nil, err
	}

	item, err := store.InsertItem(ctx, db, c)
	if err != nil {
		logIfConstraint(err)
		return nil, err
	}
	return item, nil
}

// Get returns an item by id, or ErrNotFound.
func Get(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item, err := store.GetItem(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// List returns items ordered newest first, optionally windowed.
func List(ctx context.Context, db *sql.DB, opt store.ListOptions) ([]model.Item, error) {
	return store.ListItems(ctx, db, opt)
}

// Update validates a patch payload and applies it to an existing item.
// Validation runs before the existence check, so a malformed payload fails
// the same way whether or not the target exists.
func Update(ctx context.Context, db *sql.DB, id int64, body io.Reader) (*model.Item, error) {
	p, err := validate.ParsePatch(body)
	if err != nil {
		return nil, err
	}

	item, err := store.ApplyPatch(ctx, db, id, p)
	if err != nil {
		logIfConstraint(err)
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Delete removes an item, or returns ErrNotFound if nothing was removed.
func Delete(ctx context.Context, db *sql.DB, id int64) error {
	removed, err := store.RemoveItem(ctx, db, id)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound
	}
	return nil
}

// logIfConstraint flags storage-level rejections of validated payloads.
// Validation should make these unreachable, so one means the validation and
// schema contracts no longer agree.
func logIfConstraint(err error) {
	if errors.Is(err, store.ErrConstraint) {
		slog.Error("storage rejected a validated payload", "error", err)
	}
}
