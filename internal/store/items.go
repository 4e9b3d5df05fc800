package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	sqlite "modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/HEADSALESSDAD/inventory-mini/internal/model"
	"github.com/HEADSALESSDAD/inventory-mini/internal/validate"
)

// ErrConstraint marks a storage-level rejection (CHECK or NOT NULL). The
// validation layer should make these unreachable, so hitting one means the
// validation and schema contracts have drifted apart.
var ErrConstraint = errors.New("constraint violation")

// ListOptions is an optional pagination window for ListItems. The zero value
// returns the full set.
type ListOptions struct {
	Skip  int64
	Limit int64
}

// InsertItem persists a new item and returns the canonical stored row, so
// database-side defaults are reflected in the result.
func InsertItem(ctx context.Context, db *sql.DB, c *validate.Create) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, sku, qty, price) VALUES (?, ?, ?, ?)`,
		c.Name, c.SKU, c.Qty, priceArg(c.Price),
	)
	if err != nil {
		if isConstraint(err) {
			return nil, fmt.Errorf("creating item: %w: %w", ErrConstraint, err)
		}
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, or nil if no such row exists.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	item := &model.Item{}
	var price sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, sku, qty, price FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.SKU, &item.Qty, &price)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	if err := scanPrice(item, price); err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems returns all items ordered by id descending (newest first), with
// an optional skip/limit window.
func ListItems(ctx context.Context, db *sql.DB, opt ListOptions) ([]model.Item, error) {
	query := `SELECT id, name, sku, qty, price FROM items ORDER BY id DESC`
	var args []any
	if opt.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, opt.Limit, opt.Skip)
	} else if opt.Skip > 0 {
		// SQLite requires a LIMIT clause before OFFSET; -1 means unbounded.
		query += ` LIMIT -1 OFFSET ?`
		args = append(args, opt.Skip)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var price sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &item.SKU, &item.Qty, &price); err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		if err := scanPrice(&item, price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ApplyPatch updates only the fields present in the patch and returns the
// updated row, or nil if no such row exists. The patch is a single UPDATE
// statement, so it is never half-applied. An empty patch is a no-op.
func ApplyPatch(ctx context.Context, db *sql.DB, id int64, p *validate.Patch) (*model.Item, error) {
	if p.Empty() {
		return GetItem(ctx, db, id)
	}

	var sets []string
	var args []any
	if p.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *p.Name)
	}
	if p.SKU != nil {
		sets = append(sets, "sku = ?")
		args = append(args, *p.SKU)
	}
	if p.Qty != nil {
		sets = append(sets, "qty = ?")
		args = append(args, *p.Qty)
	}
	if p.ClearPrice {
		sets = append(sets, "price = NULL")
	} else if p.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, p.Price.String())
	}
	args = append(args, id)

	result, err := db.ExecContext(ctx,
		`UPDATE items SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...,
	)
	if err != nil {
		if isConstraint(err) {
			return nil, fmt.Errorf("updating item: %w: %w", ErrConstraint, err)
		}
		return nil, fmt.Errorf("updating item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return GetItem(ctx, db, id)
}

// RemoveItem hard-deletes an item and reports whether a row existed.
func RemoveItem(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	result, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("deleting item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}
	return affected > 0, nil
}

// priceArg converts an optional price to its stored representation.
func priceArg(p *decimal.Decimal) any {
	if p == nil {
		return nil
	}
	return p.String()
}

// scanPrice parses the stored price column into the item.
func scanPrice(item *model.Item, price sql.NullString) error {
	if !price.Valid {
		return nil
	}
	d, err := decimal.NewFromString(price.String)
	if err != nil {
		return fmt.Errorf("parsing stored price %q: %w", price.String, err)
	}
	item.Price = &d
	return nil
}

// isConstraint reports whether err is a SQLite constraint failure.
func isConstraint(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xff == sqlitelib.SQLITE_CONSTRAINT
}
