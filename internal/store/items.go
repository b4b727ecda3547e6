package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/erazemk/inventar/internal/model"
)

// ItemFields are the mutable columns of an item. Nil pointers are stored as NULL.
type ItemFields struct {
	Name     string
	Category *string
	Quantity *int64
	Price    *model.Price
}

const itemColumns = `id, name, category, quantity, price, created_at, updated_at`

// CreateItem inserts a new item and returns its id.
func CreateItem(ctx context.Context, db *sql.DB, f ItemFields) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (name, category, quantity, price) VALUES (?, ?, ?, ?)`,
		f.Name, f.Category, f.Quantity, f.Price,
	)
	if err != nil {
		return 0, persistErr("creating item", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, persistErr("getting item id", err)
	}
	return id, nil
}

// GetItem returns an item by ID, or nil if it does not exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, persistErr("getting item", err)
	}
	return item, nil
}

// ListItems returns all items, newest first.
func ListItems(ctx context.Context, db *sql.DB) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY id DESC`,
	)
	if err != nil {
		return nil, persistErr("listing items", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, persistErr("scanning item", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, persistErr("listing items", err)
	}
	return items, nil
}

// UpdateItem overwrites an item's mutable fields. Updating an id that does not
// exist is not an error.
func UpdateItem(ctx context.Context, db *sql.DB, id int64, f ItemFields) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET name = ?, category = ?, quantity = ?, price = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		f.Name, f.Category, f.Quantity, f.Price, id,
	)
	if err != nil {
		return persistErr("updating item", err)
	}
	return nil
}

// DeleteItem permanently removes an item. Non-positive or unknown ids are ignored.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	if id <= 0 {
		return nil
	}

	_, err := db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return persistErr("deleting item", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}
