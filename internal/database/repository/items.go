package repository

import (
	"context"
	"database/sql"
)

// MenuItem represents a menu_items row. Price is kept as decimal text.
type MenuItem struct {
	ID          string
	Name        string
	Description string
	Price       string
	ImageRef    *string
	Category    string
	SortOrder   int
}

// ItemRepo reads the menu.
type ItemRepo struct {
	db *sql.DB
}

func NewItemRepo(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
}

func (r *ItemRepo) List(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, description, price, image_ref, category, sort_order FROM menu_items ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []MenuItem
	for rows.Next() {
		var it MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.ImageRef, &it.Category, &it.SortOrder); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
