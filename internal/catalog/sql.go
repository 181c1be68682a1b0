package catalog

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/jask/makemecoffee/internal/database/repository"
)

// MenuLister is the slice of repository.ItemRepo the SQL provider needs.
type MenuLister interface {
	List(ctx context.Context) ([]repository.MenuItem, error)
}

// SQLProvider serves the menu stored in a local SQLite menu file.
type SQLProvider struct {
	Items MenuLister
}

func (p *SQLProvider) Fetch(ctx context.Context) ([]Item, error) {
	if p.Items == nil {
		return nil, &LoadError{Cause: errors.New("menu source not configured")}
	}
	rows, err := p.Items.List(ctx)
	if err != nil {
		return nil, &LoadError{Cause: errors.Wrap(err, "list menu items")}
	}
	out := make([]Item, 0, len(rows))
	for _, row := range rows {
		it, err := itemFromRow(row)
		if err != nil {
			return nil, &LoadError{Cause: err}
		}
		out = append(out, it)
	}
	return out, nil
}

func itemFromRow(row repository.MenuItem) (Item, error) {
	price, err := decimal.NewFromString(row.Price)
	if err != nil {
		return Item{}, errors.Wrapf(err, "item %s: price %q", row.ID, row.Price)
	}
	if price.IsNegative() {
		return Item{}, errors.Errorf("item %s: negative price %s", row.ID, row.Price)
	}
	cat, err := ParseCategory(row.Category)
	if err != nil {
		return Item{}, errors.Wrapf(err, "item %s", row.ID)
	}
	it := Item{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price:       price,
		Category:    cat,
	}
	if row.ImageRef != nil {
		it.ImageRef = *row.ImageRef
	}
	return it, nil
}
