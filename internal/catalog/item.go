// Package catalog holds the menu model and the providers that load it.
package catalog

import (
	"strings"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// Category groups menu items for the category selector.
type Category string

const (
	CategoryHotBeverage Category = "hot-beverage"
	CategoryTea         Category = "tea"
	CategoryDessert     Category = "dessert"
	CategorySnack       Category = "snack"
)

// ErrUnknownCategory is returned by ParseCategory for values outside the enum.
var ErrUnknownCategory = errors.New("unknown category")

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryHotBeverage, CategoryTea, CategoryDessert, CategorySnack}
}

// Label is the human readable name shown on the category selector.
func (c Category) Label() string {
	switch c {
	case CategoryHotBeverage:
		return "Coffee"
	case CategoryTea:
		return "Tea"
	case CategoryDessert:
		return "Desserts"
	case CategorySnack:
		return "Snacks"
	default:
		return string(c)
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory accepts the enum value case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", errors.Wrapf(ErrUnknownCategory, "%q", s)
	}
	return c, nil
}

// Item is a purchasable menu entry. Items are treated as immutable once fetched.
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	ImageRef    string // empty when the item has no picture
	Category    Category
}

// HasImage reports whether an image reference is set.
func (i Item) HasImage() bool { return i.ImageRef != "" }
