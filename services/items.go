package services

import (
	"math"
	"strconv"

	"github.com/google/uuid"
)

// LineItem is one product/service row in a quote. Price and Quantity are
// never negative or NaN; invalid input is coerced to 0 before it is stored.
type LineItem struct {
	ID       string
	Name     string
	Price    float64
	Quantity float64

	// Unit is an optional short label appended to the quantity ("m", "un").
	Unit string
}

// Editable item fields accepted by UpdateItem.
const (
	FieldName     = "name"
	FieldPrice    = "price"
	FieldQuantity = "quantity"
	FieldUnit     = "unit"
)

// NewItemName is the placeholder name for rows added by the user.
const NewItemName = "Novo Item"

// NewLineItemID returns a fresh item id. Uniqueness is only required within
// one session's list, but a UUID keeps the generator trivially collision-free.
func NewLineItemID() string {
	return uuid.NewString()
}

// ParseAmount parses raw user input for a price or quantity field.
// Parse failures, NaN/Inf and negative values all coerce to 0; the value
// stored on an item is therefore always a usable non-negative number.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// AddItem appends a new row with a fresh id, placeholder name, price 0 and
// quantity 1. It returns a new slice; the input is not modified.
func AddItem(items []LineItem) []LineItem {
	next := make([]LineItem, 0, len(items)+1)
	next = append(next, items...)
	next = append(next, LineItem{
		ID:       NewLineItemID(),
		Name:     NewItemName,
		Price:    0,
		Quantity: 1,
	})
	return next
}

// RemoveItem returns a new slice without the item with the given id.
// A missing id is a no-op, not an error.
func RemoveItem(items []LineItem, id string) []LineItem {
	next := make([]LineItem, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			continue
		}
		next = append(next, it)
	}
	return next
}

// UpdateItem returns a new slice with one field of the matching item changed.
// Numeric fields go through ParseAmount; text fields store raw unchanged,
// including the empty string. Unknown fields and missing ids are no-ops.
// Item order is preserved.
func UpdateItem(items []LineItem, id, field, raw string) []LineItem {
	next := make([]LineItem, len(items))
	copy(next, items)
	for i := range next {
		if next[i].ID != id {
			continue
		}
		switch field {
		case FieldName:
			next[i].Name = raw
		case FieldUnit:
			next[i].Unit = raw
		case FieldPrice:
			next[i].Price = ParseAmount(raw)
		case FieldQuantity:
			next[i].Quantity = ParseAmount(raw)
		}
		break
	}
	return next
}

// ComputeTotal derives the grand total as Σ price×quantity. The total is
// always recomputed from the current list, never stored.
func ComputeTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}
