package entity

import "time"

// CartFieldCompleted names the toggleable purchase flag of CartItem.
const CartFieldCompleted = "completed"

// CartItem is one line of the shared shopping list.
type CartItem struct {
	ID        string    `json:"id" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	AddedBy   string    `json:"addedBy"`
	Completed bool      `json:"completed"`
	AddedOn   time.Time `json:"addedOn"`
}

// RecordID implements Record.
func (i CartItem) RecordID() string {
	return i.ID
}

// ToggleFlag flips the named boolean field. Unknown fields leave the item as is.
func (i CartItem) ToggleFlag(field string) (CartItem, bool) {
	switch field {
	case CartFieldCompleted:
		i.Completed = !i.Completed

		return i, true
	default:
		return i, false
	}
}

// LineTotal is price times quantity.
func (i CartItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
