package entity

// RentFieldAvailable names the toggleable availability flag of RentItem.
const RentFieldAvailable = "available"

// DefaultRentImageURL is shown for listings published without a picture.
const DefaultRentImageURL = "https://images.unsplash.com/photo-1553531384-411a247ccd73?auto=format&fit=crop&w=300&q=80"

// Listing options offered by the rental form. The stored data is not restricted to them.
var (
	RentCategories = []string{"Electronics", "Tools", "Sports", "Outdoors", "Kitchen", "Furniture", "Books", "Other"}
	RentConditions = []string{"Excellent", "Very Good", "Good", "Fair", "Poor"}
	RentDurations  = []string{"Hour", "Day", "Weekend", "Week", "Month"}
)

// RentItem is an item a member lends out.
type RentItem struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	OwnerID      string  `json:"ownerId"`
	OwnerName    string  `json:"ownerName"`
	Category     string  `json:"category"`
	Condition    string  `json:"condition"`
	RentAmount   float64 `json:"rentAmount"`
	RentDuration string  `json:"rentDuration"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
	Available    bool    `json:"available"`
}

// RecordID implements Record.
func (i RentItem) RecordID() string {
	return i.ID
}

// ToggleFlag flips the named boolean field. Renting and returning an item both
// toggle "available".
func (i RentItem) ToggleFlag(field string) (RentItem, bool) {
	switch field {
	case RentFieldAvailable:
		i.Available = !i.Available

		return i, true
	default:
		return i, false
	}
}
