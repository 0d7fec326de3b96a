package entity

// VehicleCar is the only vehicle type that offers seats.
const VehicleCar = "Car"

// Options offered by the ride form.
var (
	Weekdays     = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	VehicleTypes = []string{VehicleCar, "Bike", "Scooter", "Public Transport"}
)

// AutoShare is a recurring route a member offers to share.
type AutoShare struct {
	ID             string   `json:"id" validate:"required"`
	UserID         string   `json:"userId"`
	UserName       string   `json:"userName"`
	StartLocation  string   `json:"startLocation"`
	Destination    string   `json:"destination"`
	DepartureTime  string   `json:"departureTime" validate:"omitempty,hhmm"`
	ReturnTime     string   `json:"returnTime" validate:"omitempty,hhmm"`
	VehicleType    string   `json:"vehicleType"`
	SeatsAvailable int      `json:"seatsAvailable" validate:"gte=0"`
	Days           []string `json:"days"`
	Notes          string   `json:"notes"`
}

// RecordID implements Record.
func (s AutoShare) RecordID() string {
	return s.ID
}

// OffersSeats reports whether SeatsAvailable is meaningful for the vehicle.
func (s AutoShare) OffersSeats() bool {
	return s.VehicleType == VehicleCar
}
