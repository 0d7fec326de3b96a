package matching

import (
	"testing"

	"hive/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestFilterAutoSharesByDay(t *testing.T) {
	shares := []entity.AutoShare{
		{ID: "midweek", Days: []string{"Tuesday", "Wednesday"}},
		{ID: "monday", Days: []string{"Monday"}},
	}

	got := FilterAutoShares(shares, AutoShareFilter{Day: "Monday"})

	assert.Len(t, got, 1)
	assert.Equal(t, "monday", got[0].ID)
}

func TestFilterAutoShares(t *testing.T) {
	shares := []entity.AutoShare{
		{ID: "1", StartLocation: "Downtown", Destination: "Tech Park", VehicleType: "Car", Days: []string{"Monday", "Friday"}},
		{ID: "2", StartLocation: "University Area", Destination: "City Library", VehicleType: "Bike", Days: []string{"Monday"}},
		{ID: "3", StartLocation: "Riverside", Destination: "Shopping Mall", VehicleType: "Car", Days: []string{"Saturday"}},
		{ID: "4", StartLocation: "Suburbs", Destination: "Downtown", VehicleType: "Car", Days: []string{"Friday"}},
	}

	tests := []struct {
		name   string
		filter AutoShareFilter
		want   []string
	}{
		{name: "no criteria", filter: AutoShareFilter{}, want: []string{"1", "2", "3", "4"}},
		{name: "start substring", filter: AutoShareFilter{StartLocation: "town"}, want: []string{"1"}},
		{name: "destination substring", filter: AutoShareFilter{Destination: "DOWN"}, want: []string{"4"}},
		{name: "vehicle type", filter: AutoShareFilter{VehicleType: "bike"}, want: []string{"2"}},
		{name: "vehicle all sentinel", filter: AutoShareFilter{VehicleType: "all", Day: "Friday"}, want: []string{"1", "4"}},
		{name: "no result", filter: AutoShareFilter{VehicleType: "Scooter"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterAutoShares(shares, tt.filter)
			gotIDs := make([]string, 0, len(got))
			for _, s := range got {
				gotIDs = append(gotIDs, s.ID)
			}
			assert.Equal(t, tt.want, gotIDs)
		})
	}
}
