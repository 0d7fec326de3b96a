// Package seed holds the default content of every shared collection. A key that
// was never written reads as its seed, and "reset to defaults" writes it back.
package seed

import (
	"time"

	"hive/internal/domain/constants"
	"hive/internal/domain/entity"
)

var seedDate = time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)

// Roommates returns the default roommate listings.
func Roommates() []entity.RoommateCandidate {
	return []entity.RoommateCandidate{
		{
			ID: "1", Name: "Alex Johnson", Age: 24, Gender: "Male",
			Avatar:    "https://randomuser.me/api/portraits/men/32.jpg",
			Budget:    1200,
			Location:  "Downtown",
			Interests: []string{"Reading", "Cooking", "Gaming", "Movies"},
			Prefers:   []string{"Clean", "Quiet", "Non-smoker"},
			About:     "Grad student in Computer Science. Clean and quiet roommate who enjoys cooking and occasional gaming sessions.",
		},
		{
			ID: "2", Name: "Emma Wilson", Age: 26, Gender: "Female",
			Avatar:    "https://randomuser.me/api/portraits/women/44.jpg",
			Budget:    950,
			Location:  "University Area",
			Interests: []string{"Yoga", "Hiking", "Photography", "Cooking"},
			Prefers:   []string{"Eco-friendly", "Active", "Early riser"},
			About:     "Working professional in marketing. I love yoga, hiking, and trying new restaurants in the area.",
		},
		{
			ID: "3", Name: "Michael Chen", Age: 23, Gender: "Male",
			Avatar:    "https://randomuser.me/api/portraits/men/52.jpg",
			Budget:    800,
			Location:  "Suburbs",
			Interests: []string{"Running", "Documentaries", "Reading", "Chess"},
			Prefers:   []string{"Quiet", "Studious", "Clean"},
			About:     "Medical student who studies a lot. Looking for a quiet place. I enjoy running and watching documentaries.",
		},
		{
			ID: "4", Name: "Sofia Rodriguez", Age: 27, Gender: "Female",
			Avatar:    "https://randomuser.me/api/portraits/women/68.jpg",
			Budget:    1100,
			Location:  "Downtown",
			Interests: []string{"Art", "Music", "Plants", "Coffee"},
			Prefers:   []string{"Creative", "Respectful", "Plant lover"},
			About:     "Artist and part-time barista. I'm creative, respectful of space, and love having plants around.",
		},
		{
			ID: "5", Name: "Jordan Taylor", Age: 25, Gender: "Non-binary",
			Avatar:    "https://randomuser.me/api/portraits/lego/3.jpg",
			Budget:    1000,
			Location:  "Riverside",
			Interests: []string{"Gaming", "Board games", "Technology", "Movies"},
			Prefers:   []string{"Tech-savvy", "Organized", "Night owl"},
			About:     "Software developer who works remotely. I enjoy video games, board games, and keeping my living space organized.",
		},
	}
}

// CartItems returns the default shopping list.
func CartItems() []entity.CartItem {
	return []entity.CartItem{
		{ID: "1", Name: "Milk", Quantity: 1, Price: 3.99, AddedBy: "Alex", AddedOn: seedDate},
		{ID: "2", Name: "Bread", Quantity: 2, Price: 2.49, AddedBy: "Sarah", Completed: true, AddedOn: seedDate},
		{ID: "3", Name: "Eggs (dozen)", Quantity: 1, Price: 4.99, AddedBy: "Miguel", AddedOn: seedDate},
		{ID: "4", Name: "Toilet Paper", Quantity: 12, Price: 8.99, AddedBy: "Emma", AddedOn: seedDate},
		{ID: "5", Name: "Dish Soap", Quantity: 1, Price: 3.49, AddedBy: "Dave", Completed: true, AddedOn: seedDate},
	}
}

// RentItems returns the default rental listings.
func RentItems() []entity.RentItem {
	return []entity.RentItem{
		{
			ID: "1", Name: "Electric Drill", OwnerID: "1", OwnerName: "Alex Johnson",
			Category: "Tools", Condition: "Good", RentAmount: 5, RentDuration: "Day",
			Description: "Powerful electric drill, perfect for home improvement projects",
			ImageURL:    "https://images.unsplash.com/photo-1504148455328-c376907d081c?auto=format&fit=crop&w=300&q=80",
			Available:   true,
		},
		{
			ID: "2", Name: "Mountain Bike", OwnerID: "2", OwnerName: "Sarah Wilson",
			Category: "Sports", Condition: "Excellent", RentAmount: 15, RentDuration: "Day",
			Description: "Trek mountain bike, perfect for weekend adventures",
			ImageURL:    "https://images.unsplash.com/photo-1485965120184-e220f721d03e?auto=format&fit=crop&w=300&q=80",
			Available:   true,
		},
		{
			ID: "3", Name: "Projector", OwnerID: "3", OwnerName: "Miguel Rodriguez",
			Category: "Electronics", Condition: "Very Good", RentAmount: 20, RentDuration: "Day",
			Description: "HD Projector for movie nights or presentations",
			ImageURL:    "https://images.unsplash.com/photo-1478720568477-152d9b164e26?auto=format&fit=crop&w=300&q=80",
			Available:   true,
		},
		{
			ID: "4", Name: "Camping Tent (4-person)", OwnerID: "4", OwnerName: "Emma Chen",
			Category: "Outdoors", Condition: "Good", RentAmount: 25, RentDuration: "Weekend",
			Description: "Spacious 4-person tent with rain cover, perfect for camping trips",
			ImageURL:    "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?auto=format&fit=crop&w=300&q=80",
			Available:   false,
		},
		{
			ID: "5", Name: "Party Speakers", OwnerID: "5", OwnerName: "Dave Smith",
			Category: "Electronics", Condition: "Excellent", RentAmount: 30, RentDuration: "Day",
			Description: "Powerful Bluetooth speakers for parties or events",
			ImageURL:    "https://images.unsplash.com/photo-1558537348-c0f8e733989d?auto=format&fit=crop&w=300&q=80",
			Available:   true,
		},
	}
}

// AutoShares returns the default shared rides.
func AutoShares() []entity.AutoShare {
	weekdays := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

	return []entity.AutoShare{
		{
			ID: "1", UserID: "1", UserName: "Alex Johnson",
			StartLocation: "Downtown", Destination: "Tech Park",
			DepartureTime: "08:00", ReturnTime: "17:30",
			VehicleType: entity.VehicleCar, SeatsAvailable: 3,
			Days:  weekdays,
			Notes: "I drive to work every weekday. Happy to share the ride!",
		},
		{
			ID: "2", UserID: "2", UserName: "Sarah Wilson",
			StartLocation: "University Area", Destination: "City Library",
			DepartureTime: "09:30", ReturnTime: "16:00",
			VehicleType: "Bike",
			Days:        []string{"Monday", "Wednesday", "Friday"},
			Notes:       "I have an extra bike you can borrow if you need to go my route.",
		},
		{
			ID: "3", UserID: "3", UserName: "Miguel Rodriguez",
			StartLocation: "Riverside", Destination: "Shopping Mall",
			DepartureTime: "10:00", ReturnTime: "14:00",
			VehicleType: entity.VehicleCar, SeatsAvailable: 4,
			Days:  []string{"Saturday", "Sunday"},
			Notes: "Weekend shopping trips. Can pick up along the route.",
		},
		{
			ID: "4", UserID: "4", UserName: "Emma Chen",
			StartLocation: "Suburbs", Destination: "Downtown",
			DepartureTime: "07:45", ReturnTime: "18:30",
			VehicleType: entity.VehicleCar, SeatsAvailable: 2,
			Days:  weekdays,
			Notes: "Daily commute to work downtown. Parking is available.",
		},
		{
			ID: "5", UserID: "5", UserName: "Dave Smith",
			StartLocation: "Downtown", Destination: "Concert Hall",
			DepartureTime: "19:00", ReturnTime: "23:00",
			VehicleType: entity.VehicleCar, SeatsAvailable: 3,
			Days:  []string{"Friday", "Saturday"},
			Notes: "Going to concerts most weekends. Happy to give rides!",
		},
	}
}

// GamePartners returns the default game partner cards.
func GamePartners() []entity.GamePartner {
	return []entity.GamePartner{
		{
			ID: "1", UserID: "1", UserName: "Alex Johnson",
			Games: []entity.GameSkill{
				{Game: "Chess", SkillLevel: entity.SkillExpert},
				{Game: "Settlers of Catan", SkillLevel: entity.SkillIntermediate},
				{Game: "Poker", SkillLevel: entity.SkillBeginner},
			},
			Availability: []string{"Weekday evenings", "Weekend afternoons"},
			Bio:          "Looking for chess opponents and board game enthusiasts!",
		},
		{
			ID: "2", UserID: "2", UserName: "Sarah Wilson",
			Games: []entity.GameSkill{
				{Game: "Scrabble", SkillLevel: entity.SkillExpert},
				{Game: "Monopoly", SkillLevel: entity.SkillIntermediate},
				{Game: "Chess", SkillLevel: entity.SkillBeginner},
			},
			Availability: []string{"Weekend mornings", "Weekend evenings"},
			Bio:          "Word game champion looking for worthy opponents!",
		},
		{
			ID: "3", UserID: "3", UserName: "Miguel Rodriguez",
			Games: []entity.GameSkill{
				{Game: "FIFA", SkillLevel: entity.SkillExpert},
				{Game: "Call of Duty", SkillLevel: entity.SkillExpert},
				{Game: "Mario Kart", SkillLevel: entity.SkillIntermediate},
			},
			Availability: []string{"Weekday evenings", "Weekend evenings"},
			Bio:          "Competitive gamer looking for teammates and rivals!",
		},
		{
			ID: "4", UserID: "4", UserName: "Emma Chen",
			Games: []entity.GameSkill{
				{Game: "Dungeons & Dragons", SkillLevel: entity.SkillIntermediate},
				{Game: "Magic: The Gathering", SkillLevel: entity.SkillExpert},
				{Game: "Pandemic", SkillLevel: entity.SkillBeginner},
			},
			Availability: []string{"Weekday evenings", "Weekend afternoons"},
			Bio:          "Looking for a D&D group and MTG players!",
		},
		{
			ID: "5", UserID: "5", UserName: "Dave Smith",
			Games: []entity.GameSkill{
				{Game: "Poker", SkillLevel: entity.SkillExpert},
				{Game: "Blackjack", SkillLevel: entity.SkillExpert},
				{Game: "Darts", SkillLevel: entity.SkillIntermediate},
			},
			Availability: []string{"Weekend evenings"},
			Bio:          "Love card games and bar games. Always up for a friendly match!",
		},
	}
}

// Documents returns the seed of every shared collection by storage key.
func Documents() map[string]any {
	return map[string]any{
		constants.KeyRoommates:    Roommates(),
		constants.KeyCartItems:    CartItems(),
		constants.KeyRentItems:    RentItems(),
		constants.KeyAutoShares:   AutoShares(),
		constants.KeyGamePartners: GamePartners(),
	}
}
