package usecase

import (
	"context"

	"hive/internal/domain/entity"
	"hive/internal/domain/matching"

	"github.com/google/uuid"
)

// AddRoommateInput defines a new roommate listing.
type AddRoommateInput struct {
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age" validate:"gte=0,lte=150"`
	Gender    string   `json:"gender"`
	Avatar    string   `json:"avatar,omitempty" validate:"omitempty,url"`
	Budget    float64  `json:"budget" validate:"gte=0"`
	Location  string   `json:"location" validate:"required"`
	Interests []string `json:"interests"`
	Prefers   []string `json:"prefers"`
	About     string   `json:"about"`
}

// SeekerProfileInput is the roommate search form of the current member.
type SeekerProfileInput struct {
	Name      string  `json:"name" validate:"required"`
	Age       int     `json:"age" validate:"gte=0,lte=150"`
	Gender    string  `json:"gender"`
	Budget    float64 `json:"budget" validate:"gte=0"`
	Location  string  `json:"location" validate:"required"`
	Interests string  `json:"interests" validate:"required,tokens"`
	About     string  `json:"about"`
}

// MatchOutput pairs the seeker profile with its matches. Profile is nil when
// the member never saved one.
type MatchOutput struct {
	Profile *entity.RoommateSeekerProfile `json:"profile"`
	Matches []entity.RoommateCandidate    `json:"matches"`
}

// RoommateUsecase defines the roommate finder.
type RoommateUsecase interface {
	ListCandidates(ctx context.Context) ([]entity.RoommateCandidate, error)

	// SearchCandidates applies the explicit location, budget and gender selectors.
	SearchCandidates(ctx context.Context, filter matching.RoommateFilter) ([]entity.RoommateCandidate, error)

	AddCandidate(ctx context.Context, actor Actor, input *AddRoommateInput) ([]entity.RoommateCandidate, error)
	RemoveCandidate(ctx context.Context, actor Actor, id string) ([]entity.RoommateCandidate, error)

	// GetSeekerProfile returns nil when userID never saved a profile.
	GetSeekerProfile(ctx context.Context, userID uuid.UUID) (*entity.RoommateSeekerProfile, error)

	// SaveSeekerProfile stores the profile of the actor and returns its matches.
	SaveSeekerProfile(ctx context.Context, actor Actor, input *SeekerProfileInput) (*MatchOutput, error)

	// FindMatches runs the matcher for the saved profile of userID.
	FindMatches(ctx context.Context, userID uuid.UUID) (*MatchOutput, error)

	Reset(ctx context.Context, actor Actor) ([]entity.RoommateCandidate, error)
}
