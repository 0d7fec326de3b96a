package entity

import "strings"

// RoommateCandidate is a published roommate listing.
type RoommateCandidate struct {
	ID        string   `json:"id" validate:"required"`
	Name      string   `json:"name" validate:"required"`
	Age       int      `json:"age" validate:"gte=0"`
	Gender    string   `json:"gender"`
	Avatar    string   `json:"avatar,omitempty"`
	Budget    float64  `json:"budget"`
	Location  string   `json:"location"`
	Interests []string `json:"interests"`
	Prefers   []string `json:"prefers"`
	About     string   `json:"about"`
}

// RecordID implements Record.
func (c RoommateCandidate) RecordID() string {
	return c.ID
}

// RoommateSeekerProfile is the current member's own roommate search form.
// Interests is kept the way it was typed: a comma separated list.
type RoommateSeekerProfile struct {
	Name      string  `json:"name" validate:"required"`
	Age       int     `json:"age" validate:"gte=0"`
	Gender    string  `json:"gender"`
	Budget    float64 `json:"budget"`
	Location  string  `json:"location" validate:"required"`
	Interests string  `json:"interests"`
	About     string  `json:"about"`
}

// InterestTokens splits Interests on commas and returns the trimmed, lower-cased,
// non-empty tokens.
func (p RoommateSeekerProfile) InterestTokens() []string {
	parts := strings.Split(p.Interests, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}
