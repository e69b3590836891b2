package domain

import "time"

// GameStatus is the lifecycle bucket a game is listed under.
type GameStatus string

const (
	StatusUpcoming GameStatus = "upcoming"
	StatusOngoing  GameStatus = "ongoing"
	StatusPast     GameStatus = "past"
)

// ValidStatus reports whether s is one of the known game statuses.
func ValidStatus(s GameStatus) bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusPast:
		return true
	}
	return false
}

// Participant is a single roster entry. Membership is unique by UserID.
type Participant struct {
	UserID   string    `json:"userId" bson:"userId"`
	UserName string    `json:"userName" bson:"userName"`
	JoinedAt time.Time `json:"joinedAt" bson:"joinedAt"`
}

// Game is a coordinated event with a capacity-bounded roster.
// CurrentParticipants mirrors len(Participants); the repository keeps the two
// consistent by mutating them in a single document update.
type Game struct {
	ID                  string        `json:"id" bson:"_id,omitempty"`
	Title               string        `json:"title" bson:"title"`
	Location            string        `json:"location" bson:"location"`
	Date                string        `json:"date" bson:"date"`
	Fee                 float64       `json:"fee" bson:"fee"`
	Status              GameStatus    `json:"status" bson:"status"`
	Icon                string        `json:"icon" bson:"icon"`
	Description         string        `json:"description" bson:"description"`
	MaxParticipants     int           `json:"maxParticipants" bson:"maxParticipants"`
	CurrentParticipants int           `json:"currentParticipants" bson:"currentParticipants"`
	Participants        []Participant `json:"participants" bson:"participants"`
	CreatedAt           time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// HasParticipant reports whether userID is already on the roster.
func (g *Game) HasParticipant(userID string) bool {
	for _, p := range g.Participants {
		if p.UserID == userID {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster has reached capacity.
func (g *Game) IsFull() bool {
	return g.CurrentParticipants >= g.MaxParticipants
}

// StatsOverview aggregates game counts per status.
type StatsOverview struct {
	Ongoing  int64 `json:"ongoing"`
	Upcoming int64 `json:"upcoming"`
	Past     int64 `json:"past"`
	Total    int64 `json:"total"`
}
