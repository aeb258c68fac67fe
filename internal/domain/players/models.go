package players

import (
	"fmt"
	"math"
)

// Canonical position labels. Upstream providers map their own vocabularies onto these.
const (
	PositionGoalkeeper = "Goleiro"
	PositionDefender   = "Defensor"
	PositionMidfielder = "Meia"
	PositionAttacker   = "Atacante"
)

// Positions returns the canonical positions in display order.
func Positions() []string {
	return []string{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionAttacker}
}

// Player represents the normalized player shape. Treat values as immutable once loaded.
//
// Order is the 1-based position of the player in the provider's full listing,
// across leagues. Zero means the provider has no cross-league order.
type Player struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Age         int    `json:"age"`
	Nationality string `json:"nationality"`
	Position    string `json:"position"`
	ShirtNumber *int   `json:"number"`
	Photo       string `json:"photo,omitempty"`
	TeamLogo    string `json:"teamLogo,omitempty"`
	Order       int    `json:"order,omitempty"`
}

// NumberOrZero returns the shirt number, treating an unassigned number as 0.
func (p Player) NumberOrZero() int {
	if p.ShirtNumber == nil {
		return 0
	}
	return *p.ShirtNumber
}

// Before reports whether p is listed ahead of other. Unranked players sort last.
func (p Player) Before(other Player) bool {
	return rank(p) < rank(other)
}

func rank(p Player) int {
	if p.Order <= 0 {
		return math.MaxInt
	}
	return p.Order
}

// Number is a small helper for building players with an assigned shirt number.
func Number(n int) *int {
	return &n
}

const mediaBaseURL = "https://media.api-sports.io/football"

// PhotoURL builds the public headshot URL for an upstream player id.
func PhotoURL(upstreamID int) string {
	return fmt.Sprintf("%s/players/%d.png", mediaBaseURL, upstreamID)
}

// TeamLogoURL builds the public crest URL for an upstream team id.
func TeamLogoURL(teamID int) string {
	return fmt.Sprintf("%s/teams/%d.png", mediaBaseURL, teamID)
}
