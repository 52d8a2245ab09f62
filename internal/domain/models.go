package domain

import (
	"time"
)

// DraftPick is one selection from an upstream draft, as received.
type DraftPick struct {
	PickNumber      int
	Round           int
	DraftSlot       int
	DrafterID       string // empty for auto/undrafted slots
	Position        string
	PlayerFirstName string
	PlayerLastName  string
}

type KickerPick struct {
	PickNumber  int    `json:"pick_number"`
	Round       int    `json:"round"`
	DraftSlot   int    `json:"draft_slot"`
	Username    string `json:"username"`
	UserID      string `json:"user_id"`
	PlayerName  string `json:"player_name"`
	RookiePick  string `json:"rookie_pick"`
	RookieRound int    `json:"rookie_round"`
	RookieSlot  int    `json:"rookie_slot"`
}

type Lookup struct {
	ID          string // nanoid
	DraftID     string
	KickerCount int
	LeagueSize  int
	CreatedAt   time.Time
}
