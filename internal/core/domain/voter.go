package domain

import "time"

type Voter struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	DateOfBirth   time.Time `json:"dob"`
	Email         string    `json:"email"`
	VoterID       string    `json:"voter_id"`
	NationalID    string    `json:"national_id"`
	Address       string    `json:"address"`
	ProfilePhoto  *string   `json:"profile_photo,omitempty"`
	WalletAddress string    `json:"wallet_address"`
	CreatedAt     time.Time `json:"created_at"`
}

// VoterStatus is a display-only snapshot recomputed from the relational
// store and the ledger on every call. Clients must not use it as an
// authorization source.
type VoterStatus struct {
	Registered  bool `json:"registered"`
	IsCandidate bool `json:"is_candidate"`
	HasVoted    bool `json:"has_voted"`
}
