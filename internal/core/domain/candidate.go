package domain

import "time"

type Candidate struct {
	ID            int64     `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Party         string    `json:"party"`
	Manifesto     string    `json:"manifesto"`
	Document      *string   `json:"document,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CandidateIdentity is a voter row left-joined with its candidacy.
// Party and Manifesto are nil for voters who never applied; callers that
// need actual candidates must filter on Party != nil. This null-filtering
// is a caller contract, not enforced here.
type CandidateIdentity struct {
	Voter
	Party     *string `json:"party"`
	Manifesto *string `json:"manifesto"`
	Document  *string `json:"document,omitempty"`
}

// IsCandidate reports whether the joined row carries a real candidacy.
func (c CandidateIdentity) IsCandidate() bool {
	return c.Party != nil
}
