package domain

// TallyRow is a derived result row: candidate identity plus the vote count
// read from the ledger. Rows are recomputed on demand and never persisted.
type TallyRow struct {
	CandidateID   int64   `json:"candidate_id"`
	Name          string  `json:"name"`
	WalletAddress string  `json:"wallet_address"`
	Party         string  `json:"party"`
	Manifesto     string  `json:"manifesto"`
	ProfilePhoto  *string `json:"profile_photo,omitempty"`
	VoteCount     uint64  `json:"vote_count"`
}
