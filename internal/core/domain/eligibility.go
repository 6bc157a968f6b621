package domain

import "time"

const (
	MinVotingAge    = 18
	MinCandidacyAge = 25
)

// Age returns whole years between dob and asOf, decremented by one when the
// birthday has not yet occurred in asOf's year.
func Age(dob, asOf time.Time) int {
	age := asOf.Year() - dob.Year()
	if asOf.Month() < dob.Month() ||
		(asOf.Month() == dob.Month() && asOf.Day() < dob.Day()) {
		age--
	}
	return age
}

func CanVote(dob, asOf time.Time) bool {
	return Age(dob, asOf) >= MinVotingAge
}

func CanRunForCandidate(dob, asOf time.Time) bool {
	return Age(dob, asOf) >= MinCandidacyAge
}
