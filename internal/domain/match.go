package domain

import "github.com/google/uuid"

// MatchResult identifies a (candidate, profile, company) triple whose
// criteria are satisfied. It is transient: consumed by notification
// dispatch and never persisted.
type MatchResult struct {
	CandidateID uuid.UUID
	ProfileID   uuid.UUID
	CompanyID   uuid.UUID
}
