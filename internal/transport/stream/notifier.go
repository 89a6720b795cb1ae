package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/saintgiong/discovery/internal/domain"
	"github.com/saintgiong/discovery/internal/metrics"
)

// publisher is the producer interface over the stream store (ISP).
type publisher interface {
	XAdd(ctx context.Context, stream string, values map[string]string) (string, error)
}

// matchedEvent is the wire shape of a match notification.
type matchedEvent struct {
	ApplicantID uuid.UUID `json:"applicantId"`
	ProfileID   uuid.UUID `json:"profileId"`
	CompanyID   uuid.UUID `json:"companyId"`
	IsUpdate    bool      `json:"isUpdate"`
}

// Notifier publishes match notifications to the matched-candidates stream.
// Fire-and-forget: no reply is awaited.
type Notifier struct {
	store  publisher
	stream string
}

// NewNotifier creates a match notifier.
func NewNotifier(store publisher) *Notifier {
	return &Notifier{store: store, stream: StreamCandidateMatched}
}

// Notify publishes one match notification.
func (n *Notifier) Notify(ctx context.Context, m domain.MatchResult, isUpdate bool) error {
	raw, err := json.Marshal(matchedEvent{
		ApplicantID: m.CandidateID,
		ProfileID:   m.ProfileID,
		CompanyID:   m.CompanyID,
		IsUpdate:    isUpdate,
	})
	if err != nil {
		return fmt.Errorf("marshal match notification: %w", err)
	}

	if _, err := n.store.XAdd(ctx, n.stream, map[string]string{payloadField: string(raw)}); err != nil {
		return fmt.Errorf("publish match notification: %w", err)
	}

	metrics.MatchesNotifiedTotal.Inc()
	return nil
}
