package paddle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Event represents a Paddle event, delivered either by webhook or via the
// /events endpoint. Data holds the raw new-or-changed entity; decode it based
// on EventType, e.g. into a Subscription for "subscription.updated".
type Event struct {
	// EventID is the unique Paddle ID for this event, prefixed with `evt_`.
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	// NotificationID is set on webhook deliveries only, prefixed with `ntf_`.
	NotificationID string          `json:"notification_id,omitempty"`
	OccurredAt     time.Time       `json:"occurred_at"`
	Data           json.RawMessage `json:"data"`
}

// EventType describes a type of event Paddle can send.
type EventType struct {
	// Name is in the format "entity.event_type", e.g. "transaction.completed".
	Name        string `json:"name"`
	Description string `json:"description"`
	// Group is typically the entity the event relates to.
	Group             string `json:"group"`
	AvailableVersions []int  `json:"available_versions"`
}

// EventListParams controls paginated event listings. The events endpoint
// supports no filters beyond ordering and paging.
type EventListParams struct {
	ListParams
}

// EventService handles communication with the event related endpoints.
type EventService struct {
	client *Client
}

// List returns a paginator over all events that occurred on the account.
func (s *EventService) List(params *EventListParams) *Paginator[Event] {
	return newPaginator[Event](s.client, "/events", params)
}

// ListTypes fetches the catalog of event types Paddle can send.
// The endpoint is not paginated.
func (s *EventService) ListTypes(ctx context.Context) ([]EventType, error) {
	req, err := s.client.newRequest(http.MethodGet, "/event-types", nil, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	var env entityResponse[[]EventType]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response envelope: %w", err)
	}

	return env.Data, nil
}
