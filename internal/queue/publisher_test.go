package queue

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()

	assert.NoError(t, p.Publish(context.Background(), BookingCreatedQueue, BookingCreatedEvent{}))
	assert.NoError(t, p.Close())
}

func TestBookingCreatedEvent_JSON(t *testing.T) {
	event := BookingCreatedEvent{
		MovieTitle:  "Avengers",
		Room:        1,
		ShowTime:    "10:00",
		Day:         "Monday",
		TicketClass: "Premium",
		Tickets:     []TicketEntry{{Seat: "A1", TicketID: "t-1"}},
		TotalPrice:  7000,
		Discount:    1000,
		CreatedAt:   "2026-10-19T09:00:00Z",
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "Avengers", fields["movie_title"])
	assert.Equal(t, "Premium", fields["ticket_class"])
	assert.Equal(t, []any{map[string]any{"seat": "A1", "ticket_id": "t-1"}}, fields["tickets"])
}
