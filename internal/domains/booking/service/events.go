package service

import (
	"context"

	"innkeeper/infras/kafka"
	"innkeeper/shared/constant"
	"innkeeper/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	eventBookingCreated    = "booking.created"
	eventBookingConfirmed  = "booking.confirmed"
	eventBookingCancelled  = "booking.cancelled"
	eventBookingCheckedIn  = "booking.checked_in"
	eventBookingCheckedOut = "booking.checked_out"
	eventBookingCompleted  = "booking.completed"
	eventBookingExtended   = "booking.extended"
)

type bookingEvent struct {
	Type       string `json:"type"`
	BookingID  string `json:"booking_id"`
	OccurredAt string `json:"occurred_at"`
}

// publishEvent emits a lifecycle event without blocking the request path.
// Delivery failures are logged; the booking state is already committed.
func (s *serviceImpl) publishEvent(ctx context.Context, eventType, bookingID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := bookingEvent{
			Type:       eventType,
			BookingID:  bookingID,
			OccurredAt: timezone.Now().Format(constant.DateFormat),
		}

		message := kafka.Message{
			Key:   bookingID,
			Value: event,
		}

		if err := s.producer.SendMessages(c, constant.TopicBookingEvents, message); err != nil {
			log.Error().Err(err).Str("event", eventType).Str("bookingID", bookingID).Msg("failed to publish booking event")
		}
	}()
}
