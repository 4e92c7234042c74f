package track_bookings

import (
	"context"

	"github.com/lamasat/salon-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	Track(ctx context.Context, req *models.TrackBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
