package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// ReservationValidator — проверка входящих данных репозитория резервов.
// Ошибки данных резерва оборачивают domain.ErrValidation, ошибки событий — domain.ErrInvalidEvent.
type ReservationValidator interface {
	ValidateReservation(ctx context.Context, reservation *domain.Reservation) error
	ValidateItem(ctx context.Context, item *domain.ReservationItem) error
	ValidateStatusUpdate(ctx context.Context, update *domain.StatusUpdate) error
	ValidateEvent(ctx context.Context, event *domain.StatusChangedEvent) error
}
