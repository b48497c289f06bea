package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// ReservationRepository — хранилище резервов и их позиций.
// Для cart-service это REST-клиент, для reservation-api — Postgres.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	ListByClient(ctx context.Context, clientID int64) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID int64, update *domain.StatusUpdate) (*domain.Reservation, error)

	AddItem(ctx context.Context, item *domain.ReservationItem) (*domain.ReservationItem, error)
	ListItems(ctx context.Context, reservationID int64) ([]domain.ReservationItem, error)
	UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.ReservationItem, error)
	DeleteItem(ctx context.Context, itemID int64) error
}

// ReservationStore — серверное хранилище: к операциям репозитория добавлено чтение по ID,
// нужное для проверки владельца и статуса.
type ReservationStore interface {
	ReservationRepository

	Get(ctx context.Context, reservationID int64) (*domain.Reservation, error)
	GetItem(ctx context.Context, itemID int64) (*domain.ReservationItem, error)
}
