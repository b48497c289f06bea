package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// Caller — кто обращается к репозиторию резервов (из заголовков идентичности).
type Caller struct {
	ClientID int64 // 0 — не клиент
	StoreID  int64 // 0 — не магазин
}

// ReservationService — серверная логика репозитория резервов для HTTP-слоя.
type ReservationService interface {
	Create(ctx context.Context, caller Caller, reservation *domain.Reservation) (*domain.Reservation, error)
	ListByClient(ctx context.Context, caller Caller, clientID int64, status domain.Status) ([]domain.Reservation, error)
	ChangeStatus(ctx context.Context, caller Caller, reservationID int64, update *domain.StatusUpdate) (*domain.Reservation, error)

	AddItem(ctx context.Context, caller Caller, item *domain.ReservationItem) (*domain.ReservationItem, error)
	ListItems(ctx context.Context, caller Caller, reservationID int64) ([]domain.ReservationItem, error)
	UpdateItemQuantity(ctx context.Context, caller Caller, itemID int64, quantity int) (*domain.ReservationItem, error)
	DeleteItem(ctx context.Context, caller Caller, itemID int64) error

	StoreNames(ctx context.Context, ids []int64) (domain.StoreNames, error)
}
