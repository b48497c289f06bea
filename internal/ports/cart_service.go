package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// CartService — операции клиентской корзины для HTTP-слоя.
type CartService interface {
	StartSession(ctx context.Context, clientID int64)
	EndSession(ctx context.Context, clientID int64)
	View(ctx context.Context, clientID int64) domain.CartView

	FetchActiveCart(ctx context.Context, clientID int64) (domain.ActiveCart, error)
	AddOrUpdateItem(ctx context.Context, clientID, storeID int64, product *domain.Product, quantity int) (domain.ActiveCart, error)
	UpdateQuantity(ctx context.Context, clientID, itemID int64, quantity int) (domain.ActiveCart, error)
	RemoveItem(ctx context.Context, clientID, itemID int64) (domain.ActiveCart, error)
	ConfirmReservation(ctx context.Context, clientID, reservationID int64) (*domain.Reservation, error)
	FetchHistory(ctx context.Context, clientID int64) ([]domain.Reservation, error)
	GroupedCart(ctx context.Context, clientID int64) ([]domain.StoreGroup, error)

	// ApplyStatusEvent — применить событие смены статуса из топика (сырой JSON).
	ApplyStatusEvent(ctx context.Context, raw []byte) error
}
