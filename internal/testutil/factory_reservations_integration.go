//go:build integration

package testutil

import (
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// Магазины из сид-миграции.
const (
	StoreCentro int64 = 1
	StoreNorte  int64 = 2
)

var clientSeq atomic.Int64

// NextClientID — уникальный client_id в пределах тестового прогона.
func NextClientID() int64 { return 1000 + clientSeq.Add(1) }

// MakeReservation — PENDING-резерв нового клиента.
func MakeReservation(opts ...func(*domain.Reservation)) domain.Reservation {
	r := domain.Reservation{
		ClientID: NextClientID(),
		Status:   domain.StatusPending,
	}
	for _, fn := range opts {
		fn(&r)
	}
	return r
}

func WithClient(clientID int64) func(*domain.Reservation) {
	return func(r *domain.Reservation) { r.ClientID = clientID }
}

// MakeItem — позиция резерва с заполненным снимком товара.
func MakeItem(reservationID, productID, storeID int64, quantity int) domain.ReservationItem {
	price := decimal.RequireFromString("19.90")
	return domain.ReservationItem{
		ReservationID: reservationID,
		ProductID:     productID,
		StoreID:       storeID,
		Quantity:      quantity,
		PriceSnapshot: price,
		ProductSnapshot: domain.ProductSnapshot{
			ID:    productID,
			Name:  "Camiseta",
			Price: price,
			Size:  "M",
			Color: "azul",
		},
	}
}
