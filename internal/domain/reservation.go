package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation — резерв клиента в физическом магазине (агрегат).
// Пока статус PENDING, резерв играет роль корзины клиента.
type Reservation struct {
	ID        int64     `json:"id"`
	ClientID  int64     `json:"client_id"`
	StoreID   int64     `json:"store_id,omitempty"` // первый магазин, в который добавили товар; 0 — не задан
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Items заполняется только в истории и в ответах list-by-client.
	Items []ReservationItem `json:"items,omitempty"`
}

// ReservationItem — позиция резерва.
type ReservationItem struct {
	ID              int64           `json:"id"`
	ReservationID   int64           `json:"reservation_id"`
	ProductID       int64           `json:"product_id"`
	StoreID         int64           `json:"store_id,omitempty"`
	Quantity        int             `json:"quantity"`
	PriceSnapshot   decimal.Decimal `json:"price_snapshot"`
	ProductSnapshot ProductSnapshot `json:"product_snapshot"`
}

// ProductSnapshot — данные товара из каталога на момент добавления в корзину.
// Цена фиксируется и дальше не сверяется с каталогом.
type ProductSnapshot struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	ImageURL string          `json:"image_url,omitempty"`
	Size     string          `json:"size,omitempty"`
	Color    string          `json:"color,omitempty"`
}

// Product — товар каталога, как его присылает витрина.
type Product = ProductSnapshot

// ResolvedProductID — идентификатор товара позиции; если product_id не пришёл,
// берём его из снимка товара.
func (it *ReservationItem) ResolvedProductID() int64 {
	if it.ProductID != 0 {
		return it.ProductID
	}
	return it.ProductSnapshot.ID
}

// Validate — проверка позиции перед отправкой в репозиторий.
func (it *ReservationItem) Validate() error {
	if it.ResolvedProductID() <= 0 {
		return NewValidationError("product_id is required")
	}
	if it.StoreID <= 0 {
		return NewValidationError("store_id is required")
	}
	if it.Quantity < 1 {
		return NewValidationError("quantity must be at least 1")
	}
	if it.PriceSnapshot.IsNegative() {
		return NewValidationError("price_snapshot must be non-negative")
	}
	return nil
}

// StatusUpdate — тело перехода статуса резерва.
// Для SOLICITADA содержит снимок всех позиций на момент подтверждения.
type StatusUpdate struct {
	Status Status            `json:"status"`
	Items  []ReservationItem `json:"items,omitempty"`
}

// CloneReservation — глубокая копия резерва (вместе с позициями).
func CloneReservation(r *Reservation) *Reservation {
	if r == nil {
		return nil
	}
	cloned := *r
	cloned.Items = CloneItems(r.Items)
	return &cloned
}

// CloneItems — копия среза позиций; nil остаётся nil.
func CloneItems(items []ReservationItem) []ReservationItem {
	if items == nil {
		return nil
	}
	return append([]ReservationItem(nil), items...)
}
