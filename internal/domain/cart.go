package domain

import "time"

// OperationStatus — состояние последней асинхронной операции над корзиной.
type OperationStatus string

const (
	OperationIdle      OperationStatus = "idle"
	OperationLoading   OperationStatus = "loading"
	OperationSucceeded OperationStatus = "succeeded"
	OperationFailed    OperationStatus = "failed"
)

// Operation — трекер последней операции: статус и текст ошибки.
type Operation struct {
	Status OperationStatus `json:"status"`
	Error  string          `json:"error,omitempty"`
}

// ActiveCart — активный резерв клиента и его позиции.
// Reservation == nil означает пустую корзину.
type ActiveCart struct {
	Reservation *Reservation      `json:"reservation"`
	Items       []ReservationItem `json:"items"`
}

// EmptyCart — корзина без резерва.
func EmptyCart() ActiveCart {
	return ActiveCart{Items: []ReservationItem{}}
}

// CartView — клиентское представление корзины (не хранится на сервере).
type CartView struct {
	ActiveReservation *Reservation      `json:"active_reservation"`
	ActiveItems       []ReservationItem `json:"active_items"`
	History           []Reservation     `json:"history"`
	Operation         Operation         `json:"operation"`
	Synced            bool              `json:"synced"` // был ли хотя бы один успешный обмен с репозиторием
}

// NewCartView — пустая корзина (init сессии).
func NewCartView() CartView {
	return CartView{
		ActiveItems: []ReservationItem{},
		History:     []Reservation{},
		Operation:   Operation{Status: OperationIdle},
	}
}

// Cart — активная корзина из представления.
func (v CartView) Cart() ActiveCart {
	items := CloneItems(v.ActiveItems)
	if items == nil {
		items = []ReservationItem{}
	}
	return ActiveCart{Reservation: CloneReservation(v.ActiveReservation), Items: items}
}

// SetActive — заменяет активную корзину.
func (v *CartView) SetActive(cart ActiveCart) {
	v.ActiveReservation = CloneReservation(cart.Reservation)
	v.ActiveItems = CloneItems(cart.Items)
	if v.ActiveItems == nil {
		v.ActiveItems = []ReservationItem{}
	}
}

// ClearActive — корзина очищается: следующий add-to-cart создаст новый резерв.
func (v *CartView) ClearActive() {
	v.ActiveReservation = nil
	v.ActiveItems = []ReservationItem{}
}

// ClearActiveIf — очищает корзину, только если активен резерв reservationID.
func (v *CartView) ClearActiveIf(reservationID int64) {
	if v.ActiveReservation != nil && v.ActiveReservation.ID == reservationID {
		v.ClearActive()
	}
}

// AdoptActive — делает резерв активным, если активного ещё нет. Возвращает false,
// если активен другой резерв.
func (v *CartView) AdoptActive(r *Reservation) bool {
	if v.ActiveReservation == nil {
		v.ActiveReservation = CloneReservation(r)
		v.ActiveItems = []ReservationItem{}
		return true
	}
	return v.ActiveReservation.ID == r.ID
}

// PutActiveItem — добавляет позицию в активную корзину или заменяет позицию с тем же ID.
func (v *CartView) PutActiveItem(item ReservationItem) {
	for i := range v.ActiveItems {
		if v.ActiveItems[i].ID == item.ID {
			v.ActiveItems[i] = item
			return
		}
	}
	v.ActiveItems = append(v.ActiveItems, item)
}

// ReplaceActiveItem — заменяет позицию с тем же ID; отсутствующую позицию не добавляет.
func (v *CartView) ReplaceActiveItem(item ReservationItem) {
	for i := range v.ActiveItems {
		if v.ActiveItems[i].ID == item.ID {
			v.ActiveItems[i] = item
			return
		}
	}
}

// RemoveActiveItem — убирает позицию из активной корзины.
func (v *CartView) RemoveActiveItem(itemID int64) {
	kept := make([]ReservationItem, 0, len(v.ActiveItems))
	for i := range v.ActiveItems {
		if v.ActiveItems[i].ID != itemID {
			kept = append(kept, v.ActiveItems[i])
		}
	}
	v.ActiveItems = kept
}

// UpsertHistory — добавляет резерв в историю или заменяет запись с тем же ID.
// PENDING в историю не попадает: он живёт только в активной корзине.
func (v *CartView) UpsertHistory(r Reservation) {
	if r.Status.Is(StatusPending) {
		return
	}
	for i := range v.History {
		if v.History[i].ID == r.ID {
			if r.Items == nil {
				r.Items = v.History[i].Items
			}
			v.History[i] = *CloneReservation(&r)
			return
		}
	}
	v.History = append(v.History, *CloneReservation(&r))
}

// ReplaceHistory — заменяет историю серверным списком (PENDING пропускается).
// Если в ответе у резерва нет позиций, берём их из прежней записи с тем же ID.
func (v *CartView) ReplaceHistory(list []Reservation) {
	previous := make(map[int64][]ReservationItem, len(v.History))
	for i := range v.History {
		previous[v.History[i].ID] = v.History[i].Items
	}
	v.History = make([]Reservation, 0, len(list))
	for i := range list {
		r := list[i]
		if r.Status.Is(StatusPending) {
			continue
		}
		if r.Items == nil {
			r.Items = previous[r.ID]
		}
		v.History = append(v.History, *CloneReservation(&r))
	}
}

// PendingCount — сколько PENDING-резервов сейчас в представлении (инвариант: не больше одного).
func (v CartView) PendingCount() int {
	n := 0
	if v.ActiveReservation != nil && v.ActiveReservation.Status.Is(StatusPending) {
		n++
	}
	for i := range v.History {
		if v.History[i].Status.Is(StatusPending) {
			n++
		}
	}
	return n
}

// CloneCartView — глубокая копия представления.
func CloneCartView(v *CartView) CartView {
	out := CartView{
		ActiveReservation: CloneReservation(v.ActiveReservation),
		ActiveItems:       CloneItems(v.ActiveItems),
		Operation:         v.Operation,
		Synced:            v.Synced,
	}
	if out.ActiveItems == nil {
		out.ActiveItems = []ReservationItem{}
	}
	out.History = make([]Reservation, 0, len(v.History))
	for i := range v.History {
		out.History = append(out.History, *CloneReservation(&v.History[i]))
	}
	return out
}

// EventTypeStatusChanged — тип события смены статуса резерва.
const EventTypeStatusChanged = "reservation.status_changed"

// StatusChangedEvent — событие смены статуса, публикуемое репозиторием резервов.
type StatusChangedEvent struct {
	EventType     string    `json:"event_type"`
	ReservationID int64     `json:"reservation_id"`
	ClientID      int64     `json:"client_id"`
	StoreID       int64     `json:"store_id,omitempty"`
	Status        Status    `json:"status"`
	ChangedAt     time.Time `json:"changed_at"`
}

// Validate — проверка обязательных полей события.
func (e *StatusChangedEvent) Validate() error {
	if e.EventType != EventTypeStatusChanged {
		return ErrInvalidEvent
	}
	if e.ReservationID <= 0 || e.ClientID <= 0 {
		return ErrInvalidEvent
	}
	if !e.Status.Known() {
		return ErrInvalidEvent
	}
	return nil
}
