package validate

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

// Проверка, что ReservationValidator удовлетворяет интерфейсу ports.ReservationValidator.
var _ ports.ReservationValidator = (*ReservationValidator)(nil)

// MaxItemQuantity — верхняя граница количества в одной позиции.
const MaxItemQuantity = 99

// minCreatedAt — резервы "из прошлого тысячелетия" считаем мусором.
var minCreatedAt = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// ReservationValidator — структура для валидации резервов, позиций и событий статуса.
type ReservationValidator struct{}

// NewReservationValidator — конструктор ReservationValidator.
// Ошибки данных резерва оборачивают domain.ErrValidation (с причиной).
func NewReservationValidator() *ReservationValidator { return &ReservationValidator{} }

// ValidateReservation — проверяет резерв перед созданием.
func (v *ReservationValidator) ValidateReservation(_ context.Context, r *domain.Reservation) error {
	if r == nil {
		return fmt.Errorf("%w: резерв не может быть nil", domain.ErrValidation)
	}
	if r.ClientID <= 0 {
		return fmt.Errorf("%w: client_id обязателен", domain.ErrValidation)
	}
	if r.StoreID < 0 {
		return fmt.Errorf("%w: store_id должен быть неотрицательным", domain.ErrValidation)
	}
	if r.Status != "" && !r.Status.Is(domain.StatusPending) {
		return fmt.Errorf("%w: новый резерв создаётся только в статусе %s", domain.ErrValidation, domain.StatusPending)
	}
	if !r.CreatedAt.IsZero() && r.CreatedAt.Before(minCreatedAt) {
		return fmt.Errorf("%w: created_at некорректен", domain.ErrValidation)
	}
	return nil
}

// ValidateItem — проверяет позицию резерва.
func (v *ReservationValidator) ValidateItem(_ context.Context, item *domain.ReservationItem) error {
	if item == nil {
		return fmt.Errorf("%w: позиция не может быть nil", domain.ErrValidation)
	}
	return v.validateItem(item, "item")
}

// ValidateStatusUpdate — проверяет тело перехода статуса.
// Для SOLICITADA нужен непустой снимок позиций.
func (v *ReservationValidator) ValidateStatusUpdate(_ context.Context, update *domain.StatusUpdate) error {
	if update == nil {
		return fmt.Errorf("%w: тело перехода не может быть nil", domain.ErrValidation)
	}
	if _, err := domain.ParseStatus(string(update.Status)); err != nil {
		return err
	}
	if !update.Status.Is(domain.StatusRequested) {
		return nil
	}
	if len(update.Items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым для %s", domain.ErrValidation, domain.StatusRequested)
	}
	for i := range update.Items {
		if err := v.validateItem(&update.Items[i], "items["+strconv.Itoa(i)+"]"); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEvent — проверяет событие смены статуса.
func (v *ReservationValidator) ValidateEvent(_ context.Context, event *domain.StatusChangedEvent) error {
	if event == nil {
		return fmt.Errorf("%w: событие не может быть nil", domain.ErrInvalidEvent)
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("%w: event_type=%q reservation_id=%d client_id=%d status=%q",
			err, event.EventType, event.ReservationID, event.ClientID, event.Status)
	}
	return nil
}

func (v *ReservationValidator) validateItem(item *domain.ReservationItem, path string) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if item.Quantity > MaxItemQuantity {
		return fmt.Errorf("%w: %s.quantity не больше %d", domain.ErrValidation, path, MaxItemQuantity)
	}
	if item.ProductSnapshot.Price.IsNegative() {
		return fmt.Errorf("%w: %s.product_snapshot.price должен быть неотрицательным", domain.ErrValidation, path)
	}
	return nil
}
