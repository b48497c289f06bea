package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

var _ ports.ReservationService = (*ReservationService)(nil)

// ReservationService — серверная логика репозитория резервов: владелец, статус,
// машина состояний и публикация событий.
type ReservationService struct {
	repo      ports.ReservationStore
	stores    ports.StoreDirectory
	publisher ports.StatusPublisher
	validator ports.ReservationValidator
	log       ports.Logger
	now       func() time.Time
}

// NewReservationService — DI-конструктор. publisher может быть nil (события не публикуются).
func NewReservationService(
	repo ports.ReservationStore,
	stores ports.StoreDirectory,
	publisher ports.StatusPublisher,
	validator ports.ReservationValidator,
	log ports.Logger,
) *ReservationService {
	return &ReservationService{
		repo:      repo,
		stores:    stores,
		publisher: publisher,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// Create — новый PENDING-резерв клиента. Второй PENDING отклоняется хранилищем (ErrConflict).
func (s *ReservationService) Create(ctx context.Context, caller ports.Caller, r *domain.Reservation) (*domain.Reservation, error) {
	if caller.ClientID <= 0 {
		return nil, fmt.Errorf("%w: client identity required", domain.ErrForbidden)
	}
	if r == nil {
		return nil, domain.NewValidationError("reservation body is required")
	}
	in := *r
	if in.ClientID == 0 {
		in.ClientID = caller.ClientID
	}
	if in.ClientID != caller.ClientID {
		return nil, fmt.Errorf("%w: client %d cannot create for client %d", domain.ErrForbidden, caller.ClientID, in.ClientID)
	}
	if err := s.validator.ValidateReservation(ctx, &in); err != nil {
		return nil, err
	}
	in.Status = domain.StatusPending
	in.Items = nil
	if in.CreatedAt.IsZero() {
		in.CreatedAt = s.now().UTC()
	}

	created, err := s.repo.Create(ctx, &in)
	if err != nil {
		s.log.Warnf(ctx, "create reservation failed client_id=%d err=%v", in.ClientID, err)
		return nil, err
	}
	s.log.Infof(ctx, "reservation created id=%d client_id=%d store_id=%d", created.ID, created.ClientID, created.StoreID)
	return created, nil
}

// ListByClient — резервы клиента; status (с учётом синонимов) — необязательный фильтр.
func (s *ReservationService) ListByClient(
	ctx context.Context,
	caller ports.Caller,
	clientID int64,
	status domain.Status,
) ([]domain.Reservation, error) {
	if clientID <= 0 {
		return nil, domain.NewValidationError("client_id is required")
	}
	if caller.ClientID != clientID {
		return nil, fmt.Errorf("%w: client %d cannot list reservations of client %d", domain.ErrForbidden, caller.ClientID, clientID)
	}

	var filter domain.Status
	if status != "" {
		parsed, err := domain.ParseStatus(string(status))
		if err != nil {
			return nil, err
		}
		filter = parsed
	}

	list, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if filter != "" {
		list = domain.FilterByStatus(list, filter)
	}
	return list, nil
}

// ChangeStatus — переход статуса по машине состояний.
// Клиент-владелец отправляет PENDING → SOLICITADA со снимком позиций; магазин
// (X-Store-ID совпадает с магазином резерва или одной из его позиций) подтверждает или отменяет.
func (s *ReservationService) ChangeStatus(
	ctx context.Context,
	caller ports.Caller,
	reservationID int64,
	update *domain.StatusUpdate,
) (*domain.Reservation, error) {
	if err := s.validator.ValidateStatusUpdate(ctx, update); err != nil {
		return nil, err
	}
	current, err := s.repo.Get(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	actor, err := s.actorFor(ctx, caller, current)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateTransition(current.Status, update.Status, actor); err != nil {
		s.log.Warnf(ctx, "transition rejected id=%d err=%v", reservationID, err)
		return nil, err
	}

	in := domain.StatusUpdate{Status: update.Status.Canonical()}
	if in.Status == domain.StatusRequested {
		in.Items = make([]domain.ReservationItem, 0, len(update.Items))
		for i := range update.Items {
			item := update.Items[i]
			item.ReservationID = reservationID
			item.ProductID = item.ResolvedProductID()
			in.Items = append(in.Items, item)
		}
	}

	updated, err := s.repo.UpdateStatus(ctx, reservationID, &in)
	if err != nil {
		return nil, err
	}
	metrics.StatusTransitions.WithLabelValues(string(updated.Status)).Inc()
	s.log.Infof(ctx, "reservation status changed id=%d %s -> %s by %s",
		reservationID, current.Status.Canonical(), updated.Status, actor)

	s.publish(ctx, updated)
	return updated, nil
}

// AddItem — добавить позицию в PENDING-резерв владельца.
func (s *ReservationService) AddItem(ctx context.Context, caller ports.Caller, item *domain.ReservationItem) (*domain.ReservationItem, error) {
	if item == nil {
		return nil, domain.NewValidationError("item body is required")
	}
	if err := s.validator.ValidateItem(ctx, item); err != nil {
		return nil, err
	}
	if _, err := s.ownedPending(ctx, caller, item.ReservationID); err != nil {
		return nil, err
	}

	in := *item
	in.ProductID = in.ResolvedProductID()
	if in.ProductSnapshot.ID == 0 {
		in.ProductSnapshot.ID = in.ProductID
	}
	return s.repo.AddItem(ctx, &in)
}

// ListItems — позиции резерва (владельцу или магазину резерва), по возрастанию ID.
func (s *ReservationService) ListItems(ctx context.Context, caller ports.Caller, reservationID int64) ([]domain.ReservationItem, error) {
	current, err := s.repo.Get(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if _, err := s.actorFor(ctx, caller, current); err != nil {
		return nil, err
	}
	return s.repo.ListItems(ctx, reservationID)
}

// UpdateItemQuantity — изменить количество; только владельцу и только пока резерв в PENDING.
func (s *ReservationService) UpdateItemQuantity(
	ctx context.Context,
	caller ports.Caller,
	itemID int64,
	quantity int,
) (*domain.ReservationItem, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	candidate := *item
	candidate.Quantity = quantity
	if err := s.validator.ValidateItem(ctx, &candidate); err != nil {
		return nil, err
	}
	if _, err := s.ownedPending(ctx, caller, item.ReservationID); err != nil {
		return nil, err
	}
	return s.repo.UpdateItemQuantity(ctx, itemID, quantity)
}

// DeleteItem — удалить позицию; только владельцу и только пока резерв в PENDING.
func (s *ReservationService) DeleteItem(ctx context.Context, caller ports.Caller, itemID int64) error {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if _, err := s.ownedPending(ctx, caller, item.ReservationID); err != nil {
		return err
	}
	return s.repo.DeleteItem(ctx, itemID)
}

// StoreNames — справочник магазинов.
func (s *ReservationService) StoreNames(ctx context.Context, ids []int64) (domain.StoreNames, error) {
	if len(ids) == 0 {
		return domain.StoreNames{}, nil
	}
	return s.stores.StoreNames(ctx, ids)
}

// ------вспомогательные функции------

// ownedPending — резерв принадлежит вызывающему клиенту и ещё в PENDING.
func (s *ReservationService) ownedPending(ctx context.Context, caller ports.Caller, reservationID int64) (*domain.Reservation, error) {
	current, err := s.repo.Get(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if caller.ClientID <= 0 || caller.ClientID != current.ClientID {
		return nil, fmt.Errorf("%w: reservation %d does not belong to client %d", domain.ErrForbidden, reservationID, caller.ClientID)
	}
	if !current.Status.Is(domain.StatusPending) {
		return nil, fmt.Errorf("%w: reservation %d is %s", domain.ErrReservationLocked, reservationID, current.Status.Canonical())
	}
	return current, nil
}

// actorFor — кем выступает вызывающий по отношению к резерву.
func (s *ReservationService) actorFor(ctx context.Context, caller ports.Caller, r *domain.Reservation) (domain.Actor, error) {
	if caller.ClientID > 0 && caller.ClientID == r.ClientID {
		return domain.ActorClient, nil
	}
	if caller.StoreID > 0 {
		serves, err := s.storeServes(ctx, caller.StoreID, r)
		if err != nil {
			return "", err
		}
		if serves {
			return domain.ActorVendor, nil
		}
	}
	return "", fmt.Errorf("%w: reservation %d is not accessible", domain.ErrForbidden, r.ID)
}

func (s *ReservationService) storeServes(ctx context.Context, storeID int64, r *domain.Reservation) (bool, error) {
	if r.StoreID == storeID {
		return true, nil
	}
	items := r.Items
	if len(items) == 0 {
		listed, err := s.repo.ListItems(ctx, r.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return false, err
		}
		items = listed
	}
	for i := range items {
		if items[i].StoreID == storeID {
			return true, nil
		}
	}
	return false, nil
}

// publish — событие смены статуса; ошибка публикации не откатывает переход.
func (s *ReservationService) publish(ctx context.Context, r *domain.Reservation) {
	if s.publisher == nil {
		return
	}
	event := &domain.StatusChangedEvent{
		EventType:     domain.EventTypeStatusChanged,
		ReservationID: r.ID,
		ClientID:      r.ClientID,
		StoreID:       r.StoreID,
		Status:        r.Status,
		ChangedAt:     s.now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		s.log.Errorf(ctx, "publish status event failed id=%d status=%s err=%v", r.ID, r.Status, err)
	}
}
