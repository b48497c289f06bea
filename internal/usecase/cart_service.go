package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/metrics"
	"github.com/Gunvolt24/reserva/pkg/validate"
)

var _ ports.CartService = (*CartService)(nil)

// Имена операций для метрик и логов.
const (
	opFetchActive    = "fetch_active"
	opAddItem        = "add_item"
	opUpdateQuantity = "update_quantity"
	opRemoveItem     = "remove_item"
	opConfirm        = "confirm"
	opFetchHistory   = "fetch_history"
	opStatusEvent    = "status_event"
)

// CartService — синхронизатор корзины: держит закэшированный резерв клиента
// согласованным с репозиторием резервов (без знаний о транспорте).
//
// Каждая операция открывает ticket в CartStore и либо применяет результат, либо
// записывает ошибку (Fail). Снимки с сервера (Commit) отбрасываются, если устарели;
// результаты записей (Apply) накладываются на текущее состояние всегда. Автоматических повторов нет.
type CartService struct {
	repo      ports.ReservationRepository
	store     ports.CartStore
	stores    ports.StoreDirectory
	validator ports.ReservationValidator
	log       ports.Logger
	now       func() time.Time
}

// NewCartService — DI-конструктор.
func NewCartService(
	repo ports.ReservationRepository,
	store ports.CartStore,
	stores ports.StoreDirectory,
	validator ports.ReservationValidator,
	log ports.Logger,
) *CartService {
	return &CartService{
		repo:      repo,
		store:     store,
		stores:    stores,
		validator: validator,
		log:       log,
		now:       time.Now,
	}
}

// StartSession — init: пустая корзина. Резерв здесь не создаётся.
func (s *CartService) StartSession(ctx context.Context, clientID int64) {
	s.store.Init(ctx, clientID)
	s.log.Infof(ctx, "cart session started client_id=%d", clientID)
}

// EndSession — teardown (logout).
func (s *CartService) EndSession(ctx context.Context, clientID int64) {
	s.store.Teardown(ctx, clientID)
	s.log.Infof(ctx, "cart session closed client_id=%d", clientID)
}

// View — текущее представление корзины; без сессии — пустая корзина.
func (s *CartService) View(ctx context.Context, clientID int64) domain.CartView {
	if view, ok := s.store.View(ctx, clientID); ok {
		return view
	}
	return domain.NewCartView()
}

// FetchActiveCart — полная ресинхронизация активной корзины с репозиторием.
func (s *CartService) FetchActiveCart(ctx context.Context, clientID int64) (domain.ActiveCart, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	ticket := s.store.Begin(ctx, clientID)

	cart, err := s.loadActive(ctx, clientID)
	if err != nil {
		return domain.EmptyCart(), s.fail(ctx, opFetchActive, clientID, ticket, err)
	}

	s.commit(ctx, opFetchActive, clientID, ticket, ports.ScopeActive, func(v *domain.CartView) { v.SetActive(cart) })
	return s.cachedCart(ctx, clientID, cart), nil
}

// AddOrUpdateItem — добавить товар в корзину.
// Резерв создаётся лениво: при первом добавлении, если PENDING у клиента ещё нет.
// Повторное добавление того же товара создаёт новую позицию.
func (s *CartService) AddOrUpdateItem(
	ctx context.Context,
	clientID, storeID int64,
	product *domain.Product,
	quantity int,
) (domain.ActiveCart, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	ticket := s.store.Begin(ctx, clientID)

	if err := validateAdd(clientID, storeID, product, quantity); err != nil {
		return s.currentCart(ctx, clientID), s.fail(ctx, opAddItem, clientID, ticket, err)
	}

	view, _ := s.store.View(ctx, clientID)
	active := domain.CloneReservation(view.ActiveReservation)

	// сессия ещё не синхронизировалась — сначала ищем уже существующий PENDING
	if !view.Synced {
		discovered, err := s.loadActive(ctx, clientID)
		if err != nil {
			return s.currentCart(ctx, clientID), s.fail(ctx, opAddItem, clientID, ticket, err)
		}
		if discovered.Reservation != nil {
			active = discovered.Reservation
		}
	}

	created := false
	if active == nil {
		reservation, err := s.repo.Create(ctx, &domain.Reservation{
			ClientID:  clientID,
			StoreID:   storeID,
			Status:    domain.StatusPending,
			CreatedAt: s.now().UTC(),
		})
		if err != nil {
			return s.currentCart(ctx, clientID), s.fail(ctx, opAddItem, clientID, ticket, err)
		}
		active, created = reservation, true
		s.log.Infof(ctx, "reservation created id=%d client_id=%d store_id=%d", active.ID, clientID, storeID)
	}

	added, err := s.repo.AddItem(ctx, &domain.ReservationItem{
		ReservationID:   active.ID,
		ProductID:       product.ID,
		StoreID:         storeID,
		Quantity:        quantity,
		PriceSnapshot:   product.Price,
		ProductSnapshot: *product,
	})
	if err != nil {
		s.keepPartial(ctx, clientID, ticket, created, active)
		return s.currentCart(ctx, clientID), s.fail(ctx, opAddItem, clientID, ticket, staleOnNotFound(err))
	}

	items, err := s.repo.ListItems(ctx, active.ID)
	if err != nil {
		s.keepPartial(ctx, clientID, ticket, created, active)
		return s.currentCart(ctx, clientID), s.fail(ctx, opAddItem, clientID, ticket, staleOnNotFound(err))
	}

	cart := domain.ActiveCart{Reservation: active, Items: items}
	if !s.commit(ctx, opAddItem, clientID, ticket, ports.ScopeActive, func(v *domain.CartView) { v.SetActive(cart) }) {
		// перечитанный список устарел, но сама позиция на сервере уже есть
		s.apply(ctx, opAddItem, clientID, ticket, ports.ScopeActive, func(v *domain.CartView) {
			if v.AdoptActive(active) {
				v.PutActiveItem(*added)
			}
		})
	}
	s.log.Infof(ctx, "item added reservation_id=%d product_id=%d qty=%d items=%d",
		active.ID, product.ID, quantity, len(items))
	return s.cachedCart(ctx, clientID, cart), nil
}

// UpdateQuantity — изменить количество в позиции.
// quantity < 1 — локальный no-op: ни сети, ни изменений кэша, ни ошибки.
func (s *CartService) UpdateQuantity(ctx context.Context, clientID, itemID int64, quantity int) (domain.ActiveCart, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	if quantity < 1 {
		metrics.CartOperations.WithLabelValues(opUpdateQuantity, "noop").Inc()
		return s.currentCart(ctx, clientID), nil
	}

	ticket := s.store.Begin(ctx, clientID)
	if itemID <= 0 {
		return s.currentCart(ctx, clientID), s.fail(ctx, opUpdateQuantity, clientID, ticket, domain.NewValidationError("item_id is required"))
	}

	updated, err := s.repo.UpdateItemQuantity(ctx, itemID, quantity)
	if err != nil {
		return s.currentCart(ctx, clientID), s.fail(ctx, opUpdateQuantity, clientID, ticket, staleOnNotFound(err))
	}

	s.apply(ctx, opUpdateQuantity, clientID, ticket, ports.ScopeActive, func(v *domain.CartView) {
		v.ReplaceActiveItem(*updated)
	})
	return s.currentCart(ctx, clientID), nil
}

// RemoveItem — удалить позицию из корзины.
func (s *CartService) RemoveItem(ctx context.Context, clientID, itemID int64) (domain.ActiveCart, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	ticket := s.store.Begin(ctx, clientID)
	if itemID <= 0 {
		return s.currentCart(ctx, clientID), s.fail(ctx, opRemoveItem, clientID, ticket, domain.NewValidationError("item_id is required"))
	}

	if err := s.repo.DeleteItem(ctx, itemID); err != nil {
		return s.currentCart(ctx, clientID), s.fail(ctx, opRemoveItem, clientID, ticket, staleOnNotFound(err))
	}

	s.apply(ctx, opRemoveItem, clientID, ticket, ports.ScopeActive, func(v *domain.CartView) {
		v.RemoveActiveItem(itemID)
	})
	return s.currentCart(ctx, clientID), nil
}

// ConfirmReservation — отправить активный резерв магазину (PENDING → SOLICITADA)
// со снимком всех текущих позиций. После успеха корзина пустеет, резерв уходит в историю.
func (s *CartService) ConfirmReservation(ctx context.Context, clientID, reservationID int64) (*domain.Reservation, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	ticket := s.store.Begin(ctx, clientID)

	view, _ := s.store.View(ctx, clientID)
	if view.ActiveReservation == nil {
		return nil, s.fail(ctx, opConfirm, clientID, ticket, domain.NewValidationError("no active reservation to confirm"))
	}
	if view.ActiveReservation.ID != reservationID {
		err := fmt.Errorf("%w: reservation %d is not the active one (active=%d)",
			domain.ErrStaleAggregate, reservationID, view.ActiveReservation.ID)
		return nil, s.fail(ctx, opConfirm, clientID, ticket, err)
	}

	snapshot := make([]domain.ReservationItem, 0, len(view.ActiveItems))
	for i := range view.ActiveItems {
		item := view.ActiveItems[i]
		item.ProductID = item.ResolvedProductID()
		snapshot = append(snapshot, item)
	}

	updated, err := s.repo.UpdateStatus(ctx, reservationID, &domain.StatusUpdate{
		Status: domain.StatusRequested,
		Items:  snapshot,
	})
	if err != nil {
		return nil, s.fail(ctx, opConfirm, clientID, ticket, staleOnNotFound(err))
	}

	submitted := domain.CloneReservation(updated)
	if submitted.Items == nil {
		submitted.Items = snapshot
	}
	s.apply(ctx, opConfirm, clientID, ticket, ports.ScopeActive|ports.ScopeHistory, func(v *domain.CartView) {
		v.ClearActiveIf(submitted.ID)
		v.UpsertHistory(*submitted)
	})
	s.log.Infof(ctx, "reservation confirmed id=%d client_id=%d items=%d status=%s",
		submitted.ID, clientID, len(snapshot), submitted.Status)
	return submitted, nil
}

// FetchHistory — все резервы клиента (любой статус). Активную корзину не трогает.
func (s *CartService) FetchHistory(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	ticket := s.store.Begin(ctx, clientID)

	list, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return nil, s.fail(ctx, opFetchHistory, clientID, ticket, err)
	}

	s.commit(ctx, opFetchHistory, clientID, ticket, ports.ScopeHistory, func(v *domain.CartView) { v.ReplaceHistory(list) })
	return list, nil
}

// GroupedCart — позиции активной корзины, сгруппированные по магазинам.
// Ошибка справочника магазинов не фатальна: используются подписи по умолчанию.
func (s *CartService) GroupedCart(ctx context.Context, clientID int64) ([]domain.StoreGroup, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	if clientID <= 0 {
		return nil, domain.NewValidationError("client_id is required")
	}
	view := s.View(ctx, clientID)

	var names domain.StoreNames
	if ids := domain.StoreIDs(view.ActiveItems); len(ids) > 0 && s.stores != nil {
		resolved, err := s.stores.StoreNames(ctx, ids)
		if err != nil {
			s.log.Warnf(ctx, "store names lookup failed ids=%v err=%v", ids, err)
		} else {
			names = resolved
		}
	}
	return domain.GroupByStore(view.ActiveItems, names), nil
}

// ApplyStatusEvent — применить событие смены статуса, пришедшее из Kafka.
// Некорректное событие — ошибка с domain.ErrInvalidEvent (консьюмер его пропустит).
// События по клиентам без сессии и по незнакомым резервам игнорируются.
func (s *CartService) ApplyStatusEvent(ctx context.Context, raw []byte) error {
	event, err := validate.ValidateEventFromJSON(ctx, s.validator, raw)
	if err != nil {
		metrics.CartOperations.WithLabelValues(opStatusEvent, "error").Inc()
		s.log.Warnf(ctx, "status event rejected err=%v", err)
		return err
	}

	view, ok := s.store.View(ctx, event.ClientID)
	if !ok || !eventConcerns(&view, event) {
		metrics.CartOperations.WithLabelValues(opStatusEvent, "noop").Inc()
		return nil
	}

	s.store.Update(ctx, event.ClientID, func(v *domain.CartView) { applyStatusEvent(v, event) })
	metrics.CartOperations.WithLabelValues(opStatusEvent, "ok").Inc()
	s.log.Infof(ctx, "status event applied reservation_id=%d client_id=%d status=%s",
		event.ReservationID, event.ClientID, event.Status)
	return nil
}

// ------вспомогательные функции------

// loadActive — PENDING-резерв клиента и его позиции.
// Больше одного PENDING — аномалия: берём первый, пишем предупреждение, но не падаем.
func (s *CartService) loadActive(ctx context.Context, clientID int64) (domain.ActiveCart, error) {
	list, err := s.repo.ListByClient(ctx, clientID)
	if err != nil {
		return domain.EmptyCart(), err
	}

	pending := domain.FilterByStatus(list, domain.StatusPending)
	if len(pending) == 0 {
		return domain.EmptyCart(), nil
	}
	if len(pending) > 1 {
		metrics.PendingAnomalies.Inc()
		s.log.Warnf(ctx, "client has %d PENDING reservations client_id=%d, using id=%d",
			len(pending), clientID, pending[0].ID)
	}

	active := pending[0]
	active.Items = nil
	items, err := s.repo.ListItems(ctx, active.ID)
	if err != nil {
		return domain.EmptyCart(), err
	}
	if items == nil {
		items = []domain.ReservationItem{}
	}
	return domain.ActiveCart{Reservation: &active, Items: items}, nil
}

// keepPartial — резерв уже создан на сервере, но позиция не добавлена/не перечитана:
// запоминаем только сам резерв, чтобы следующее добавление не создавало второй PENDING.
// Уже существовавший резерв кэш не меняет.
func (s *CartService) keepPartial(
	ctx context.Context,
	clientID int64,
	ticket ports.Ticket,
	created bool,
	active *domain.Reservation,
) {
	if !created {
		return
	}
	s.store.Apply(ctx, clientID, ticket, ports.ScopeActive, func(v *domain.CartView) { v.AdoptActive(active) })
}

// commit — применить снимок; устаревший снимок отбрасывается и учитывается в метриках.
func (s *CartService) commit(
	ctx context.Context,
	op string,
	clientID int64,
	ticket ports.Ticket,
	scope ports.Scope,
	apply func(v *domain.CartView),
) bool {
	if s.store.Commit(ctx, clientID, ticket, scope, apply) {
		metrics.CartOperations.WithLabelValues(op, "ok").Inc()
		return true
	}
	metrics.StaleResults.Inc()
	metrics.CartOperations.WithLabelValues(op, "stale").Inc()
	s.log.Warnf(ctx, "stale result discarded op=%s client_id=%d ticket=%d", op, clientID, ticket)
	return false
}

// apply — наложить результат записи; без сессии результат просто не кэшируется.
func (s *CartService) apply(
	ctx context.Context,
	op string,
	clientID int64,
	ticket ports.Ticket,
	scope ports.Scope,
	fn func(v *domain.CartView),
) {
	if s.store.Apply(ctx, clientID, ticket, scope, fn) {
		metrics.CartOperations.WithLabelValues(op, "ok").Inc()
		return
	}
	metrics.CartOperations.WithLabelValues(op, "dropped").Inc()
	s.log.Infof(ctx, "write result not cached, session closed op=%s client_id=%d ticket=%d", op, clientID, ticket)
}

// fail — записать ошибку в трекер и вернуть её вызывающему.
func (s *CartService) fail(ctx context.Context, op string, clientID int64, ticket ports.Ticket, err error) error {
	s.store.Fail(ctx, clientID, ticket, err)
	metrics.CartOperations.WithLabelValues(op, "error").Inc()

	switch {
	case errors.Is(err, domain.ErrValidation):
		s.log.Warnf(ctx, "%s rejected client_id=%d err=%v", op, clientID, err)
	case domain.RequiresResync(err):
		s.log.Warnf(ctx, "%s needs resync client_id=%d err=%v", op, clientID, err)
	default:
		s.log.Errorf(ctx, "%s failed client_id=%d err=%v", op, clientID, err)
	}
	return err
}

// currentCart — активная корзина из кэша (пустая, если сессии нет).
func (s *CartService) currentCart(ctx context.Context, clientID int64) domain.ActiveCart {
	if view, ok := s.store.View(ctx, clientID); ok {
		return view.Cart()
	}
	return domain.EmptyCart()
}

// cachedCart — корзина из кэша после Commit; если сессии уже нет — fallback.
func (s *CartService) cachedCart(ctx context.Context, clientID int64, fallback domain.ActiveCart) domain.ActiveCart {
	if view, ok := s.store.View(ctx, clientID); ok {
		return view.Cart()
	}
	return fallback
}

// staleOnNotFound — 404 на изменении означает, что закэшированный агрегат устарел.
func staleOnNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrStaleAggregate, err)
	}
	return err
}

func validateAdd(clientID, storeID int64, product *domain.Product, quantity int) error {
	switch {
	case clientID <= 0:
		return domain.NewValidationError("client_id is required")
	case storeID <= 0:
		return domain.NewValidationError("store_id is required")
	case product == nil || product.ID <= 0:
		return domain.NewValidationError("product.id is required")
	case quantity < 1:
		return domain.NewValidationError("quantity must be at least 1")
	case product.Price.IsNegative():
		return domain.NewValidationError("product.price must be non-negative")
	}
	return nil
}

func eventConcerns(v *domain.CartView, event *domain.StatusChangedEvent) bool {
	if v.ActiveReservation != nil && v.ActiveReservation.ID == event.ReservationID {
		return true
	}
	for i := range v.History {
		if v.History[i].ID == event.ReservationID {
			return true
		}
	}
	return false
}

func applyStatusEvent(v *domain.CartView, event *domain.StatusChangedEvent) {
	if v.ActiveReservation != nil && v.ActiveReservation.ID == event.ReservationID {
		if event.Status.Is(domain.StatusPending) {
			return
		}
		moved := *domain.CloneReservation(v.ActiveReservation)
		moved.Status = event.Status.Canonical()
		moved.Items = domain.CloneItems(v.ActiveItems)
		v.ClearActive()
		v.UpsertHistory(moved)
		return
	}
	for i := range v.History {
		if v.History[i].ID == event.ReservationID {
			updated := v.History[i]
			updated.Status = event.Status.Canonical()
			v.UpsertHistory(updated)
			return
		}
	}
}
