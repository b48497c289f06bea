package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

var _ ports.CartStore = (*CartStore)(nil)

type session struct {
	clientID  int64
	view      domain.CartView
	expiresAt time.Time

	initTicket     ports.Ticket // с какого номера начинается сессия; всё, что выдано раньше, — чужое
	lastBegun      ports.Ticket // номер последней начатой операции
	activeApplied  ports.Ticket // последний результат, применённый к активной корзине
	historyApplied ports.Ticket // последний результат, применённый к истории
}

// newest — самый поздний результат, применённый к частям scope.
func (s *session) newest(scope ports.Scope) ports.Ticket {
	var last ports.Ticket
	if scope&ports.ScopeActive != 0 {
		last = max(last, s.activeApplied)
	}
	if scope&ports.ScopeHistory != 0 {
		last = max(last, s.historyApplied)
	}
	return last
}

func (s *session) advance(scope ports.Scope, ticket ports.Ticket) {
	if scope&ports.ScopeActive != 0 {
		s.activeApplied = max(s.activeApplied, ticket)
	}
	if scope&ports.ScopeHistory != 0 {
		s.historyApplied = max(s.historyApplied, ticket)
	}
}

// finish — трекер переходит в succeeded, только когда завершилась последняя начатая операция.
func (s *session) finish(ticket ports.Ticket) {
	if ticket == s.lastBegun {
		s.view.Operation = domain.Operation{Status: domain.OperationSucceeded}
	}
}

// CartStore — сессии корзин клиентов в памяти: LRU + TTL.
type CartStore struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[int64]*list.Element
	seq   ports.Ticket

	mu sync.Mutex
}

// NewCartStore — конструктор CartStore. ttl <= 0 — сессии не истекают.
func NewCartStore(capacity int, ttl time.Duration) *CartStore {
	if capacity <= 0 {
		capacity = 1
	}
	return &CartStore{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

func (c *CartStore) Init(_ context.Context, clientID int64) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[clientID]; ok {
		c.removeElement(elem)
	}
	c.pushSession(clientID, now)
	metrics.CacheOps.WithLabelValues("init").Inc()
}

func (c *CartStore) Teardown(_ context.Context, clientID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[clientID]; ok {
		c.removeElement(elem)
		metrics.CacheOps.WithLabelValues("teardown").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

func (c *CartStore) View(_ context.Context, clientID int64) (domain.CartView, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lookup(clientID, now)
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return domain.CartView{}, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return domain.CloneCartView(&s.view), true
}

func (c *CartStore) Begin(_ context.Context, clientID int64) ports.Ticket {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lookup(clientID, now)
	if !ok {
		s = c.pushSession(clientID, now)
	}
	ticket := c.nextTicket()
	s.lastBegun = ticket
	s.view.Operation = domain.Operation{Status: domain.OperationLoading}
	return ticket
}

func (c *CartStore) Commit(
	_ context.Context,
	clientID int64,
	ticket ports.Ticket,
	scope ports.Scope,
	apply func(view *domain.CartView),
) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lookup(clientID, now)
	if !ok || ticket <= s.initTicket {
		return false
	}
	if ticket <= s.newest(scope) {
		// снимок опоздал, но трекер не должен зависнуть в loading
		s.finish(ticket)
		return false
	}

	if apply != nil {
		apply(&s.view)
	}
	s.advance(scope, ticket)
	s.view.Synced = true
	s.finish(ticket)
	return true
}

func (c *CartStore) Apply(
	_ context.Context,
	clientID int64,
	ticket ports.Ticket,
	scope ports.Scope,
	apply func(view *domain.CartView),
) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lookup(clientID, now)
	if !ok || ticket <= s.initTicket {
		return false
	}
	if apply != nil {
		apply(&s.view)
	}
	s.advance(scope, ticket)
	s.view.Synced = true
	s.finish(ticket)
	return true
}

func (c *CartStore) Fail(_ context.Context, clientID int64, ticket ports.Ticket, err error) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lookup(clientID, now)
	if !ok || ticket <= s.initTicket {
		return
	}
	op := domain.Operation{Status: domain.OperationFailed}
	if err != nil {
		op.Error = err.Error()
	}
	s.view.Operation = op
}

func (c *CartStore) Update(_ context.Context, clientID int64, apply func(view *domain.CartView)) bool {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.lookup(clientID, now)
	if !ok {
		return false
	}
	if apply != nil {
		apply(&s.view)
	}
	s.advance(ports.ScopeActive|ports.ScopeHistory, c.nextTicket())
	return true
}

// Len — число живых сессий (включая ещё не вычищенные истёкшие).
func (c *CartStore) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// ------вспомогательные функции------

func (c *CartStore) nextTicket() ports.Ticket {
	c.seq++
	return c.seq
}

// lookup — живая сессия клиента; продлевает TTL и поднимает в начало списка.
func (c *CartStore) lookup(clientID int64, now time.Time) (*session, bool) {
	elem, ok := c.index[clientID]
	if !ok {
		return nil, false
	}
	s := elem.Value.(*session)
	if c.isExpired(s, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)
	if c.ttl > 0 {
		s.expiresAt = c.expiryFrom(now)
	}
	return s, true
}

func (c *CartStore) pushSession(clientID int64, now time.Time) *session {
	c.pruneExpiredFromBack(now)

	ticket := c.nextTicket()
	s := &session{
		clientID:    clientID,
		view:        domain.NewCartView(),
		expiresAt:   c.expiryFrom(now),
		initTicket:     ticket,
		lastBegun:      ticket,
		activeApplied:  ticket,
		historyApplied: ticket,
	}
	c.index[clientID] = c.ll.PushFront(s)
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return s
}

func (c *CartStore) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		metrics.CacheOps.WithLabelValues("evicted").Inc()
		metrics.CacheSize.Set(float64(len(c.index)))
	}
}

func (c *CartStore) removeElement(elem *list.Element) {
	s := elem.Value.(*session)
	delete(c.index, s.clientID)
	c.ll.Remove(elem)
}

func (c *CartStore) isExpired(s *session, now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(s.expiresAt)
}

func (c *CartStore) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

func (c *CartStore) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		s := back.Value.(*session)
		if now.After(s.expiresAt) {
			c.removeElement(back)
			metrics.CacheOps.WithLabelValues("expired").Inc()
			metrics.CacheSize.Set(float64(len(c.index)))
			continue
		}
		return
	}
}
