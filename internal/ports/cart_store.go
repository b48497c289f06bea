package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// Ticket — порядковый номер операции над корзиной.
// Выдаётся из монотонно растущей последовательности хранилища.
type Ticket uint64

// Scope — части представления корзины, которые затрагивает результат операции.
type Scope uint8

const (
	ScopeActive  Scope = 1 << iota // активный резерв и его позиции
	ScopeHistory                   // история резервов
)

// CartStore — клиентский кэш корзин (по одной сессии на клиента).
// Требования к реализации: потокобезопасность; возврат копий.
// Снимок (Commit) отбрасывается, если по его части представления уже применён более поздний результат;
// результат записи (Apply) сервер уже принял, поэтому он накладывается на текущее состояние всегда.
type CartStore interface {
	// Init — открыть сессию с пустой корзиной (повторный вызов сбрасывает сессию).
	Init(ctx context.Context, clientID int64)

	// Teardown — закрыть сессию (logout); результаты незавершённых операций будут отброшены.
	Teardown(ctx context.Context, clientID int64)

	// View — копия представления корзины; false, если сессии нет.
	View(ctx context.Context, clientID int64) (domain.CartView, bool)

	// Begin — пометить операцию как loading и выдать ей ticket. Сессия создаётся при необходимости.
	Begin(ctx context.Context, clientID int64) Ticket

	// Commit — применить снимок с сервера, заменяющий части scope, и пометить операцию succeeded.
	// Возвращает false, если снимок устарел (по scope уже применён более поздний результат) и был отброшен.
	Commit(ctx context.Context, clientID int64, ticket Ticket, scope Scope, apply func(view *domain.CartView)) bool

	// Apply — наложить результат записи на текущее представление, даже если более поздние
	// операции уже завершились; снимки по scope, начатые раньше, после этого считаются устаревшими.
	// Возвращает false только если сессии нет или она открыта заново после выдачи ticket.
	Apply(ctx context.Context, clientID int64, ticket Ticket, scope Scope, apply func(view *domain.CartView)) bool

	// Fail — записать ошибку операции (данные корзины не меняются).
	Fail(ctx context.Context, clientID int64, ticket Ticket, err error)

	// Update — применить изменение, пришедшее не от операции клиента (событие статуса).
	// Трекер операции не меняется; снимки, начатые раньше, будут отброшены.
	// Возвращает false, если сессии нет.
	Update(ctx context.Context, clientID int64, apply func(view *domain.CartView)) bool
}
