package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

// Проверка, что ReservationRepository удовлетворяет серверному порту хранилища.
var _ ports.ReservationStore = (*ReservationRepository)(nil)

// ReservationRepository — резервы и их позиции в Postgres (pgxpool).
type ReservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository — конструктор ReservationRepository.
func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const reservationColumns = `id, client_id, COALESCE(store_id, 0), status, items_snapshot, created_at`

const itemColumns = `id, reservation_id, product_id, store_id, quantity, price_snapshot, product_snapshot`

// Create — вставляет PENDING-резерв. Второй PENDING клиента упирается
// в частичный уникальный индекс и возвращается как ErrConflict.
func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	if reservation == nil || reservation.ClientID <= 0 {
		return nil, domain.NewValidationError("client_id is required")
	}
	createdAt := reservation.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO reservations (client_id, store_id, status, created_at, updated_at)
		VALUES ($1, NULLIF($2, 0), $3, $4, $4)
		RETURNING `+reservationColumns,
		reservation.ClientID, reservation.StoreID, string(domain.StatusPending), createdAt,
	)
	out, err := scanReservation(row)
	if err != nil {
		return nil, mapError("insert reservation", err)
	}
	return out, nil
}

// Get — резерв по ID вместе со снимком позиций (если он есть).
func (r *ReservationRepository) Get(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, reservationID)
	out, err := scanReservation(row)
	if err != nil {
		return nil, mapError("select reservation", err)
	}
	return out, nil
}

// ListByClient — все резервы клиента по возрастанию ID.
// У отправленных резервов Items — снимок на момент подтверждения,
// у PENDING — текущие позиции (одним запросом на всю страницу).
func (r *ReservationRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE client_id = $1
		ORDER BY id
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("select client reservations: %w", err)
	}
	defer rows.Close()

	list := make([]domain.Reservation, 0)
	pendingIdx := make(map[int64]int)
	pendingIDs := make([]int64, 0, 1)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		if res.Status.Is(domain.StatusPending) {
			pendingIdx[res.ID] = len(list)
			pendingIDs = append(pendingIDs, res.ID)
		}
		list = append(list, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reservations rows: %w", err)
	}
	if len(pendingIDs) == 0 {
		return list, nil
	}

	iRows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM reservation_items
		WHERE reservation_id = ANY($1::bigint[])
		ORDER BY reservation_id, id
	`, pendingIDs)
	if err != nil {
		return nil, fmt.Errorf("select pending items: %w", err)
	}
	defer iRows.Close()

	for iRows.Next() {
		item, err := scanItem(iRows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if pos, ok := pendingIdx[item.ReservationID]; ok {
			list[pos].Items = append(list[pos].Items, *item)
		}
	}
	if err := iRows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}
	return list, nil
}

// UpdateStatus — записывает новый статус (и снимок позиций для SOLICITADA).
// Терминальные резервы не меняются: такая попытка даёт ErrIllegalTransition.
func (r *ReservationRepository) UpdateStatus(
	ctx context.Context,
	reservationID int64,
	update *domain.StatusUpdate,
) (*domain.Reservation, error) {
	if update == nil {
		return nil, domain.NewValidationError("status update is required")
	}
	status := update.Status.Canonical()

	var snapshot []byte
	if update.Items != nil {
		raw, err := json.Marshal(update.Items)
		if err != nil {
			return nil, fmt.Errorf("marshal items snapshot: %w", err)
		}
		snapshot = raw
	}

	row := r.pool.QueryRow(ctx, `
		UPDATE reservations
		SET status = $2,
			items_snapshot = COALESCE($3::jsonb, items_snapshot),
			updated_at = now()
		WHERE id = $1 AND status NOT IN ($4, $5)
		RETURNING `+reservationColumns,
		reservationID, string(status), snapshot,
		string(domain.StatusConfirmed), string(domain.StatusCancelled),
	)
	out, err := scanReservation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		if _, getErr := r.Get(ctx, reservationID); getErr != nil {
			return nil, getErr
		}
		return nil, fmt.Errorf("%w: reservation %d is final", domain.ErrIllegalTransition, reservationID)
	}
	if err != nil {
		return nil, mapError("update reservation status", err)
	}
	return out, nil
}

// AddItem — вставляет позицию в PENDING-резерв. Родитель блокируется на время транзакции,
// чтобы позиция не попала в уже отправленный резерв. Первый магазин становится магазином резерва.
func (r *ReservationRepository) AddItem(ctx context.Context, item *domain.ReservationItem) (*domain.ReservationItem, error) {
	if item == nil {
		return nil, domain.NewValidationError("item is required")
	}
	snapshot, err := json.Marshal(item.ProductSnapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal product snapshot: %w", err)
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		if rbErr := transaction.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			_ = rbErr
		}
	}()

	var status string
	if err := transaction.QueryRow(ctx,
		`SELECT status FROM reservations WHERE id = $1 FOR UPDATE`, item.ReservationID,
	).Scan(&status); err != nil {
		return nil, mapError("lock reservation", err)
	}
	if !domain.Status(status).Is(domain.StatusPending) {
		return nil, fmt.Errorf("%w: reservation %d is %s", domain.ErrReservationLocked, item.ReservationID, status)
	}

	row := transaction.QueryRow(ctx, `
		INSERT INTO reservation_items (reservation_id, product_id, store_id, quantity, price_snapshot, product_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		RETURNING `+itemColumns,
		item.ReservationID, item.ResolvedProductID(), item.StoreID, item.Quantity, item.PriceSnapshot, string(snapshot),
	)
	out, err := scanItem(row)
	if err != nil {
		return nil, mapError("insert item", err)
	}

	if _, err := transaction.Exec(ctx,
		`UPDATE reservations SET store_id = $2, updated_at = now() WHERE id = $1 AND store_id IS NULL`,
		item.ReservationID, item.StoreID,
	); err != nil {
		return nil, mapError("set reservation store", err)
	}

	if err := transaction.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

// ListItems — позиции резерва по возрастанию ID.
func (r *ReservationRepository) ListItems(ctx context.Context, reservationID int64) ([]domain.ReservationItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM reservation_items
		WHERE reservation_id = $1
		ORDER BY id
	`, reservationID)
	if err != nil {
		return nil, fmt.Errorf("select items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ReservationItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("items rows: %w", err)
	}
	return items, nil
}

// GetItem — позиция по ID.
func (r *ReservationRepository) GetItem(ctx context.Context, itemID int64) (*domain.ReservationItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM reservation_items WHERE id = $1`, itemID)
	out, err := scanItem(row)
	if err != nil {
		return nil, mapError("select item", err)
	}
	return out, nil
}

// UpdateItemQuantity — новое количество позиции; только пока родитель в PENDING.
func (r *ReservationRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.ReservationItem, error) {
	if quantity < 1 {
		return nil, domain.NewValidationError("quantity must be at least 1")
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE reservation_items AS i
		SET quantity = $2
		FROM reservations AS r
		WHERE i.id = $1 AND r.id = i.reservation_id AND r.status = $3
		RETURNING i.id, i.reservation_id, i.product_id, i.store_id, i.quantity, i.price_snapshot, i.product_snapshot
	`, itemID, quantity, string(domain.StatusPending))
	out, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, r.itemNotMutable(ctx, itemID)
	}
	if err != nil {
		return nil, mapError("update item quantity", err)
	}
	return out, nil
}

// DeleteItem — удаляет позицию; только пока родитель в PENDING.
func (r *ReservationRepository) DeleteItem(ctx context.Context, itemID int64) error {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM reservation_items AS i
		USING reservations AS r
		WHERE i.id = $1 AND r.id = i.reservation_id AND r.status = $2
	`, itemID, string(domain.StatusPending))
	if err != nil {
		return mapError("delete item", err)
	}
	if tag.RowsAffected() == 0 {
		return r.itemNotMutable(ctx, itemID)
	}
	return nil
}

// itemNotMutable — почему условное изменение позиции ничего не затронуло:
// позиции нет (ErrNotFound) или её резерв уже не PENDING (ErrReservationLocked).
func (r *ReservationRepository) itemNotMutable(ctx context.Context, itemID int64) error {
	item, err := r.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	return fmt.Errorf("%w: reservation %d", domain.ErrReservationLocked, item.ReservationID)
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var (
		res      domain.Reservation
		status   string
		snapshot []byte
	)
	if err := row.Scan(&res.ID, &res.ClientID, &res.StoreID, &status, &snapshot, &res.CreatedAt); err != nil {
		return nil, err
	}
	res.Status = domain.Status(status).Canonical()
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &res.Items); err != nil {
			return nil, fmt.Errorf("decode items snapshot: %w", err)
		}
	}
	return &res, nil
}

func scanItem(row pgx.Row) (*domain.ReservationItem, error) {
	var (
		item     domain.ReservationItem
		snapshot []byte
	)
	if err := row.Scan(
		&item.ID, &item.ReservationID, &item.ProductID, &item.StoreID,
		&item.Quantity, &item.PriceSnapshot, &snapshot,
	); err != nil {
		return nil, err
	}
	if len(snapshot) > 0 {
		if err := json.Unmarshal(snapshot, &item.ProductSnapshot); err != nil {
			return nil, fmt.Errorf("decode product snapshot: %w", err)
		}
	}
	return &item, nil
}
