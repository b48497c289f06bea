package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

var _ ports.StoreDirectory = (*StoreDirectory)(nil)

// StoreDirectory — справочник магазинов из таблицы stores.
type StoreDirectory struct {
	pool *pgxpool.Pool
}

func NewStoreDirectory(pool *pgxpool.Pool) *StoreDirectory { return &StoreDirectory{pool: pool} }

// StoreNames — названия магазинов по ID; отсутствующие ID в результат не попадают.
func (d *StoreDirectory) StoreNames(ctx context.Context, ids []int64) (domain.StoreNames, error) {
	names := make(domain.StoreNames, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := d.pool.Query(ctx, `SELECT id, name FROM stores WHERE id = ANY($1::bigint[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("select stores: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id   int64
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("stores rows: %w", err)
	}
	return names, nil
}
