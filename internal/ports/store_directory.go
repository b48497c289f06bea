package ports

import (
	"context"

	"github.com/Gunvolt24/reserva/internal/domain"
)

// StoreDirectory — справочник магазинов (только чтение).
type StoreDirectory interface {
	// StoreNames — названия магазинов по ID; отсутствующие ID в ответ не попадают.
	StoreNames(ctx context.Context, ids []int64) (domain.StoreNames, error)
}
