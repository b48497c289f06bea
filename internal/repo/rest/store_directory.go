package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

var _ ports.StoreDirectory = (*StoreDirectory)(nil)

// StoreDirectory — справочник магазинов через GET /api/v1/stores?ids=1,2.
type StoreDirectory struct {
	client *Client
}

func NewStoreDirectory(client *Client) *StoreDirectory {
	return &StoreDirectory{client: client}
}

func (d *StoreDirectory) StoreNames(ctx context.Context, ids []int64) (domain.StoreNames, error) {
	names := make(domain.StoreNames, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	query := url.Values{"ids": {strings.Join(parts, ",")}}

	out := make([]domain.Store, 0, len(ids))
	if err := d.client.do(ctx, "list stores", http.MethodGet, "/api/v1/stores", query, nil, &out); err != nil {
		return nil, err
	}
	for _, s := range out {
		names[s.ID] = s.Name
	}
	return names, nil
}
