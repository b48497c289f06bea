package rest

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
)

var _ ports.ReservationRepository = (*ReservationRepository)(nil)

// ReservationRepository — ports.ReservationRepository поверх REST API репозитория резервов.
type ReservationRepository struct {
	client *Client
}

func NewReservationRepository(client *Client) *ReservationRepository {
	return &ReservationRepository{client: client}
}

func (r *ReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	ctx = ctxmeta.WithClientID(ctx, reservation.ClientID)
	var out domain.Reservation
	if err := r.client.do(ctx, "create reservation", http.MethodPost, "/api/v1/reservations", nil, reservation, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReservationRepository) ListByClient(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	ctx = ctxmeta.WithClientID(ctx, clientID)
	query := url.Values{"client_id": {strconv.FormatInt(clientID, 10)}}
	out := make([]domain.Reservation, 0)
	if err := r.client.do(ctx, "list reservations", http.MethodGet, "/api/v1/reservations", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, reservationID int64, update *domain.StatusUpdate) (*domain.Reservation, error) {
	var out domain.Reservation
	path := "/api/v1/reservations/" + strconv.FormatInt(reservationID, 10) + "/status"
	if err := r.client.do(ctx, "update status", http.MethodPatch, path, nil, update, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReservationRepository) AddItem(ctx context.Context, item *domain.ReservationItem) (*domain.ReservationItem, error) {
	var out domain.ReservationItem
	path := "/api/v1/reservations/" + strconv.FormatInt(item.ReservationID, 10) + "/items"
	if err := r.client.do(ctx, "add item", http.MethodPost, path, nil, item, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReservationRepository) ListItems(ctx context.Context, reservationID int64) ([]domain.ReservationItem, error) {
	out := make([]domain.ReservationItem, 0)
	path := "/api/v1/reservations/" + strconv.FormatInt(reservationID, 10) + "/items"
	if err := r.client.do(ctx, "list items", http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// quantityRequest — тело PATCH /items/:id.
type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (r *ReservationRepository) UpdateItemQuantity(ctx context.Context, itemID int64, quantity int) (*domain.ReservationItem, error) {
	var out domain.ReservationItem
	path := "/api/v1/items/" + strconv.FormatInt(itemID, 10)
	if err := r.client.do(ctx, "update item", http.MethodPatch, path, nil, quantityRequest{Quantity: quantity}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ReservationRepository) DeleteItem(ctx context.Context, itemID int64) error {
	path := "/api/v1/items/" + strconv.FormatInt(itemID, 10)
	return r.client.do(ctx, "delete item", http.MethodDelete, path, nil, nil, nil)
}
