//go:build integration

package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	cachemem "github.com/Gunvolt24/reserva/internal/cache/memory"
	"github.com/Gunvolt24/reserva/internal/domain"
	pgrepo "github.com/Gunvolt24/reserva/internal/repo/postgres"
	restrepo "github.com/Gunvolt24/reserva/internal/repo/rest"
	"github.com/Gunvolt24/reserva/internal/testutil"
	rest "github.com/Gunvolt24/reserva/internal/transport/http"
	"github.com/Gunvolt24/reserva/internal/usecase"
	"github.com/Gunvolt24/reserva/pkg/logger"
	"github.com/Gunvolt24/reserva/pkg/validate"
)

// e2e — reservation-api поверх Postgres и cart-service поверх REST-клиента к нему.
type e2e struct {
	cartURL string
	apiURL  string
}

func startE2E(t *testing.T) *e2e {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	pg, stop, err := testutil.StartMigratedPostgresTC(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = stop(context.Background()) })

	logg, cleanup, err := logger.NewZapLogger(false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })

	validator := validate.NewReservationValidator()

	// reservation-api
	apiSvc := usecase.NewReservationService(
		pgrepo.NewReservationRepository(pg.Pool), pgrepo.NewStoreDirectory(pg.Pool), nil, validator, logg)
	api := httptest.NewServer(rest.NewReservationRouter(rest.NewReservationHandler(apiSvc, logg, 2*time.Second), ""))
	t.Cleanup(api.Close)

	// cart-service
	client := restrepo.NewClient(api.URL, 2*time.Second)
	cartSvc := usecase.NewCartService(
		restrepo.NewReservationRepository(client),
		cachemem.NewCartStore(100, time.Minute),
		restrepo.NewStoreDirectory(client),
		validator,
		logg,
	)
	cart := httptest.NewServer(rest.NewCartRouter(rest.NewCartHandler(cartSvc, logg, 5*time.Second), ""))
	t.Cleanup(cart.Close)

	return &e2e{cartURL: cart.URL, apiURL: api.URL}
}

func call(t *testing.T, method, url string, headers map[string]string, in, out any) int {
	t.Helper()

	var body bytes.Buffer
	if in != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(in))
	}
	req, err := http.NewRequest(method, url, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestHTTP_CartLifecycle_TC(t *testing.T) {
	env := startE2E(t)
	clientID := testutil.NextClientID()
	as := map[string]string{"X-Client-ID": strconv.FormatInt(clientID, 10)}

	require.Equal(t, http.StatusNoContent, call(t, http.MethodPost, env.cartURL+"/api/v1/cart/session", as, nil, nil))

	var cart domain.ActiveCart
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, env.cartURL+"/api/v1/cart", as, nil, &cart))
	require.Nil(t, cart.Reservation)

	add := map[string]any{
		"store_id": testutil.StoreCentro,
		"quantity": 1,
		"product":  map[string]any{"id": 501, "name": "Camiseta", "price": "19.90", "size": "M"},
	}
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, env.cartURL+"/api/v1/cart/items", as, add, &cart))
	require.NotNil(t, cart.Reservation)
	require.Len(t, cart.Items, 1)
	itemID := cart.Items[0].ID

	add["store_id"] = testutil.StoreNorte
	add["product"] = map[string]any{"id": 502, "name": "Pantalón", "price": "39.00"}
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, env.cartURL+"/api/v1/cart/items", as, add, &cart))
	require.Len(t, cart.Items, 2)

	require.Equal(t, http.StatusOK, call(t, http.MethodPatch,
		env.cartURL+"/api/v1/cart/items/"+strconv.FormatInt(itemID, 10), as, map[string]any{"quantity": 3}, &cart))
	require.Equal(t, 3, cart.Items[0].Quantity)

	// quantity 0 — локальный no-op
	require.Equal(t, http.StatusOK, call(t, http.MethodPatch,
		env.cartURL+"/api/v1/cart/items/"+strconv.FormatInt(itemID, 10), as, map[string]any{"quantity": 0}, &cart))
	require.Equal(t, 3, cart.Items[0].Quantity)

	var groups []domain.StoreGroup
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, env.cartURL+"/api/v1/cart/groups", as, nil, &groups))
	require.Len(t, groups, 2)
	require.Equal(t, "Tienda Centro", groups[0].StoreName)
	require.Equal(t, "Tienda Norte", groups[1].StoreName)

	var confirmed domain.Reservation
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, env.cartURL+"/api/v1/cart/confirm", as,
		map[string]any{"reservation_id": cart.Reservation.ID}, &confirmed))
	require.Equal(t, domain.StatusRequested, confirmed.Status)

	// после отправки позиции заблокированы на стороне репозитория
	code := call(t, http.MethodPatch, env.apiURL+"/api/v1/items/"+strconv.FormatInt(itemID, 10), as,
		map[string]any{"quantity": 5}, nil)
	require.Equal(t, http.StatusConflict, code)

	require.Equal(t, http.StatusOK, call(t, http.MethodGet, env.cartURL+"/api/v1/cart", as, nil, &cart))
	require.Nil(t, cart.Reservation)

	var page struct {
		Items []domain.Reservation `json:"items"`
		Total int                  `json:"total"`
	}
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, env.cartURL+"/api/v1/cart/history", as, nil, &page))
	require.Equal(t, 1, page.Total)
	require.Equal(t, domain.StatusRequested, page.Items[0].Status)
	require.Len(t, page.Items[0].Items, 2)
	require.Equal(t, 3, page.Items[0].Items[0].Quantity)
}

func TestHTTP_ReservationAPI_Ownership_TC(t *testing.T) {
	env := startE2E(t)
	owner := testutil.NextClientID()
	asOwner := map[string]string{"X-Client-ID": strconv.FormatInt(owner, 10)}
	asOther := map[string]string{"X-Client-ID": strconv.FormatInt(testutil.NextClientID(), 10)}

	var created domain.Reservation
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, env.apiURL+"/api/v1/reservations", asOwner,
		map[string]any{"client_id": owner}, &created))

	require.Equal(t, http.StatusConflict, call(t, http.MethodPost, env.apiURL+"/api/v1/reservations", asOwner,
		map[string]any{"client_id": owner}, nil))

	rid := strconv.FormatInt(created.ID, 10)
	require.Equal(t, http.StatusForbidden, call(t, http.MethodGet, env.apiURL+"/api/v1/reservations/"+rid+"/items", asOther, nil, nil))
	require.Equal(t, http.StatusNotFound, call(t, http.MethodGet, env.apiURL+"/api/v1/reservations/999999/items", asOwner, nil, nil))

	var stores []domain.Store
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, env.apiURL+"/api/v1/stores?ids=2,1", nil, nil, &stores))
	require.Equal(t, []domain.Store{{ID: 2, Name: "Tienda Norte"}, {ID: 1, Name: "Tienda Centro"}}, stores)
}
