package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/httpx"
	"github.com/Gunvolt24/reserva/pkg/metrics"
)

// Заголовки идентичности и трассировки запроса.
const (
	HeaderClientID  = httpx.HeaderClientID
	HeaderStoreID   = httpx.HeaderStoreID
	HeaderRequestID = httpx.HeaderRequestID
)

// maxErrorBody — сколько байт тела ошибки читаем ради сообщения.
const maxErrorBody = 64 << 10

// Client — HTTP-клиент репозитория резервов (JSON поверх REST).
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient — конструктор клиента. Транспорт обёрнут otelhttp: спаны и проброс trace-контекста.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// errorResponse — тело ошибки сервера: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// do — выполнить запрос: JSON-тело in, JSON-ответ в out (если out != nil).
// Не-2xx превращается в *domain.RemoteError с сообщением сервера.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	start := time.Now()
	defer func() {
		metrics.RemoteCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: marshal request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if clientID, ok := ctxmeta.ClientIDFromContext(ctx); ok {
		req.Header.Set(HeaderClientID, strconv.FormatInt(clientID, 10))
	}
	if storeID, ok := ctxmeta.StoreIDFromContext(ctx); ok {
		req.Header.Set(HeaderStoreID, strconv.FormatInt(storeID, 10))
	}
	if requestID, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		req.Header.Set(HeaderRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: call reservation repository: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(op, resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

func remoteError(op string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	message := strings.TrimSpace(string(raw))
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != "" {
		message = parsed.Error
	}
	return &domain.RemoteError{StatusCode: resp.StatusCode, Message: message, Op: op}
}
