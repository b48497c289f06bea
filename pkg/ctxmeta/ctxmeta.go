// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, идентичность, trace_id и т.д.).
// Идея: HTTP-слой, REST-клиент и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемые типы — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyClientID  ctxKey = "client_id"
	KeyStoreID   ctxKey = "store_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithClientID кладёт идентификатор клиента (X-Client-ID); id <= 0 игнорируется.
func WithClientID(ctx context.Context, clientID int64) context.Context {
	return withID(ctx, KeyClientID, clientID)
}

// ClientIDFromContext достаёт идентификатор клиента.
func ClientIDFromContext(ctx context.Context) (int64, bool) {
	return idFrom(ctx, KeyClientID)
}

// WithStoreID кладёт идентификатор магазина продавца (X-Store-ID); id <= 0 игнорируется.
func WithStoreID(ctx context.Context, storeID int64) context.Context {
	return withID(ctx, KeyStoreID, storeID)
}

// StoreIDFromContext достаёт идентификатор магазина.
func StoreIDFromContext(ctx context.Context) (int64, bool) {
	return idFrom(ctx, KeyStoreID)
}

func withID(ctx context.Context, key ctxKey, id int64) context.Context {
	if ctx == nil || id <= 0 {
		return ctx
	}
	return context.WithValue(ctx, key, id)
}

func idFrom(ctx context.Context, key ctxKey) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	if v, ok := ctx.Value(key).(int64); ok && v > 0 {
		return v, true
	}
	return 0, false
}
