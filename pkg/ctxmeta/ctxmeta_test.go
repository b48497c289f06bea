package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
)

func TestRequestID(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithRequestID(parent, "req-123")
	got, ok := ctxmeta.RequestIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "req-123", got)

	_, ok = ctxmeta.RequestIDFromContext(parent)
	require.False(t, ok, "родитель не должен видеть request_id")

	require.Equal(t, parent, ctxmeta.WithRequestID(parent, ""), "пустой id не меняет контекст")

	//nolint:staticcheck // nil-контекст проверяем намеренно
	require.Nil(t, ctxmeta.WithRequestID(nil, "req-1"))
}

func TestRequestID_Absent(t *testing.T) {
	type foreignKey struct{}
	tests := map[string]context.Context{
		"empty context":      context.Background(),
		"empty stored value": context.WithValue(context.Background(), ctxmeta.KeyRequestID, ""),
		"foreign key":        context.WithValue(context.Background(), foreignKey{}, "req-xyz"),
		"wrong value type":   context.WithValue(context.Background(), ctxmeta.KeyRequestID, 42),
	}
	for name, ctx := range tests {
		ctx := ctx
		t.Run(name, func(t *testing.T) {
			id, ok := ctxmeta.RequestIDFromContext(ctx)
			require.False(t, ok)
			require.Empty(t, id)
		})
	}
}

func TestIdentityIDs(t *testing.T) {
	parent := context.Background()

	ctx := ctxmeta.WithStoreID(ctxmeta.WithClientID(parent, 42), 7)
	clientID, ok := ctxmeta.ClientIDFromContext(ctx)
	require.True(t, ok)
	require.EqualValues(t, 42, clientID)
	storeID, ok := ctxmeta.StoreIDFromContext(ctx)
	require.True(t, ok)
	require.EqualValues(t, 7, storeID)

	onlyClient := ctxmeta.WithClientID(parent, 42)
	_, ok = ctxmeta.StoreIDFromContext(onlyClient)
	require.False(t, ok, "client id не должен подменять store id")

	for _, id := range []int64{0, -1} {
		require.Equal(t, parent, ctxmeta.WithClientID(parent, id))
		require.Equal(t, parent, ctxmeta.WithStoreID(parent, id))
	}
}
