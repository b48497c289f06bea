package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/reserva/internal/domain"
)

func TestValidateJSONLStream_CanonicalOutputAndLineNumbers(t *testing.T) {
	input := strings.Join([]string{
		compact(minimalValidEventJSON(1, 10, "CONFIRMADA")),
		compact(minimalValidEventJSON(0, 10, "CONFIRMADA")), // нет reservation_id
		"   ",
		compact(minimalValidEventJSON(3, 10, "cancelled")),
		"not json",
	}, "\n")

	var out bytes.Buffer
	summary, err := ValidateJSONLStream(context.Background(), NewReservationValidator(), strings.NewReader(input), &out)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Valid)
	require.Equal(t, 2, summary.Invalid())
	require.Equal(t, 2, summary.Rejected[0].Line)
	require.Equal(t, 5, summary.Rejected[1].Line)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var last domain.StatusChangedEvent
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &last))
	require.Equal(t, int64(3), last.ReservationID)
	// синоним переписан в канонический статус
	require.Contains(t, lines[1], `"CANCELADA"`)
}

func TestValidateJSONLStream_LargeLine(t *testing.T) {
	// строка > 64KB за счёт пробелов внутри объекта
	raw := `{"event_type":"reservation.status_changed",` + strings.Repeat(" ", 200_000) +
		`"reservation_id":9,"client_id":1,"status":"CONFIRMADA","changed_at":"2025-03-01T10:00:00Z"}`

	var out bytes.Buffer
	summary, err := ValidateJSONLStream(context.Background(), NewReservationValidator(), strings.NewReader(raw+"\n"), &out)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Valid)
	require.Zero(t, summary.Invalid())
}
