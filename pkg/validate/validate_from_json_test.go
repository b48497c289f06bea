package validate

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/Gunvolt24/reserva/internal/domain"
)

func TestValidateEventFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewReservationValidator()

	event, err := ValidateEventFromJSON(ctx, validator, []byte(minimalValidEventJSON(10, 7, "confirmed")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ReservationID != 10 || event.ClientID != 7 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.Status != domain.StatusConfirmed {
		t.Fatalf("status must be canonical, got %q", event.Status)
	}
}

func TestValidateEventFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewReservationValidator()

	raw := `{"unknown":"x",` + minimalValidEventJSON(1, 1, "CANCELADA")[1:]
	_, err := ValidateEventFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
	if !errors.Is(err, domain.ErrInvalidEvent) {
		t.Fatalf("want ErrInvalidEvent in chain, got: %v", err)
	}
}

func TestValidateEventFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewReservationValidator()

	raw := minimalValidEventJSON(3, 3, "CONFIRMADA") + "{}"
	_, err := ValidateEventFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateEventFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewReservationValidator()

	// Не валиден: неизвестный статус
	_, err := ValidateEventFromJSON(ctx, validator, []byte(minimalValidEventJSON(4, 4, "SHIPPED")))
	if !errors.Is(err, domain.ErrInvalidEvent) {
		t.Fatalf("expected ErrInvalidEvent, got %v", err)
	}
}

// ---- helpers ----

func minimalValidEventJSON(reservationID, clientID int64, status string) string {
	return `{
  "event_type": "reservation.status_changed",
  "reservation_id": ` + strconv.FormatInt(reservationID, 10) + `,
  "client_id": ` + strconv.FormatInt(clientID, 10) + `,
  "store_id": 5,
  "status": "` + status + `",
  "changed_at": "2025-03-01T10:00:00Z"
}`
}
