package validate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Gunvolt24/reserva/internal/domain"
)

func validItem() domain.ReservationItem {
	return domain.ReservationItem{
		ProductID:     1,
		StoreID:       2,
		Quantity:      1,
		PriceSnapshot: decimal.RequireFromString("19.90"),
		ProductSnapshot: domain.ProductSnapshot{
			ID: 1, Name: "Camisa", Price: decimal.RequireFromString("19.90"),
		},
	}
}

func TestValidateReservation(t *testing.T) {
	ctx := context.Background()
	v := NewReservationValidator()

	if err := v.ValidateReservation(ctx, &domain.Reservation{ClientID: 1, Status: "pendiente", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := map[string]*domain.Reservation{
		"nil":          nil,
		"no client":    {Status: domain.StatusPending},
		"negative":     {ClientID: 1, StoreID: -1},
		"not pending":  {ClientID: 1, Status: domain.StatusRequested},
		"ancient date": {ClientID: 1, CreatedAt: time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	for name, r := range bad {
		if err := v.ValidateReservation(ctx, r); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", name, err)
		}
	}
}

func TestValidateItem(t *testing.T) {
	ctx := context.Background()
	v := NewReservationValidator()

	ok := validItem()
	if err := v.ValidateItem(ctx, &ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tooMany := validItem()
	tooMany.Quantity = MaxItemQuantity + 1
	negative := validItem()
	negative.ProductSnapshot.Price = decimal.NewFromInt(-1)
	noStore := validItem()
	noStore.StoreID = 0

	for name, it := range map[string]domain.ReservationItem{"too many": tooMany, "negative": negative, "no store": noStore} {
		it := it
		if err := v.ValidateItem(ctx, &it); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("%s: want ErrValidation, got %v", name, err)
		}
	}
	if err := v.ValidateItem(ctx, nil); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("nil item: want ErrValidation, got %v", err)
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	ctx := context.Background()
	v := NewReservationValidator()

	if err := v.ValidateStatusUpdate(ctx, &domain.StatusUpdate{Status: "REQUESTED", Items: []domain.ReservationItem{validItem()}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// магазину снимок не нужен
	if err := v.ValidateStatusUpdate(ctx, &domain.StatusUpdate{Status: domain.StatusConfirmed}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := v.ValidateStatusUpdate(ctx, &domain.StatusUpdate{Status: domain.StatusRequested}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("empty snapshot: want ErrValidation, got %v", err)
	}
	if err := v.ValidateStatusUpdate(ctx, &domain.StatusUpdate{Status: "SHIPPED"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown status: want ErrValidation, got %v", err)
	}
	broken := validItem()
	broken.Quantity = 0
	if err := v.ValidateStatusUpdate(ctx, &domain.StatusUpdate{Status: domain.StatusRequested, Items: []domain.ReservationItem{validItem(), broken}}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("broken snapshot item: want ErrValidation, got %v", err)
	}
}

func TestValidateEvent(t *testing.T) {
	ctx := context.Background()
	v := NewReservationValidator()

	ev := &domain.StatusChangedEvent{EventType: domain.EventTypeStatusChanged, ReservationID: 1, ClientID: 2, Status: domain.StatusCancelled}
	if err := v.ValidateEvent(ctx, ev); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.ValidateEvent(ctx, nil); !errors.Is(err, domain.ErrInvalidEvent) {
		t.Fatalf("nil event: want ErrInvalidEvent, got %v", err)
	}
	ev.EventType = "order.created"
	if err := v.ValidateEvent(ctx, ev); !errors.Is(err, domain.ErrInvalidEvent) {
		t.Fatalf("foreign type: want ErrInvalidEvent, got %v", err)
	}
}
