package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseStatus_Aliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want Status
	}{
		{"PENDING", StatusPending},
		{"PENDIENTE", StatusPending},
		{"pendiente", StatusPending},
		{" pending ", StatusPending},
		{"SOLICITADA", StatusRequested},
		{"REQUESTED", StatusRequested},
		{"CONFIRMADA", StatusConfirmed},
		{"CONFIRMED", StatusConfirmed},
		{"CANCELADA", StatusCancelled},
		{"CANCELLED", StatusCancelled},
		{"canceled", StatusCancelled},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseStatus(tt.raw)
			if err != nil {
				t.Fatalf("ParseStatus(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Fatalf("ParseStatus(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	if _, err := ParseStatus("SHIPPED"); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestStatusIs_AliasEquivalence(t *testing.T) {
	pairs := [][2]Status{
		{"PENDIENTE", StatusPending},
		{"REQUESTED", StatusRequested},
		{"CANCELLED", StatusCancelled},
		{"CONFIRMED", StatusConfirmed},
	}
	for _, p := range pairs {
		if !p[0].Is(p[1]) || !p[1].Is(p[0]) {
			t.Fatalf("%q and %q must be equivalent", p[0], p[1])
		}
	}
	if Status("PENDIENTE").Is(StatusRequested) {
		t.Fatalf("PENDIENTE must not match SOLICITADA")
	}
}

func TestFilterByStatus_MatchesAliases(t *testing.T) {
	list := []Reservation{
		{ID: 1, Status: "PENDIENTE"},
		{ID: 2, Status: "REQUESTED"},
		{ID: 3, Status: StatusPending},
		{ID: 4, Status: "CANCELLED"},
	}

	pending := FilterByStatus(list, StatusPending)
	if len(pending) != 2 || pending[0].ID != 1 || pending[1].ID != 3 {
		t.Fatalf("unexpected pending filter result: %+v", pending)
	}
	if got := FilterByStatus(list, StatusRequested); len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("unexpected requested filter result: %+v", got)
	}
	if got := FilterByStatus(list, StatusCancelled); len(got) != 1 || got[0].ID != 4 {
		t.Fatalf("unexpected cancelled filter result: %+v", got)
	}
}

func TestStatus_UnmarshalJSON_Canonicalizes(t *testing.T) {
	var r Reservation
	if err := json.Unmarshal([]byte(`{"id":7,"status":"pendiente"}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Status != StatusPending {
		t.Fatalf("want PENDING, got %q", r.Status)
	}

	// неизвестный статус не роняет разбор
	if err := json.Unmarshal([]byte(`{"id":8,"status":"shipped"}`), &r); err != nil {
		t.Fatalf("unmarshal unknown: %v", err)
	}
	if r.Status.Known() {
		t.Fatalf("SHIPPED must stay unknown, got %q", r.Status)
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from, to Status
		actor    Actor
		want     bool
	}{
		{"client submits", StatusPending, StatusRequested, ActorClient, true},
		{"client submits via alias", "PENDIENTE", "REQUESTED", ActorClient, true},
		{"vendor cannot submit", StatusPending, StatusRequested, ActorVendor, false},
		{"vendor confirms", StatusRequested, StatusConfirmed, ActorVendor, true},
		{"vendor cancels", StatusRequested, StatusCancelled, ActorVendor, true},
		{"client cannot confirm", StatusRequested, StatusConfirmed, ActorClient, false},
		{"client cannot cancel", StatusRequested, StatusCancelled, ActorClient, false},
		{"terminal is final", StatusConfirmed, StatusCancelled, ActorVendor, false},
		{"no skip", StatusPending, StatusConfirmed, ActorVendor, false},
		{"no back", StatusRequested, StatusPending, ActorClient, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to, tt.actor); got != tt.want {
				t.Fatalf("CanTransition(%s,%s,%s) = %v, want %v", tt.from, tt.to, tt.actor, got, tt.want)
			}
		})
	}
}

func TestValidateTransition_Errors(t *testing.T) {
	if err := ValidateTransition(StatusPending, StatusRequested, ActorClient); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateTransition(StatusPending, StatusConfirmed, ActorClient); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("want ErrIllegalTransition, got %v", err)
	}
	if err := ValidateTransition(StatusPending, "SHIPPED", ActorClient); !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation for unknown target, got %v", err)
	}
}

func TestStatusTerminal(t *testing.T) {
	if !Status("CONFIRMED").Terminal() || !StatusCancelled.Terminal() {
		t.Fatalf("confirmed/cancelled must be terminal")
	}
	if StatusPending.Terminal() || StatusRequested.Terminal() {
		t.Fatalf("pending/requested must not be terminal")
	}
}
