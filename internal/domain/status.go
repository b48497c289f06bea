package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status — канонический статус резерва.
type Status string

const (
	// StatusPending — черновик: активная корзина клиента.
	StatusPending Status = "PENDING"
	// StatusRequested — клиент отправил резерв, ждём решения магазина.
	StatusRequested Status = "SOLICITADA"
	// StatusConfirmed — магазин подтвердил резерв (терминальный).
	StatusConfirmed Status = "CONFIRMADA"
	// StatusCancelled — резерв отменён (терминальный).
	StatusCancelled Status = "CANCELADA"
)

// statusAliases — таблица синонимов из wire-формата (исторически смешаны испанский и английский).
// Ключи в верхнем регистре.
var statusAliases = map[string]Status{
	"PENDING":    StatusPending,
	"PENDIENTE":  StatusPending,
	"SOLICITADA": StatusRequested,
	"REQUESTED":  StatusRequested,
	"CONFIRMADA": StatusConfirmed,
	"CONFIRMED":  StatusConfirmed,
	"CANCELADA":  StatusCancelled,
	"CANCELLED":  StatusCancelled,
	"CANCELED":   StatusCancelled,
}

// Actor — кто инициирует переход статуса.
type Actor string

const (
	ActorClient Actor = "client"
	ActorVendor Actor = "vendor"
)

type transition struct {
	from, to Status
}

// transitions — допустимые переходы и их инициатор.
var transitions = map[transition]Actor{
	{StatusPending, StatusRequested}:   ActorClient,
	{StatusRequested, StatusConfirmed}: ActorVendor,
	{StatusRequested, StatusCancelled}: ActorVendor,
}

// ParseStatus — приводит строку из wire-формата к каноническому статусу.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if s, ok := statusAliases[key]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrValidation, raw)
}

// Canonical — канонический вид статуса; неизвестное значение возвращается как есть.
func (s Status) Canonical() Status {
	if c, err := ParseStatus(string(s)); err == nil {
		return c
	}
	return s
}

// Known — статус присутствует в таблице синонимов.
func (s Status) Known() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// Is — сравнение с учётом синонимов. Все сравнения статусов идут через него.
func (s Status) Is(other Status) bool {
	return s.Canonical() == other.Canonical()
}

// Terminal — CONFIRMADA или CANCELADA.
func (s Status) Terminal() bool {
	return s.Is(StatusConfirmed) || s.Is(StatusCancelled)
}

// UnmarshalJSON — канонизирует известные синонимы при декодировании.
// Неизвестные значения сохраняются, чтобы не ронять разбор ответа целиком.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = Status(strings.ToUpper(strings.TrimSpace(raw))).Canonical()
	return nil
}

// CanTransition — разрешён ли переход from → to для данного инициатора.
func CanTransition(from, to Status, actor Actor) bool {
	want, ok := transitions[transition{from.Canonical(), to.Canonical()}]
	return ok && want == actor
}

// ValidateTransition — то же, что CanTransition, но с ошибкой ErrIllegalTransition.
func ValidateTransition(from, to Status, actor Actor) error {
	if !to.Known() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, to)
	}
	if !CanTransition(from, to, actor) {
		return fmt.Errorf("%w: %s -> %s by %s", ErrIllegalTransition, from.Canonical(), to.Canonical(), actor)
	}
	return nil
}

// FilterByStatus — резервы с заданным статусом (с учётом синонимов), порядок сохраняется.
func FilterByStatus(list []Reservation, status Status) []Reservation {
	out := make([]Reservation, 0, len(list))
	for i := range list {
		if list[i].Status.Is(status) {
			out = append(out, list[i])
		}
	}
	return out
}
