package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
)

// maxLineSize — предел одной строки JSONL.
const maxLineSize = 10 * 1024 * 1024

// ValidateJSONLStream — построчная проверка событий статуса.
// Невалидные строки попадают в Summary.Rejected с номером строки, пустые пропускаются.
// Ошибкой считаются только сбои чтения/записи.
func ValidateJSONLStream(ctx context.Context, validator ports.ReservationValidator, in io.Reader, out io.Writer) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		event, err := ValidateEventFromJSON(ctx, validator, raw)
		if err != nil {
			summary.Rejected = append(summary.Rejected, Rejection{Line: line, Err: err})
			continue
		}
		if err := writeCanonical(out, event); err != nil {
			return summary, err
		}
		summary.Valid++
	}
	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("scan line %d: %w", line+1, err)
	}
	return summary, nil
}

// writeCanonical — событие одной строкой; статус уже канонический после разбора.
func writeCanonical(out io.Writer, event *domain.StatusChangedEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := out.Write(raw); err != nil {
		return fmt.Errorf("write event: %w", err)
	}
	return nil
}
