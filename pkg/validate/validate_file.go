package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/reserva/internal/ports"
)

// InputFormat — формат файла событий статуса.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// Rejection — отклонённая запись: номер строки (для JSON — 1) и причина.
type Rejection struct {
	Line int
	Err  error
}

// Summary — итог проверки файла событий перед повторной публикацией.
type Summary struct {
	Valid    int
	Rejected []Rejection
}

func (s Summary) Invalid() int { return len(s.Rejected) }

func (s Summary) String() string {
	return fmt.Sprintf("%d valid / %d invalid", s.Valid, s.Invalid())
}

// ResolveFormat — auto определяется по расширению (.jsonl → JSONL, иначе JSON).
func ResolveFormat(path string, format InputFormat) InputFormat {
	if format != FormatAuto && format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — проверяет файл событий и пишет валидные события в out в каноническом виде.
func ValidateFile(
	ctx context.Context,
	validator ports.ReservationValidator,
	path string,
	format InputFormat,
	out io.Writer,
) (Summary, error) {
	file, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	return ValidateReader(ctx, validator, file, ResolveFormat(path, format), out)
}

// ValidateReader — то же для произвольного потока (stdin). FormatAuto здесь означает JSONL.
// Для одиночного JSON ошибка валидации возвращается и как error.
func ValidateReader(
	ctx context.Context,
	validator ports.ReservationValidator,
	in io.Reader,
	format InputFormat,
	out io.Writer,
) (Summary, error) {
	switch format {
	case FormatJSONL, FormatAuto, "":
		return ValidateJSONLStream(ctx, validator, in, out)

	case FormatJSON:
		raw, err := io.ReadAll(in)
		if err != nil {
			return Summary{}, fmt.Errorf("read input: %w", err)
		}
		event, err := ValidateEventFromJSON(ctx, validator, raw)
		if err != nil {
			return Summary{Rejected: []Rejection{{Line: 1, Err: err}}}, err
		}
		if err := writeCanonical(out, event); err != nil {
			return Summary{}, err
		}
		return Summary{Valid: 1}, nil

	default:
		return Summary{}, fmt.Errorf("unsupported format: %s", format)
	}
}
