package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/reserva/internal/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func compact(s string) string {
	var b bytes.Buffer
	_ = json.Compact(&b, []byte(s))
	return b.String()
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		format InputFormat
		want   InputFormat
	}{
		{"events.jsonl", FormatAuto, FormatJSONL},
		{"EVENTS.JSONL", "", FormatJSONL},
		{"event.json", FormatAuto, FormatJSON},
		{"dump.txt", FormatAuto, FormatJSON},
		{"dump.txt", FormatJSONL, FormatJSONL},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ResolveFormat(tt.path, tt.format), tt.path)
	}
}

func TestValidateFile(t *testing.T) {
	ctx := context.Background()
	validator := NewReservationValidator()

	mixed := compact(minimalValidEventJSON(1, 1, "CONFIRMADA")) + "\n" +
		compact(minimalValidEventJSON(2, 0, "CONFIRMADA")) + "\n" + // нет client_id
		compact(minimalValidEventJSON(3, 1, "cancelled")) + "\n"

	tests := []struct {
		name         string
		file         string
		content      string
		format       InputFormat
		wantErr      bool
		wantValid    int
		wantRejected []int // номера отклонённых строк
	}{
		{name: "single json", file: "one.json", content: minimalValidEventJSON(1, 1, "CONFIRMADA"), format: FormatAuto, wantValid: 1},
		{name: "jsonl mixed", file: "list.jsonl", content: mixed, format: FormatAuto, wantValid: 2, wantRejected: []int{2}},
		{name: "explicit format ignores ext", file: "data.txt", content: mixed, format: FormatJSONL, wantValid: 2, wantRejected: []int{2}},
		{
			name:    "single json unknown field",
			file:    "bad.json",
			content: `{"unknown":1,` + minimalValidEventJSON(1, 1, "CONFIRMADA")[1:],
			format:  FormatJSON, wantErr: true, wantRejected: []int{1},
		},
		{name: "unsupported format", file: "one.json", content: "{}", format: InputFormat("yaml"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			summary, err := ValidateFile(ctx, validator, writeTemp(t, tt.file, tt.content), tt.format, &out)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.wantValid, summary.Valid)

			lines := make([]int, 0, len(summary.Rejected))
			for _, r := range summary.Rejected {
				require.True(t, errors.Is(r.Err, domain.ErrInvalidEvent), r.Err)
				lines = append(lines, r.Line)
			}
			if len(tt.wantRejected) == 0 {
				require.Empty(t, lines)
			} else {
				require.Equal(t, tt.wantRejected, lines)
			}

			written := strings.Fields(out.String())
			require.Len(t, written, tt.wantValid)
		})
	}
}

func TestValidateFile_OpenError(t *testing.T) {
	_, err := ValidateFile(context.Background(), NewReservationValidator(), "no-such-file.json", FormatAuto, &bytes.Buffer{})
	require.ErrorContains(t, err, "open file")
}

func TestValidateReader_AutoMeansJSONL(t *testing.T) {
	in := strings.NewReader(compact(minimalValidEventJSON(5, 2, "SOLICITADA")) + "\n")

	var out bytes.Buffer
	summary, err := ValidateReader(context.Background(), NewReservationValidator(), in, FormatAuto, &out)
	require.NoError(t, err)
	require.Equal(t, "1 valid / 0 invalid", summary.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestValidateReader_WriteError(t *testing.T) {
	in := strings.NewReader(compact(minimalValidEventJSON(5, 2, "CONFIRMADA")))

	_, err := ValidateReader(context.Background(), NewReservationValidator(), in, FormatJSONL, failingWriter{})
	require.ErrorContains(t, err, "disk full")
}
