package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/reserva/pkg/validate"
)

// CLI для проверки событий статуса перед повторной отправкой в топик:
// валидные события печатаются в stdout в каноническом виде, отклонённые строки — в stderr.
func main() {
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads JSONL from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	ctx := context.Background()
	validator := validate.NewReservationValidator()
	format := validate.InputFormat(*formatStr)

	var (
		summary validate.Summary
		err     error
	)
	if *inputPath == "" {
		summary, err = validate.ValidateReader(ctx, validator, os.Stdin, format, os.Stdout)
	} else {
		summary, err = validate.ValidateFile(ctx, validator, *inputPath, format, os.Stdout)
	}

	for _, r := range summary.Rejected {
		fmt.Fprintf(os.Stderr, "line %d: %v\n", r.Line, r.Err)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation done (%s)\n", summary)
	if summary.Invalid() > 0 {
		os.Exit(2)
	}
}
