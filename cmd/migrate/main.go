package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/Gunvolt24/reserva/config"
	"github.com/Gunvolt24/reserva/migrations"
)

// Миграции схемы резервов: migrate [-dsn ...] up|down|status|version.
func main() {
	_ = godotenv.Load(".env.local")

	dsnFlag := flag.String("dsn", "", "postgres DSN (default: RESERVA_POSTGRES_DSN)")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	dsn := *dsnFlag
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			fail("config: %v", err)
		}
		dsn = cfg.Postgres.DSN
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		fail("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		fail("goose dialect: %v", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	case "version":
		err = goose.Version(db, ".")
	default:
		fail("unknown command %q (want up|down|status|version)", command)
	}
	if err != nil {
		fail("goose %s: %v", command, err)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
