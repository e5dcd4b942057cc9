// Comando de migraciones: aplica (up) o revierte (down) el esquema usando
// golang-migrate sobre los archivos de ./migrations.
//
//	go run ./cmd/migrate up
//	go run ./cmd/migrate down
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/jhoicas/supermercado-api/pkg/config"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}

	migrator, err := migrate.New("file://migrations", cfg.DB.ConnectionString())
	if err != nil {
		fmt.Fprintln(os.Stderr, "iniciar migrador:", err)
		os.Exit(1)
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	switch direction {
	case "up":
		err = migrator.Up()
	case "down":
		err = migrator.Steps(-1)
	default:
		fmt.Fprintf(os.Stderr, "dirección desconocida %q (use up o down)\n", direction)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintln(os.Stderr, "migración:", err)
		os.Exit(1)
	}
	fmt.Println("migraciones al día")
}
