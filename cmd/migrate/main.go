package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"

	"github.com/murkotick/menswear-storefront/internal/config"
	"github.com/murkotick/menswear-storefront/internal/pkg/kvstore"
)

// migrate prepares the kv_entries table for the SQL-backed storage drivers.
// Redis, Mongo, file and memory need no schema.
//
// Usage (Spanner emulator):
//
//	SPANNER_EMULATOR_HOST=localhost:9010 STORAGE_DRIVER=spanner go run ./cmd/migrate
//
// Usage (Postgres):
//
//	STORAGE_DRIVER=postgres POSTGRES_URL=postgres://... go run ./cmd/migrate
func main() {
	ddlPath := flag.String("ddl", "migrations/001_initial_schema.sql", "Spanner DDL file")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cfg.Storage.Driver {
	case kvstore.DriverSpanner:
		if err := migrateSpanner(ctx, cfg.Storage.SpannerDatabase, *ddlPath); err != nil {
			log.Fatalf("spanner: %v", err)
		}
	case kvstore.DriverPostgres:
		pg, err := kvstore.OpenPostgres(ctx, cfg.Storage.PostgresDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer pg.Close()
		if err := pg.InitializeTables(ctx); err != nil {
			log.Fatalf("postgres: %v", err)
		}
		fmt.Println("kv_entries ready on postgres")
	default:
		fmt.Printf("driver %q needs no migration\n", cfg.Storage.Driver)
	}
}

func migrateSpanner(ctx context.Context, db, ddlPath string) error {
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		return fmt.Errorf("read DDL: %w", err)
	}
	if len(stmts) == 0 {
		return fmt.Errorf("no DDL statements found in %s", ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("UpdateDatabaseDdl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("UpdateDatabaseDdl wait: %w", err)
	}

	fmt.Printf("applied %d DDL statements to %s\n", len(stmts), db)
	return nil
}

// readDDLStatements splits a DDL file on semicolons. Lines starting with
// "--" are dropped first.
func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(string(b), "\r\n", "\n"), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var out []string
	for _, p := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out, nil
}
