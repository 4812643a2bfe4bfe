package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	"eurocompare/internal/platform/storage/gen/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. It skips the test when DATABASE_URL is
// not provided.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("integration test skipped: provide database URL via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// CleanupData removes all observations and alerts.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.PriceAlert.DELETE().WHERE(table.PriceAlert.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete alerts data", err)
	}

	_, err = table.PriceObservation.DELETE().WHERE(table.PriceObservation.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete observations data", err)
	}
}
