package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/inventory-api/internal/platform/db/dbtest"
	"github.com/odyssey-erp/inventory-api/internal/shared"
)

func TestRepositoryInventoryReport(t *testing.T) {
	conn := dbtest.New(dbtest.Result{Rows: [][]any{
		{int64(1), "Acme", int64(10), int32(5), int32(2), int32(3)},
	}})
	repo := NewRepository(conn)

	rows, err := repo.InventoryReport(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Row{acmeRow}, rows)
	require.Contains(t, conn.Calls[0].SQL, "JOIN products p ON s.id = p.supplier_id")
	require.Contains(t, conn.Calls[0].SQL, "JOIN orders o ON p.id = o.product_id")
}

func TestRepositoryInventoryReportFailure(t *testing.T) {
	conn := dbtest.New(dbtest.Result{Err: dbtest.PgError("57014", "")})
	repo := NewRepository(conn)

	_, err := repo.InventoryReport(context.Background())
	var se *shared.StorageError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "57014", se.Code)
}
