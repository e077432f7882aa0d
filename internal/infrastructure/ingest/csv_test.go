package ingest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaseenahmed1407/AkasaAir/internal/infrastructure/ingest"
	"github.com/yaseenahmed1407/AkasaAir/pkg/apperror"
)

func TestDecodeCSVMapsCellsByHeader(t *testing.T) {
	in := "customer_id,customer_name,mobile_number,region\n" +
		"C001,Alice,111,North\n" +
		"C002,Bob,222,South\n"

	table, err := ingest.DecodeCSV("customers.csv", strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, []string{"customer_id", "customer_name", "mobile_number", "region"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0].Index)
	assert.Equal(t, "Alice", table.Rows[0].Values["customer_name"])
	assert.Equal(t, 2, table.Rows[1].Index)
	assert.Equal(t, "South", table.Rows[1].Values["region"])
	assert.True(t, table.HasColumn("region"))
	assert.False(t, table.HasColumn("Region"))
}

func TestDecodeCSVStripsByteOrderMark(t *testing.T) {
	in := "\ufeffcustomer_id,customer_name\nC001,Alice\n"

	table, err := ingest.DecodeCSV("customers.csv", strings.NewReader(in))

	require.NoError(t, err)
	assert.Equal(t, "customer_id", table.Columns[0])
}

func TestDecodeCSVRejectsRaggedRows(t *testing.T) {
	in := "a,b,c\n1,2\n"

	_, err := ingest.DecodeCSV("customers.csv", strings.NewReader(in))

	require.Error(t, err)
	assert.True(t, apperror.IsParseError(err))
}

func TestDecodeCSVRejectsEmptyInput(t *testing.T) {
	_, err := ingest.DecodeCSV("customers.csv", strings.NewReader(""))

	require.Error(t, err)
	assert.True(t, apperror.IsParseError(err))
}

func TestDecodeCSVHeaderOnlyYieldsNoRows(t *testing.T) {
	table, err := ingest.DecodeCSV("customers.csv", strings.NewReader("a,b\n"))

	require.NoError(t, err)
	assert.Empty(t, table.Rows)
}

func TestReadCustomersCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte("customer_id,region\nC001,North\n"), 0644))

	table, err := ingest.ReadCustomersCSV(path)

	require.NoError(t, err)
	assert.Equal(t, path, table.Source)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "North", table.Rows[0].Values["region"])
}

func TestReadCustomersCSVMissingFile(t *testing.T) {
	_, err := ingest.ReadCustomersCSV(filepath.Join(t.TempDir(), "nope.csv"))

	require.Error(t, err)
	assert.True(t, apperror.IsParseError(err))
}
