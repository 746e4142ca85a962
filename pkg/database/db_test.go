package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDialectorRejectsUnknownDriver(t *testing.T) {
	_, err := buildDialector("oracle", "dsn")
	assert.ErrorContains(t, err, `unsupported DB_DRIVER "oracle"`)
}

func TestBuildDialectorKnownDrivers(t *testing.T) {
	for _, driver := range []string{"sqlite", "postgres", "mysql", "sqlserver"} {
		d, err := buildDialector(driver, "dsn")
		require.NoError(t, err, driver)
		assert.Equal(t, driver, d.Name())
	}
}

func TestOpenSQLiteInMemory(t *testing.T) {
	db, err := Open("sqlite", "file:db_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer Close(db)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestCloseNil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
