package migration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/pkg/database"
)

type widget struct {
	ID   uint
	Name string
}

type createWidgets struct{}

func (createWidgets) Up(db *gorm.DB) error   { return db.AutoMigrate(&widget{}) }
func (createWidgets) Down(db *gorm.DB) error { return db.Migrator().DropTable(&widget{}) }

func withRegistry(t *testing.T, regs ...registeredMigration) {
	t.Helper()
	registryMu.Lock()
	saved := registry
	registry = regs
	registryMu.Unlock()
	t.Cleanup(func() {
		registryMu.Lock()
		registry = saved
		registryMu.Unlock()
	})
}

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestRunThenRollback(t *testing.T) {
	withRegistry(t, registeredMigration{name: "20250101000000_create_widgets", m: createWidgets{}})
	db := openDB(t)
	var out bytes.Buffer
	runner := New(db).WithOutput(&out)

	require.NoError(t, runner.Run())
	assert.True(t, db.Migrator().HasTable(&widget{}))

	pending, err := runner.Pending()
	require.NoError(t, err)
	assert.Empty(t, pending)

	out.Reset()
	require.NoError(t, runner.Run())
	assert.Contains(t, out.String(), "Nothing to migrate.")

	require.NoError(t, runner.Rollback())
	assert.False(t, db.Migrator().HasTable(&widget{}))

	pending, err = runner.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"20250101000000_create_widgets"}, pending)
}

func TestRollbackWithNothingRun(t *testing.T) {
	withRegistry(t)
	var out bytes.Buffer
	require.NoError(t, New(openDB(t)).WithOutput(&out).Rollback())
	assert.Contains(t, out.String(), "Nothing to roll back.")
}

func TestStatus(t *testing.T) {
	withRegistry(t,
		registeredMigration{name: "20250101000000_create_widgets", m: createWidgets{}},
	)
	var out bytes.Buffer
	runner := New(openDB(t)).WithOutput(&out)

	require.NoError(t, runner.Status())
	assert.Contains(t, out.String(), "Pending")

	require.NoError(t, runner.Run())
	out.Reset()
	require.NoError(t, runner.Status())
	assert.Regexp(t, `20250101000000_create_widgets\s+Ran\s+1`, out.String())
}
