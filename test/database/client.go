// Package database provides a shared test-database harness for integration
// tests of the service layer.
package database

import (
	"testing"

	"github.com/deepcouncil/made/pkg/database"
	"github.com/deepcouncil/made/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The schema and connections are automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
