// Package migrations contains all database migration files.
// Each migration file uses init() to call migration.Register().
// cmd/storefront imports this package for its side effects.
package migrations
