// Package types defines the Catalog and Cart interfaces, entity types,
// configuration and standard errors for the parlor storage system.
//
// The SQLite implementation lives in internal/sqlite; the interfaces here
// let the menu loop and the CLI stay independent of it.
package types
