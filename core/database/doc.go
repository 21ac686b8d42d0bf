// Package database handles database connections and schema inspection.
//
// It wraps GORM to open the local movie store. SQLite is the default embedded
// driver; MySQL and Postgres can be selected through configuration when the store
// is shared.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table. The integrity
// feature compares them against the GORM model of the movies table.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "movies")
package database
