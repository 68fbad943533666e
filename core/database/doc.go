// Package database opens the GORM connection used to persist report run
// history.
//
// MySQL is the production driver; SQLite serves local runs and tests
// (Name ":memory:" gives a throwaway database).
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("History disabled, database unavailable", zap.Error(err))
//	}
package database
