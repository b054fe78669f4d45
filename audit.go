package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/korylprince/bdus-client/audit"
)

//newAuditStore returns the audit.Store selected by cfg: a SQL store if SQLDriver is set,
//a memory store if AuditSize is positive, or nil if auditing is disabled
func newAuditStore(cfg *Config) (audit.Store, error) {
	if cfg.SQLDriver != "" {
		db, err := sql.Open(cfg.SQLDriver, cfg.SQLDSN)
		if err != nil {
			return nil, fmt.Errorf("Could not open database: %w", err)
		}

		store := audit.NewSQLStore(db)
		if err = store.CreateTable(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	}

	if cfg.AuditSize > 0 {
		return audit.NewMemoryStore(cfg.AuditSize), nil
	}

	return nil, nil
}
