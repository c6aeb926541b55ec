package repository

import (
	"gorm.io/gorm"
)

// GormTxManager implements TxManager over a gorm connection
type GormTxManager struct {
	db *gorm.DB
}

// NewTxManager creates a new transaction manager
func NewTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

// Transaction runs fn inside a database transaction. The transaction commits
// when fn returns nil and rolls back on error or panic.
func (m *GormTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	return m.db.Transaction(fn)
}
