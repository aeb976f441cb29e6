package services

import "gorm.io/gorm"

// inTransaction wraps fn in a database transaction when a handle is present.
// A nil handle runs fn with a nil tx, which makes the repos fall back to
// whatever they were built on.
func inTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.Transaction(fn)
}
