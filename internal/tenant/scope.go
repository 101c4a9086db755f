// Package tenant holds the company-scoping rule every query must apply.
// A row is never visible outside the company that owns it.
package tenant

import "gorm.io/gorm"

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ScopeActive additionally hides soft-deactivated rows.
func ScopeActive(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ? AND is_active = true", companyID)
	}
}
