package testutil

import (
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

// ErrInjected is returned by inserts forced to fail with FailNthInsert.
var ErrInjected = errors.New("injected insert failure")

// FailNthInsert makes the n-th INSERT (1-based) into table fail with
// ErrInjected. Earlier and later inserts are untouched.
func FailNthInsert(t *testing.T, db *gorm.DB, table string, n int) {
	t.Helper()

	calls := 0
	name := fmt.Sprintf("testutil:fail_insert_%s_%d", table, n)
	err := db.Callback().Create().Before("gorm:create").Register(name, func(tx *gorm.DB) {
		if tx.Statement.Table != table {
			return
		}
		calls++
		if calls == n {
			_ = tx.AddError(ErrInjected)
		}
	})
	if err != nil {
		t.Fatalf("failed to register failure callback: %v", err)
	}
}
