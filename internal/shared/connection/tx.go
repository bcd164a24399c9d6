package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements run on tx.
// Repositories use it to implement WithTx for transactions opened on the shared *sql.DB.
// db itself keeps running on its pool.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}
	// A Context forces Session to clone the statement, so ConnPool is set on the copy only.
	bound := db.Session(&gorm.Session{NewDB: true, SkipDefaultTransaction: true, Context: ctx})
	bound.Statement.ConnPool = tx
	return bound
}
