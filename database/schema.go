package database

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion は PRAGMA user_version に記録するスキーマ版数です。
const schemaVersion = 1

// InitSchema はスキーマを適用します。user_version が既に schemaVersion 以上なら何もしません。
// 旧版で作られたDBファイルに対しても CREATE ... IF NOT EXISTS なので安全に再実行できます。
func InitSchema(db *sqlx.DB) error {
	var current int
	if err := db.Get(&current, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current >= schemaVersion {
		zap.S().Debugf("Schema is up to date (version %d).", current)
		return nil
	}

	zap.S().Infof("Applying database schema (version %d -> %d)...", current, schemaVersion)
	return WithTx(db, func(tx *sqlx.Tx) error {
		if _, err := tx.Exec(schemaSQL); err != nil {
			return fmt.Errorf("failed to execute schema: %w", err)
		}
		// PRAGMA はプレースホルダを受け付けない
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)); err != nil {
			return fmt.Errorf("failed to set schema version: %w", err)
		}
		return nil
	})
}
