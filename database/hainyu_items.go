package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"hainyu/model"
)

const itemColumns = `id, hainyu_id, package_type, no_from, no_to, qty, L, W, H, weight_kg, m3`

// GetItems は搬入IDに紐づく明細を登録順 (id 昇順) で返します。
func GetItems(dbtx DBTX, hainyuID string) ([]model.Item, error) {
	items := []model.Item{}
	q := `SELECT ` + itemColumns + ` FROM hainyu_items WHERE hainyu_id = ? ORDER BY id`
	if err := dbtx.Select(&items, q, hainyuID); err != nil {
		return nil, fmt.Errorf("GetItems (ID: %s) failed: %w", hainyuID, err)
	}
	return items, nil
}

// ReplaceItemsInTx は搬入IDの明細を全て削除し、items を渡された順に登録し直します。
func ReplaceItemsInTx(tx *sqlx.Tx, hainyuID string, items []model.Item) error {
	if _, err := tx.Exec(`DELETE FROM hainyu_items WHERE hainyu_id = ?`, hainyuID); err != nil {
		return fmt.Errorf("failed to delete items for %s: %w", hainyuID, err)
	}
	if len(items) == 0 {
		return nil
	}

	const q = `
		INSERT INTO hainyu_items (
			hainyu_id, package_type, no_from, no_to, qty,
			L, W, H, weight_kg, m3
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := tx.Preparex(q)
	if err != nil {
		return fmt.Errorf("failed to prepare item insert statement: %w", err)
	}
	defer stmt.Close()

	for i, it := range items {
		_, err := stmt.Exec(
			hainyuID, it.PackageType, it.NoFrom, it.NoTo, it.Qty,
			it.L, it.W, it.H, it.WeightKg, it.M3,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item #%d for %s: %w", i+1, hainyuID, err)
		}
	}
	return nil
}

// SaveHainyu はヘッダーの upsert と明細の入れ替えを1トランザクションで行います。
func SaveHainyu(db *sqlx.DB, header model.Header, items []model.Item) error {
	return WithTx(db, func(tx *sqlx.Tx) error {
		if err := UpsertHeaderInTx(tx, header); err != nil {
			return err
		}
		return ReplaceItemsInTx(tx, header.HainyuID, items)
	})
}
