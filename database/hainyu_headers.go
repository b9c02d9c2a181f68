package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"hainyu/model"
)

// NULL の文字列項目は空文字として読む
const headerColumns = `hainyu_id, date,
	COALESCE(shipper, '') AS shipper,
	COALESCE(dest, '') AS dest,
	COALESCE(item_name, '') AS item_name,
	COALESCE(mark, '') AS mark`

// SearchLimit はキーワード検索で返す最大件数です。
const SearchLimit = 100

// GetHeader は搬入IDでヘッダーを1件取得します。存在しない場合は nil, nil を返します。
func GetHeader(dbtx DBTX, hainyuID string) (*model.Header, error) {
	var h model.Header
	q := `SELECT ` + headerColumns + ` FROM hainyu_headers WHERE hainyu_id = ?`
	if err := dbtx.Get(&h, q, hainyuID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetHeader (ID: %s) failed: %w", hainyuID, err)
	}
	return &h, nil
}

// UpsertHeaderInTx はヘッダーを登録します。既存IDの場合は全項目を上書きします。
func UpsertHeaderInTx(tx *sqlx.Tx, h model.Header) error {
	const q = `
		INSERT INTO hainyu_headers (hainyu_id, date, shipper, dest, item_name, mark)
		VALUES (:hainyu_id, :date, :shipper, :dest, :item_name, :mark)
		ON CONFLICT(hainyu_id) DO UPDATE SET
			date      = excluded.date,
			shipper   = excluded.shipper,
			dest      = excluded.dest,
			item_name = excluded.item_name,
			mark      = excluded.mark
	`
	if _, err := tx.NamedExec(q, h); err != nil {
		return fmt.Errorf("UpsertHeaderInTx (ID: %s) failed: %w", h.HainyuID, err)
	}
	return nil
}

// SearchHeaders は搬入ID・荷主・仕向地・品名・荷印のいずれかに keyword を含むヘッダーを返します。
// keyword が空なら条件なしで最新 SearchLimit 件を返します。
func SearchHeaders(dbtx DBTX, keyword string) ([]model.Header, error) {
	var fb filterBuilder
	if keyword != "" {
		like := "%" + keyword + "%"
		cols := []string{"hainyu_id", "shipper", "dest", "item_name", "mark"}
		conds := make([]string, len(cols))
		args := make([]interface{}, len(cols))
		for i, c := range cols {
			conds[i] = c + " LIKE ?"
			args[i] = like
		}
		fb.add("("+strings.Join(conds, " OR ")+")", args...)
	}

	var query strings.Builder
	query.WriteString(`SELECT ` + headerColumns + ` FROM hainyu_headers`)
	query.WriteString(fb.where())
	query.WriteString(` ORDER BY date DESC, hainyu_id ASC LIMIT ?`)
	args := append(fb.args, SearchLimit)

	headers := []model.Header{}
	if err := dbtx.Select(&headers, query.String(), args...); err != nil {
		return nil, fmt.Errorf("SearchHeaders (keyword: %q) failed: %w", keyword, err)
	}
	return headers, nil
}
