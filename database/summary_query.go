package database

import (
	"fmt"
	"strings"

	"hainyu/model"
)

// SummaryLimit は一覧・集計で返す最大件数です。
const SummaryLimit = 500

// GetSummary はヘッダーごとに明細数・合計個数・合計M3・合計重量を集計して返します。
// 代表画像 (thumb_path) は搬入IDごとの image_path の辞書順最小値です。
// 明細の無いヘッダーも LEFT JOIN により 0 件・合計 0 として含まれます。
func GetSummary(dbtx DBTX, f model.SummaryFilters) ([]model.SummaryRow, error) {
	var fb filterBuilder
	if f.DateFrom != "" {
		fb.add("h.date >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		fb.add("h.date <= ?", f.DateTo)
	}
	if f.Shipper != "" {
		fb.add("h.shipper LIKE ?", "%"+f.Shipper+"%")
	}
	if f.Dest != "" {
		fb.add("h.dest LIKE ?", "%"+f.Dest+"%")
	}

	var query strings.Builder
	query.WriteString(`
		SELECT
			h.hainyu_id,
			h.date,
			COALESCE(h.shipper, '')               AS shipper,
			COALESCE(h.dest, '')                  AS dest,
			COALESCE(h.item_name, '')             AS item_name,
			COUNT(i.id)                           AS item_count,
			COALESCE(SUM(i.qty), 0)               AS total_qty,
			COALESCE(SUM(i.m3), 0)                AS total_m3,
			COALESCE(SUM(i.qty * i.weight_kg), 0) AS total_weight,
			t.thumb_path
		FROM hainyu_headers h
		LEFT JOIN hainyu_items i
		  ON i.hainyu_id = h.hainyu_id
		LEFT JOIN (
			SELECT hainyu_id, MIN(image_path) AS thumb_path
			FROM hainyu_mark_images
			GROUP BY hainyu_id
		) t
		  ON t.hainyu_id = h.hainyu_id`)
	query.WriteString(fb.where())
	query.WriteString(`
		GROUP BY
			h.hainyu_id,
			h.date,
			h.shipper,
			h.dest,
			h.item_name,
			t.thumb_path
		ORDER BY
			h.date DESC,
			h.hainyu_id ASC
		LIMIT ?`)
	args := append(fb.args, SummaryLimit)

	rows := []model.SummaryRow{}
	if err := dbtx.Select(&rows, query.String(), args...); err != nil {
		return nil, fmt.Errorf("GetSummary failed: %w", err)
	}
	return rows, nil
}
