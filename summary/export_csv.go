package summary

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"hainyu/database"
	"hainyu/model"
)

var csvHeader = []string{"搬入ID", "日付", "荷主", "仕向地", "品名", "明細数", "合計個数", "合計M3", "合計重量"}

func quoteAll(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// buildSummaryCSV は集計行をCSVにします。全項目をダブルクォートで囲み、改行は CRLF です。
func buildSummaryCSV(rows []model.SummaryRow) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(csvHeader, ",") + "\r\n")
	for _, r := range rows {
		date := ""
		if r.Date != nil {
			date = *r.Date
		}
		record := []string{
			quoteAll(r.HainyuID),
			quoteAll(date),
			quoteAll(r.Shipper),
			quoteAll(r.Dest),
			quoteAll(r.ItemName),
			quoteAll(fmt.Sprintf("%d", r.ItemCount)),
			quoteAll(strconv.FormatFloat(r.TotalQty, 'f', -1, 64)),
			quoteAll(fmt.Sprintf("%.3f", r.TotalM3)),
			quoteAll(fmt.Sprintf("%.2f", r.TotalWeight)),
		}
		sb.WriteString(strings.Join(record, ",") + "\r\n")
	}
	return sb.String()
}

// encodeCSV は encoding=sjis なら Shift_JIS に変換し (表現できない文字は置換)、
// それ以外は BOM 付き UTF-8 で返します。
func encodeCSV(content, enc string) ([]byte, string, error) {
	if strings.EqualFold(enc, "sjis") || strings.EqualFold(enc, "shift_jis") {
		encoder := encoding.ReplaceUnsupported(japanese.ShiftJIS.NewEncoder())
		encoded, _, err := transform.Bytes(encoder, []byte(content))
		if err != nil {
			return nil, "", err
		}
		return encoded, "text/csv; charset=Shift_JIS", nil
	}

	var buf bytes.Buffer
	buf.Write([]byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM
	buf.WriteString(content)
	return buf.Bytes(), "text/csv; charset=utf-8", nil
}

// ExportSummaryCSVHandler は一覧・集計と同じ条件の結果をCSVでダウンロードさせます。
func ExportSummaryCSVHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := parseFilters(r)

		rows, err := database.GetSummary(db, filters)
		if err != nil {
			zap.S().Errorf("Error getting summary for export (filters=%+v): %v", filters, err)
			respondJSONError(w, "failed to get summary for export", http.StatusInternalServerError)
			return
		}

		body, contentType, err := encodeCSV(buildSummaryCSV(rows), r.URL.Query().Get("encoding"))
		if err != nil {
			zap.S().Errorf("Error encoding summary CSV: %v", err)
			respondJSONError(w, "failed to encode CSV", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("搬入一覧_%s.csv", time.Now().Format("20060102"))
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(filename))
		w.Write(body)
		zap.S().Infof("Exported %d summary row(s) as CSV.", len(rows))
	}
}
