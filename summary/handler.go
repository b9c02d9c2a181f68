package summary

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"hainyu/database"
	"hainyu/mappers"
	"hainyu/model"
)

func respondJSON(w http.ResponseWriter, v interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorf("Error encoding JSON response: %v", err)
	}
}

func respondJSONError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, map[string]string{"error": message}, statusCode)
}

func parseFilters(r *http.Request) model.SummaryFilters {
	q := r.URL.Query()
	return model.SummaryFilters{
		DateFrom: strings.TrimSpace(q.Get("dateFrom")),
		DateTo:   strings.TrimSpace(q.Get("dateTo")),
		Shipper:  strings.TrimSpace(q.Get("shipper")),
		Dest:     strings.TrimSpace(q.Get("dest")),
	}
}

// SummaryHandler は日付・荷主・仕向地で絞り込んだ一覧と、明細数・合計個数・合計M3・合計重量を返します。
// urlPrefix は代表画像の公開URLを組み立てるための静的ファイルのURLプレフィックスです。
func SummaryHandler(db *sqlx.DB, urlPrefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filters := parseFilters(r)

		rows, err := database.GetSummary(db, filters)
		if err != nil {
			zap.S().Errorf("Error getting summary (filters=%+v): %v", filters, err)
			respondJSONError(w, "failed to get summary", http.StatusInternalServerError)
			return
		}

		respondJSON(w, struct {
			Results []model.SummaryResult `json:"results"`
		}{
			Results: mappers.ToSummaryResults(rows, urlPrefix),
		}, http.StatusOK)
	}
}
