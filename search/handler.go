package search

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

// SearchHandler はキーワードで搬入ヘッダーを検索します。q が空なら最新100件です。
func SearchHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keyword := strings.TrimSpace(r.URL.Query().Get("q"))

		headers, err := database.SearchHeaders(db, keyword)
		if err != nil {
			zap.S().Errorf("Error searching hainyu (q=%q): %v", keyword, err)
			respondJSONError(w, "failed to search", http.StatusInternalServerError)
			return
		}

		respondJSON(w, struct {
			Results []model.SearchResult `json:"results"`
		}{
			Results: mappers.ToSearchResults(headers),
		}, http.StatusOK)
	}
}
