package hainyu

import (
	"encoding/json"
	"net/http"

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

// GetHainyuHandler は搬入ヘッダーと明細を返します。ヘッダーが無ければ 404 です。
func GetHainyuHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hainyuID := r.PathValue("id")

		header, err := database.GetHeader(db, hainyuID)
		if err != nil {
			zap.S().Errorf("Error getting hainyu header %s: %v", hainyuID, err)
			respondJSONError(w, "failed to get hainyu", http.StatusInternalServerError)
			return
		}
		if header == nil {
			respondJSONError(w, "not found", http.StatusNotFound)
			return
		}

		items, err := database.GetItems(db, hainyuID)
		if err != nil {
			zap.S().Errorf("Error getting hainyu items %s: %v", hainyuID, err)
			respondJSONError(w, "failed to get hainyu items", http.StatusInternalServerError)
			return
		}

		respondJSON(w, model.HainyuResponse{
			Header: mappers.ToHeaderView(*header),
			Items:  mappers.ToItemViews(items),
		}, http.StatusOK)
	}
}

// SaveHainyuHandler はヘッダーを upsert し、明細を全件入れ替えます。
func SaveHainyuHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hainyuID := r.PathValue("id")

		var payload model.SavePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			respondJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}

		header := mappers.MapInputToHeader(hainyuID, payload.Header)
		items := mappers.MapInputToItems(hainyuID, payload.Items)

		if err := database.SaveHainyu(db, header, items); err != nil {
			zap.S().Errorf("Error saving hainyu %s: %v", hainyuID, err)
			respondJSONError(w, "failed to save hainyu", http.StatusInternalServerError)
			return
		}

		zap.S().Infof("Saved hainyu %s with %d item(s).", hainyuID, len(items))
		respondJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
