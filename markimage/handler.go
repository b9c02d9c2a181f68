package markimage

import (
	"encoding/json"
	"net/http"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"hainyu/database"
	"hainyu/mappers"
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

// UploadMarkImageHandler は荷印画像を1枚受け取り、保存して記録します。
// 過去の画像は上書き・削除しません。
func UploadMarkImageHandler(db *sqlx.DB, store *Storage, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hainyuID := r.PathValue("id")

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			respondJSONError(w, "invalid upload: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, fileHeader, err := r.FormFile("file")
		if err != nil {
			respondJSONError(w, "file is required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		img, err := store.Save(hainyuID, fileHeader.Filename, file)
		if err != nil {
			zap.S().Errorf("Failed to store mark image for %s: %v", hainyuID, err)
			respondJSONError(w, "failed to save image", http.StatusInternalServerError)
			return
		}

		if _, err := database.InsertMarkImage(db, img); err != nil {
			zap.S().Errorf("Failed to record mark image %s: %v", img.ImagePath, err)
			respondJSONError(w, "failed to record image", http.StatusInternalServerError)
			return
		}

		zap.S().Infof("Stored mark image %s for hainyu %s.", img.ImagePath, hainyuID)
		respondJSON(w, map[string]interface{}{
			"ok":       true,
			"imageUrl": store.URL(img.ImagePath),
		}, http.StatusOK)
	}
}

// ListMarkImagesHandler は搬入IDの荷印画像を新しい順に返します。
func ListMarkImagesHandler(db *sqlx.DB, store *Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hainyuID := r.PathValue("id")

		images, err := database.ListMarkImages(db, hainyuID)
		if err != nil {
			zap.S().Errorf("Error listing mark images for %s: %v", hainyuID, err)
			respondJSONError(w, "failed to list images", http.StatusInternalServerError)
			return
		}

		respondJSON(w, mappers.ToMarkImageViews(images, store.URLPrefix), http.StatusOK)
	}
}
