package main

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"hainyu/config"
	"hainyu/hainyu"
	"hainyu/markimage"
	"hainyu/search"
	"hainyu/summary"
)

func SetupRoutes(mux *http.ServeMux, dbConn *sqlx.DB, store *markimage.Storage, cfg config.Config) {
	mux.HandleFunc("GET /api/hainyu/{id}", hainyu.GetHainyuHandler(dbConn))
	mux.HandleFunc("POST /api/hainyu/{id}", hainyu.SaveHainyuHandler(dbConn))

	mux.HandleFunc("POST /api/hainyu/{id}/mark_image",
		markimage.UploadMarkImageHandler(dbConn, store, cfg.Server.MaxUploadMB<<20))
	mux.HandleFunc("GET /api/hainyu/{id}/mark_images", markimage.ListMarkImagesHandler(dbConn, store))

	mux.HandleFunc("GET /api/search", search.SearchHandler(dbConn))

	mux.HandleFunc("GET /api/summary", summary.SummaryHandler(dbConn, cfg.Static.URLPrefix))
	mux.HandleFunc("GET /api/summary/export_csv", summary.ExportSummaryCSVHandler(dbConn))

	mux.HandleFunc("GET /api/config", GetConfigHandler())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// withRequestLog はリクエストごとにメソッド・パス・ステータス・処理時間を1行ログに出します。
func withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		zap.S().Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
