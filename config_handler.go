package main

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"hainyu/config"
)

// clientConfig は画面側が必要とする設定だけを公開します。
type clientConfig struct {
	StaticURLPrefix string `json:"staticUrlPrefix"`
	MaxUploadMB     int64  `json:"maxUploadMb"`
}

// GetConfigHandler は現在の設定のうち画面向けの値を返します。
// 設定の変更は設定ファイルか環境変数で行い、APIからは保存しません。
func GetConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg := config.GetConfig()
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(clientConfig{
			StaticURLPrefix: cfg.Static.URLPrefix,
			MaxUploadMB:     cfg.Server.MaxUploadMB,
		}); err != nil {
			zap.S().Errorf("Error encoding config response: %v", err)
		}
	}
}
