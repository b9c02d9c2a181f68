package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"hainyu/config"
	"hainyu/database"
	"hainyu/logger"
	"hainyu/markimage"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default: ./hainyu_config.json if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	sugar, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer sugar.Sync()

	sugar.Info("Connecting to database...")
	dbConn, err := sqlx.Open("sqlite3", cfg.Database.DSN())
	if err != nil {
		sugar.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()
	sugar.Infof("Database connection successful (%s).", cfg.Database.Path)

	if err := database.InitSchema(dbConn); err != nil {
		sugar.Fatalf("Database initialization failed: %v", err)
	}
	sugar.Info("Database initialization complete.")

	if err := os.MkdirAll(cfg.Static.Dir, 0755); err != nil {
		sugar.Fatalf("Failed to create static directory %s: %v", cfg.Static.Dir, err)
	}

	mux := http.NewServeMux()
	prefix := "/" + strings.Trim(cfg.Static.URLPrefix, "/") + "/"
	mux.Handle("GET "+prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(cfg.Static.Dir))))

	SetupRoutes(mux, dbConn, markimage.NewStorage(cfg.Static), cfg)

	sugar.Infof("Starting server on http://localhost%s", cfg.Server.Addr)

	if cfg.Server.OpenBrowser {
		openBrowser(browserURL(cfg.Server.Addr))
	}

	if err := http.ListenAndServe(cfg.Server.Addr, withRequestLog(mux)); err != nil {
		zap.S().Fatalf("server start error: %v", err)
	}
}

func browserURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// browserCommand は OS ごとに URL を既定のブラウザで開くコマンドを返します。
func browserCommand(goos, url string) (string, []string) {
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}

func openBrowser(url string) {
	name, args := browserCommand(runtime.GOOS, url)
	if err := exec.Command(name, args...).Start(); err != nil {
		zap.S().Warnf("Failed to open browser (%s): %v", name, err)
		return
	}
	zap.S().Infof("Opened %s in the default browser.", url)
}
