// Command web serves the browser build of the game: the landing page plus
// gunrunner.wasm and wasm_exec.js from WEB_ROOT.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tomz197/gunrunner/internal/config"
	"github.com/tomz197/gunrunner/internal/logging"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
	defaultRoot = "web"
)

//go:embed index.html
var htmlPage string

func main() {
	logger := logging.New(os.Stderr, config.GetEnv("GUNRUNNER_LOG_LEVEL", "info"))

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	root := config.GetEnv("WEB_ROOT", defaultRoot)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")

	for _, name := range []string{"gunrunner.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			logger.Warn("browser build file missing", "file", name, "root", root)
		}
	}

	page := strings.ReplaceAll(htmlPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	})
	files := http.FileServer(http.Dir(root))
	mux.Handle("GET /", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		files.ServeHTTP(w, r)
	}))

	addr := net.JoinHostPort(host, port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting web server", "url", "http://"+addr, "root", root)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", "err", err)
	}
}
