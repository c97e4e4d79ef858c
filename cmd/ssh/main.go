package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"

	"github.com/tomz197/gunrunner/internal/asset"
	"github.com/tomz197/gunrunner/internal/config"
	"github.com/tomz197/gunrunner/internal/draw"
	applog "github.com/tomz197/gunrunner/internal/logging"
	"github.com/tomz197/gunrunner/internal/loop/client"
	"github.com/tomz197/gunrunner/internal/loop/server"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
)

func main() {
	logger := applog.New(os.Stderr, config.GetEnv("GUNRUNNER_LOG_LEVEL", "info"))

	host := config.GetEnv("SSH_HOST", defaultHost)
	port := config.GetEnv("SSH_PORT", defaultPort)
	hostKeyPath := config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath)
	logger.Info("ssh config", "host", host, "port", port, "hostKeyPath", hostKeyPath)

	// Assets are loaded once and shared read-only by every session.
	catalog := asset.Unavailable()
	if dir := config.GetEnv("GUNRUNNER_ASSETS", ""); dir != "" {
		catalog = asset.NewCatalog()
		if err := asset.Load(context.Background(), catalog, asset.FileLoader{FS: os.DirFS(dir)}, logger); err != nil {
			logger.Fatal("load assets", "err", err)
		}
	}

	gameServer := server.NewServer()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(host, port)),
		wish.WithMiddleware(
			gameMiddleware(ctx, gameServer, catalog, logger),
			activeterm.Middleware(),
			logging.StructuredMiddlewareWithLogger(logger, log.InfoLevel),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}

	if hostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(hostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", net.JoinHostPort(host, port))
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "players", gameServer.Count())

	// Notify players and wait for them to disconnect
	gameServer.Shutdown(15 * time.Second)
	cancel()
	st := gameServer.Stats()
	logger.Info("game server stopped",
		"connected", st.Connected,
		"victories", st.Victories,
		"defeats", st.Defeats,
		"bestScore", st.BestScore,
		"bestPlayer", st.BestPlayer,
	)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs an independent game for every SSH session.
func gameMiddleware(ctx context.Context, gs *server.Server, catalog *asset.Catalog, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			logger.Info("new game session",
				"user", sess.User(), "terminal", pty.Term,
				"width", pty.Window.Width, "height", pty.Window.Height)

			// Create a terminal size tracker that updates on window changes
			sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
			go func() {
				for win := range winCh {
					sizeTracker.update(win.Width, win.Height)
				}
			}()

			c := client.NewClient(sess, sess, client.ClientOptions{
				TermSizeFunc: sizeTracker.getSize,
				Username:     sess.User(),
				Server:       gs,
				Assets:       catalog,
				Logger:       logger,
			})

			// End the game when either the server or the connection goes away.
			sessCtx, cancel := context.WithCancel(ctx)
			go func() {
				select {
				case <-sess.Context().Done():
					cancel()
				case <-sessCtx.Done():
				}
			}()
			if err := c.Run(sessCtx); err != nil {
				logger.Warn("game error", "user", sess.User(), "err", err)
			}
			cancel()

			logger.Info("session ended", "user", sess.User(), "outcome", c.Session().Outcome())
			next(sess)
		}
	}
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
