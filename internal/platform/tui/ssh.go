package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/pixelclock/internal/config"
	"github.com/vovakirdan/pixelclock/internal/rtc"
	"github.com/vovakirdan/pixelclock/internal/storage"
)

// SSHConfig holds the SSH simulator server settings.
type SSHConfig struct {
	// Address is the host:port to listen on.
	Address string

	// HostKeyPath locates the host key; empty auto-generates one under
	// ~/.pixelclock/host_key.
	HostKeyPath string

	// DBPath is the shared scores database. Every session writes to the
	// same store, so best scores are global across visitors.
	DBPath string

	// IdleTimeout closes idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHConfig returns sensible server defaults.
func DefaultSSHConfig() SSHConfig {
	return SSHConfig{
		Address:     ":23235",
		DBPath:      "~/.pixelclock/clock.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves one simulated clock per SSH session.
type SSHServer struct {
	cfg    SSHConfig
	appCfg config.Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates the Wish server.
func NewSSHServer(cfg SSHConfig, appCfg config.Config) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pixelclock-ssh",
	})

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open scores database: %w", err)
	}

	srv := &SSHServer{
		cfg:    cfg,
		appCfg: appCfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			store.Close()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".pixelclock", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler builds one simulator session. Each session gets its own
// device and clock; only the score store is shared.
func (s *SSHServer) teaHandler(session ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := session.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", session.User())
		return nil, nil
	}

	model := NewModel(Options{
		Config: s.appCfg,
		Store:  s.store,
		Clock:  rtc.NewSystem(nil),
		Logger: s.logger.With("user", session.User()),
		Seed:   time.Now().UnixNano(),
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(session ssh.Session) {
		s.logger.Info("session started",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
		next(session)
		s.logger.Info("session ended",
			"user", session.User(),
			"remote", session.RemoteAddr().String(),
		)
	}
}

// ListenAndServe runs the server until interrupted.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.cfg.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops the server and closes the shared store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}
