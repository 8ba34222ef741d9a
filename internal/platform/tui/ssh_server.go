package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-bounce/internal/core"
	"github.com/vovakirdan/tui-bounce/internal/sim"
	"github.com/vovakirdan/tui-bounce/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.bounce/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database. Empty disables history.
	DBPath string

	// MaxSession closes connections after this long. Zero means no limit.
	MaxSession time.Duration

	// MaxFrames ends each session after this many frames. Zero means
	// until the client disconnects.
	MaxFrames int

	// Sim is the simulation every session starts with.
	Sim core.Config

	// Preset is recorded with each run.
	Preset string
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:    ":23235",
		DBPath:     "~/.bounce/history.db",
		MaxSession: 30 * time.Minute,
		Sim:        core.DefaultConfig(),
	}
}

// SSHServer streams the animation to every SSH session with a PTY.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if err := cfg.Sim.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "bounce-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	if cfg.DBPath != "" {
		store, err := storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			// Continue without storage
		} else {
			srv.store = store
		}
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			srv.closeStore()
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".bounce", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			srv.bounceMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.MaxSession > 0 {
		opts = append(opts, wish.WithMaxTimeout(cfg.MaxSession))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// bounceMiddleware runs the animation for the lifetime of the session.
func (s *SSHServer) bounceMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, _, ok := sess.Pty()
		if !ok {
			s.logger.Warn("no PTY requested", "user", sess.User())
			wish.Fatalln(sess, "bounce: a terminal is required, connect with ssh -t")
			return
		}

		simulation, err := sim.New(s.config.Sim)
		if err != nil {
			s.logger.Error("cannot create simulation", "error", err)
			wish.Fatalln(sess, "bounce: internal error")
			return
		}

		if err := checkFit(pty.Window.Width, pty.Window.Height, s.config.Sim.Width, s.config.Sim.Rows()); err != nil {
			s.logger.Debug("client terminal is small", "user", sess.User(), "error", err)
		}

		renderer := lipgloss.NewRenderer(sess)
		if strings.Contains(pty.Term, "color") {
			renderer.SetColorProfile(termenv.ANSI256)
		}

		driver := NewDriver(sess, simulation, Options{
			MaxFrames: s.config.MaxFrames,
			Logger:    s.logger.With("user", sess.User()),
			Renderer:  renderer,
		})
		res, runErr := driver.Run(sess.Context())
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			s.logger.Debug("session stream ended", "user", sess.User(), "error", runErr)
		}

		s.saveRun(sess.User(), res)
		next(sess)
	}
}

// saveRun records a finished session, best effort.
func (s *SSHServer) saveRun(user string, res Result) {
	if s.store == nil || res.Frames == 0 {
		return
	}
	_, err := s.store.SaveRun(storage.Run{
		Source:   storage.SourceSSH,
		User:     user,
		Preset:   s.config.Preset,
		Frames:   res.Frames,
		Bounces:  res.Stats.Bounces,
		Respawns: res.Stats.Respawns,
		Duration: res.Duration,
	})
	if err != nil {
		s.logger.Warn("could not save run", "user", user, "error", err)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		return fmt.Errorf("ssh server: %w", err)
	case <-done:
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}
