package tui

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
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

	"github.com/vovakirdan/tilemerge/internal/engine"
)

const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the "serve" command's SSH listener.
type SSHServerConfig struct {
	Address string // listen address, e.g. ":23234"

	// HostKeyPath defaults to ~/.tilemerge/host_key; wish generates the key
	// on first start when the file is missing.
	HostKeyPath string

	// IdleTimeout disconnects a player who has not sent input for this long.
	IdleTimeout time.Duration

	// Game is the board every session starts with.
	Game engine.Config

	// CellWidth is the column width of one rendered cell.
	CellWidth int
}

// SSHServer serves the tilemerge TUI over SSH, one game per session.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	logger *log.Logger
}

// NewSSHServer validates cfg and prepares the listener without starting it.
// With a nil logger, session events go to stderr.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tilemerge-ssh",
		})
	}

	if err := cfg.Game.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("resolve host key path: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".tilemerge", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler starts a clock-seeded game for the session. Sessions without a
// PTY cannot show the board and are refused.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("refusing session without a PTY", "user", sshSession.User())
		return nil, nil
	}

	model, err := s.newSessionModel(time.Now().UnixNano())
	if err != nil {
		s.logger.Error("new game failed", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSessionModel gives each session a private RNG, so games never share state.
func (s *SSHServer) newSessionModel(seed int64) (Model, error) {
	game, err := engine.New(s.config.Game, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Model{}, err
	}
	return NewModel(game, s.config.CellWidth), nil
}

// loggingMiddleware records who connected and when they left.
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

// ListenAndServe accepts players until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("serving tilemerge", "address", s.config.Address)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("listener failed", "error", err)
		}
	}()

	sig := <-stop
	s.logger.Info("stopping", "signal", sig)
	return s.Shutdown()
}

// Shutdown closes the listener and waits up to shutdownGrace for open
// sessions to finish.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr is the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
