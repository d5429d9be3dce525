package app

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hemttools/hemttctl/internal/command"
	"github.com/hemttools/hemttctl/internal/runner"
	"github.com/hemttools/hemttctl/internal/shared/id"
	"github.com/hemttools/hemttctl/internal/store"
)

// ErrAlreadyRunning is returned when a run is requested while another is
// still active.
var ErrAlreadyRunning = errors.New("a command is already running")

// ErrAborted is returned when the user declines to continue after a
// validation prompt.
var ErrAborted = errors.New("aborted by user")

// Manager drives runs of the wrapped tool. It holds all mutable
// application state; the supervisor itself stays free of it.
type Manager struct {
	store *store.Store
	log   *zap.Logger

	// Confirm is asked whether to proceed when the executable cannot be
	// resolved on PATH. Nil means proceed without asking.
	Confirm func(prompt string) bool

	mu        sync.Mutex
	settings  store.Settings
	active    *runner.Runner
	runID     id.RunID
	startedAt time.Time
}

// NewManager creates a controller backed by the given settings store.
func NewManager(st *store.Store, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		store:    st,
		log:      log,
		settings: st.Load(),
	}
}

// Settings returns a copy of the current settings.
func (m *Manager) Settings() store.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// UpdateSettings mutates the settings through fn and persists the
// result. Persistence is best-effort.
func (m *Manager) UpdateSettings(fn func(*store.Settings)) {
	m.mu.Lock()
	fn(&m.settings)
	snapshot := m.settings
	m.mu.Unlock()
	m.store.Save(snapshot)
}

// Validate checks the project directory and executable before a run.
// A missing project directory or a missing explicit executable path is a
// hard failure. A bare executable name that PATH cannot resolve is
// referred to Confirm; declining aborts.
func (m *Manager) Validate() error {
	s := m.Settings()

	info, err := os.Stat(s.ProjectDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("project directory not found: %s", s.ProjectDir)
	}

	if strings.ContainsRune(s.HemttPath, os.PathSeparator) {
		if _, err := os.Stat(s.HemttPath); err != nil {
			return fmt.Errorf("hemtt executable not found: %s", s.HemttPath)
		}
		return nil
	}

	if _, err := exec.LookPath(s.HemttPath); err != nil {
		m.log.Warn("executable not found on PATH", zap.String("executable", s.HemttPath))
		if m.Confirm != nil && !m.Confirm(fmt.Sprintf("'%s' not found in PATH. Continue anyway?", s.HemttPath)) {
			return ErrAborted
		}
	}
	return nil
}

// Run starts the wrapped tool with the given arguments in the project
// directory, after validation. The settings are persisted first so a
// crash mid-run never loses them. Returns ErrAlreadyRunning while a run
// is active.
func (m *Manager) Run(args []string, obs runner.Observer) (id.RunID, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}
	s := m.Settings()
	m.store.Save(s)
	return m.start(command.Build(s.HemttPath, args), s.ProjectDir, obs)
}

// RunTool starts an arbitrary helper executable (e.g. the package
// manager installing HEMTT) under the same supervision and admission
// rules, without project validation.
func (m *Manager) RunTool(executable string, args []string, obs runner.Observer) (id.RunID, error) {
	return m.start(command.Build(executable, args), "", obs)
}

func (m *Manager) start(cmd []string, dir string, obs runner.Observer) (id.RunID, error) {
	m.mu.Lock()
	if m.active != nil && m.active.IsRunning() {
		m.mu.Unlock()
		return "", ErrAlreadyRunning
	}

	runID := id.NewRunID()
	log := m.log.With(zap.String("run_id", runID.String()))
	r := runner.New(cmd,
		runner.WithDir(dir),
		runner.WithObserver(obs),
		runner.WithLogger(log),
	)
	m.active = r
	m.runID = runID
	m.startedAt = time.Now()
	m.mu.Unlock()

	log.Info("starting run", zap.Strings("command", cmd), zap.String("dir", dir))
	r.Start()
	return runID, nil
}

// Cancel requests cancellation of the active run, if any.
func (m *Manager) Cancel() {
	m.mu.Lock()
	r := m.active
	m.mu.Unlock()
	if r != nil {
		r.Cancel()
	}
}

// Running reports whether a run is active.
func (m *Manager) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active != nil && m.active.IsRunning()
}

// RunID returns the identifier of the most recent run, or empty if none
// has started.
func (m *Manager) RunID() id.RunID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runID
}

// Elapsed returns the time since the most recent run started.
func (m *Manager) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.startedAt.IsZero() {
		return 0
	}
	return time.Since(m.startedAt)
}
