// Package store persists user settings as a small JSON document.
//
// Loading never fails: a missing or corrupt file yields defaults. Saving
// is best-effort; the caller's flow is never interrupted because a
// preferences write did not stick.
package store

import (
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Settings is the persisted configuration document. Keys match the
// on-disk format of earlier releases.
type Settings struct {
	HemttPath       string `json:"hemtt_path"`
	ProjectDir      string `json:"project_dir"`
	Arma3Executable string `json:"arma3_executable,omitempty"`
	InstallID       string `json:"install_id,omitempty"`
	DarkMode        bool   `json:"dark_mode"`
	Verbose         bool   `json:"verbose"`
	Pedantic        bool   `json:"pedantic"`
}

// Defaults returns a fresh settings document: hemtt resolved via PATH,
// the current directory as the project, and a new install ID.
func Defaults() Settings {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Settings{
		HemttPath:  "hemtt",
		ProjectDir: cwd,
		InstallID:  uuid.NewString(),
	}
}

// Store reads and writes the settings document at a fixed path.
type Store struct {
	path string
	log  *zap.Logger
}

// New creates a store for the given file path.
func New(path string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{path: path, log: log}
}

// DefaultPath places the document under the user config directory,
// falling back to the working directory when none is available.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "hemttctl.json"
	}
	return filepath.Join(base, "hemttctl", "config.json")
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the document. Any failure (missing file, unreadable file,
// malformed JSON) yields defaults instead of an error. Fields absent
// from the file keep their default values.
func (s *Store) Load() Settings {
	defaults := Defaults()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return defaults
	}

	loaded := defaults
	if err := sonic.Unmarshal(data, &loaded); err != nil {
		s.log.Debug("settings file malformed, using defaults",
			zap.String("path", s.path), zap.Error(err))
		return defaults
	}
	if loaded.HemttPath == "" {
		loaded.HemttPath = defaults.HemttPath
	}
	if loaded.ProjectDir == "" {
		loaded.ProjectDir = defaults.ProjectDir
	}
	return loaded
}

// Save writes the document, creating parent directories as needed.
// Failures are swallowed: persistence is best-effort.
func (s *Store) Save(settings Settings) {
	data, err := sonic.ConfigDefault.MarshalIndent(settings, "", "  ")
	if err != nil {
		s.log.Debug("settings marshal failed", zap.Error(err))
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.log.Debug("settings dir create failed", zap.String("dir", dir), zap.Error(err))
			return
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Debug("settings write failed", zap.String("path", s.path), zap.Error(err))
	}
}
