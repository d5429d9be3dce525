// Package id generates identifiers for supervised runs.
//
// Run IDs are prefixed ULIDs (run_01J...), lexicographically sortable so
// log lines and transcripts order by start time, and readable enough to
// grep.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunID identifies a single supervised process run.
type RunID string

// RunPrefix tags run IDs in logs.
const RunPrefix = "run"

func (id RunID) String() string { return string(id) }

// Generator generates prefixed ULIDs.
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the singleton generator backed by crypto/rand.
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator(rand.Reader)
	})
	return defaultGenerator
}

// NewGenerator creates a generator with the given entropy source; tests
// can pass a deterministic reader.
func NewGenerator(entropy io.Reader) *Generator {
	return &Generator{entropy: entropy}
}

// Generate creates a fresh ULID string.
func (g *Generator) Generate() string {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// NewRunID generates a new run identifier.
func NewRunID() RunID {
	return RunID(fmt.Sprintf("%s_%s", RunPrefix, Default().Generate()))
}

// IsValid checks whether s is a well-formed run ID.
func IsValid(s string) bool {
	rest, ok := strings.CutPrefix(s, RunPrefix+"_")
	if !ok {
		return false
	}
	_, err := ulid.Parse(rest)
	return err == nil
}
