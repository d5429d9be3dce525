package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a test Observer that captures everything delivered by the
// background goroutine.
type recorder struct {
	mu    sync.Mutex
	lines []string
	codes []int
	done  chan struct{}
}

func newRecorder() *recorder {
	return &recorder{done: make(chan struct{})}
}

func (r *recorder) OnLine(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, line)
}

func (r *recorder) OnExit(code int) {
	r.mu.Lock()
	r.codes = append(r.codes, code)
	r.mu.Unlock()
	close(r.done)
}

func (r *recorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(10 * time.Second):
		t.Fatal("run did not terminate in time")
	}
}

func (r *recorder) snapshot() ([]string, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...), append([]int(nil), r.codes...)
}

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests spawn /bin/sh")
	}
}

func shellCommand(script string) []string {
	return []string{"/bin/sh", "-c", script}
}

func TestRunDeliversOrderedLinesThenExit(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`printf 'one\ntwo\nthree\n'; exit 3`), WithObserver(rec))
	r.Start()
	rec.wait(t)

	lines, codes := rec.snapshot()
	assert.Equal(t, []string{"one\n", "two\n", "three\n"}, lines)
	assert.Equal(t, []int{3}, codes)
	assert.Equal(t, Terminated, r.CurrentState())
	assert.False(t, r.IsRunning())
}

func TestRunStripsEscapeSequences(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`printf '\033[31mred line\033[0m\n'`), WithObserver(rec))
	r.Start()
	rec.wait(t)

	lines, codes := rec.snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, "red line\n", lines[0])
	assert.Equal(t, []int{0}, codes)
}

func TestRunCombinesStdoutAndStderr(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`echo out; echo err >&2`), WithObserver(rec))
	r.Start()
	rec.wait(t)

	lines, _ := rec.snapshot()
	assert.ElementsMatch(t, []string{"out\n", "err\n"}, lines)
}

func TestExecutableNotFound(t *testing.T) {
	rec := newRecorder()
	r := New([]string{"/no/such/executable/anywhere"}, WithObserver(rec))
	r.Start()
	rec.wait(t)

	lines, codes := rec.snapshot()
	assert.Equal(t, []int{ExitNotFound}, codes)
	require.NotEmpty(t, lines)
	assert.Contains(t, strings.ToLower(lines[0]), "error")
	assert.Equal(t, Terminated, r.CurrentState())
}

func TestEmptyCommand(t *testing.T) {
	rec := newRecorder()
	r := New(nil, WithObserver(rec))
	r.Start()
	rec.wait(t)

	lines, codes := rec.snapshot()
	assert.Equal(t, []int{ExitFailure}, codes)
	require.NotEmpty(t, lines)
}

func TestCancelTerminatesRun(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`echo started; exec sleep 30`),
		WithObserver(rec),
		WithGracePeriod(time.Second))
	r.Start()

	// Wait for the child to come up before cancelling.
	require.Eventually(t, func() bool {
		lines, _ := rec.snapshot()
		return len(lines) > 0
	}, 5*time.Second, 10*time.Millisecond)

	r.Cancel()
	rec.wait(t)

	_, codes := rec.snapshot()
	require.Len(t, codes, 1)
	assert.NotEqual(t, 0, codes[0])
	assert.False(t, r.IsRunning())

	// Cancel after exit and a restart attempt are both no-ops.
	r.Cancel()
	r.Start()
	assert.Equal(t, Terminated, r.CurrentState())
}

func TestDoubleCancelIsSafe(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`exec sleep 30`), WithObserver(rec), WithGracePeriod(time.Second))
	r.Start()

	require.Eventually(t, r.IsRunning, 5*time.Second, 10*time.Millisecond)
	r.Cancel()
	r.Cancel()
	rec.wait(t)

	_, codes := rec.snapshot()
	assert.Len(t, codes, 1)
}

func TestCancelBeforeStartIsSafe(t *testing.T) {
	r := New(shellCommand(`echo hi`))
	r.Cancel()
	assert.Equal(t, Idle, r.CurrentState())
}

func TestStartWhileRunningIsNoOp(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`sleep 0.3; echo done`), WithObserver(rec))
	r.Start()
	r.Start()
	rec.wait(t)

	lines, codes := rec.snapshot()
	assert.Equal(t, []string{"done\n"}, lines)
	assert.Len(t, codes, 1)
}

func TestIsRunningLifecycle(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`sleep 0.3`), WithObserver(rec))
	assert.False(t, r.IsRunning())
	assert.Equal(t, Idle, r.CurrentState())

	r.Start()
	assert.Eventually(t, r.IsRunning, 5*time.Second, 10*time.Millisecond)

	rec.wait(t)
	assert.False(t, r.IsRunning())
}

func TestEnvironmentSuppressesColorAndAppliesOverrides(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`echo "$NO_COLOR|$TERM|$HEMTTCTL_TEST_VALUE"`),
		WithObserver(rec),
		WithEnv(map[string]string{"HEMTTCTL_TEST_VALUE": "injected"}))
	r.Start()
	rec.wait(t)

	lines, _ := rec.snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, "1|dumb|injected\n", lines[0])
}

func TestWorkingDirOverride(t *testing.T) {
	requireShell(t)

	dir := t.TempDir()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	rec := newRecorder()
	r := New(shellCommand(`pwd`), WithObserver(rec), WithDir(dir))
	r.Start()
	rec.wait(t)

	lines, _ := rec.snapshot()
	require.Len(t, lines, 1)
	got, err := filepath.EvalSymlinks(strings.TrimSuffix(lines[0], "\n"))
	require.NoError(t, err)
	assert.Equal(t, resolved, got)
}

func TestInvalidUTF8Replaced(t *testing.T) {
	requireShell(t)

	rec := newRecorder()
	r := New(shellCommand(`printf 'bad \377 byte\n'`), WithObserver(rec))
	r.Start()
	rec.wait(t)

	lines, _ := rec.snapshot()
	require.Len(t, lines, 1)
	assert.Equal(t, "bad � byte\n", lines[0])
}

func TestPTYMode(t *testing.T) {
	requireShell(t)
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skip("no PTY support on this host")
	}

	rec := newRecorder()
	r := New(shellCommand(`echo from-pty`), WithObserver(rec), WithPTY())
	r.Start()
	rec.wait(t)

	lines, codes := rec.snapshot()
	assert.Equal(t, []int{0}, codes)
	require.NotEmpty(t, lines)
	assert.Equal(t, "from-pty\n", lines[0])
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "cancel_requested", CancelRequested.String())
	assert.Equal(t, "terminated", Terminated.String())
}
