package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/creack/pty"
	"go.uber.org/zap"

	"github.com/hemttools/hemttctl/internal/ansi"
)

// Sentinel exit codes for runs that never produced a real child exit.
const (
	// ExitNotFound is reported when the executable cannot be found.
	ExitNotFound = 127
	// ExitFailure is reported for any other spawn or supervision failure.
	ExitFailure = 1
)

// DefaultGracePeriod is how long Cancel waits for the child to honor
// SIGTERM before escalating to a kill.
const DefaultGracePeriod = 5 * time.Second

// Runner supervises exactly one run of an external command. Create one
// per invocation; a finished Runner cannot be reused.
type Runner struct {
	command []string
	dir     string
	env     map[string]string
	obs     Observer
	usePTY  bool
	grace   time.Duration
	log     *zap.Logger

	mu    sync.Mutex
	state State
	cmd   *exec.Cmd

	cancelRequested atomic.Bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithDir sets the child's working directory. Empty inherits the
// caller's current directory.
func WithDir(dir string) Option {
	return func(r *Runner) { r.dir = dir }
}

// WithEnv overrides individual environment entries for the child. The
// child always starts from a copy of the caller's environment.
func WithEnv(env map[string]string) Option {
	return func(r *Runner) { r.env = env }
}

// WithObserver sets the output/exit consumer.
func WithObserver(obs Observer) Option {
	return func(r *Runner) { r.obs = obs }
}

// WithPTY runs the child under a pseudo-terminal instead of a pipe.
// A PTY merges the streams natively; line endings are normalized back
// to a bare newline.
func WithPTY() Option {
	return func(r *Runner) { r.usePTY = true }
}

// WithGracePeriod sets how long Cancel waits before killing the child.
func WithGracePeriod(d time.Duration) Option {
	return func(r *Runner) { r.grace = d }
}

// WithLogger attaches a logger for lifecycle debug events.
func WithLogger(log *zap.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// New creates a supervisor for the given command vector. The first
// element is the executable; the slice is not copied, so callers must
// not mutate it after handing it over.
func New(command []string, opts ...Option) *Runner {
	r := &Runner{
		command: command,
		obs:     nopObserver{},
		grace:   DefaultGracePeriod,
		log:     zap.NewNop(),
		state:   Idle,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start spawns the child on a dedicated goroutine and returns
// immediately. Calling Start while a run is active, or after the run has
// terminated, is a no-op.
func (r *Runner) Start() {
	r.mu.Lock()
	if r.state != Idle {
		r.mu.Unlock()
		return
	}
	r.state = Running
	r.mu.Unlock()

	go r.run()
}

// Cancel requests termination of the child: SIGTERM first, then a kill
// if the grace period elapses without the child exiting. No further
// read iteration starts once the flag is observed, though a line already
// in flight may still be delivered. Safe to call repeatedly, before
// Start, or after exit.
func (r *Runner) Cancel() {
	r.cancelRequested.Store(true)

	r.mu.Lock()
	if r.state != Running {
		r.mu.Unlock()
		return
	}
	r.state = CancelRequested
	cmd := r.cmd
	r.mu.Unlock()

	r.log.Debug("cancellation requested", zap.String("executable", r.executable()))
	if cmd != nil {
		r.terminate(cmd)
	}
}

// IsRunning reports whether the run is active: true strictly between
// Start taking effect and the OnExit callback firing.
func (r *Runner) IsRunning() bool {
	s := r.CurrentState()
	return s == Running || s == CancelRequested
}

// CurrentState returns the lifecycle state.
func (r *Runner) CurrentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Runner) executable() string {
	if len(r.command) == 0 {
		return ""
	}
	return r.command[0]
}

// run is the dedicated background goroutine: spawn, stream, wait, report.
// Every path ends in finish, so OnExit fires exactly once.
func (r *Runner) run() {
	if len(r.command) == 0 {
		r.obs.OnLine("Unexpected error: empty command\n")
		r.finish(ExitFailure)
		return
	}

	out, err := r.spawn()
	if err != nil {
		code := ExitFailure
		prefix := "Unexpected error"
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			code = ExitNotFound
			prefix = "Error"
		}
		r.log.Debug("spawn failed", zap.String("executable", r.executable()), zap.Error(err))
		r.obs.OnLine(fmt.Sprintf("%s: %v\n", prefix, err))
		r.finish(code)
		return
	}

	r.log.Debug("process started",
		zap.Strings("command", r.command),
		zap.String("dir", r.dir),
		zap.Bool("pty", r.usePTY))

	r.stream(out)
	out.Close()

	code := r.wait()
	r.log.Debug("process exited", zap.Int("code", code))
	r.finish(code)
}

// spawn starts the child with stdout and stderr joined into a single
// stream and returns the read side.
func (r *Runner) spawn() (io.ReadCloser, error) {
	cmd := exec.Command(r.command[0], r.command[1:]...)
	cmd.Dir = r.dir
	cmd.Env = r.environ()

	if r.usePTY {
		ptmx, err := pty.Start(cmd)
		if err != nil {
			return nil, err
		}
		r.adopt(cmd)
		return ptmx, nil
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	cmd.Stdout = pw
	cmd.Stderr = pw
	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return nil, err
	}
	// The child holds its own copies of the write end; closing ours lets
	// the reader see EOF when the child exits.
	pw.Close()
	r.adopt(cmd)
	return pr, nil
}

// adopt publishes the started command so Cancel can signal it. If a
// cancellation arrived during spawn, act on it now.
func (r *Runner) adopt(cmd *exec.Cmd) {
	r.mu.Lock()
	r.cmd = cmd
	r.mu.Unlock()

	if r.cancelRequested.Load() {
		r.terminate(cmd)
	}
}

// environ builds the child environment: the caller's environment plus
// color suppression, plus explicit overrides. os/exec keeps the last
// duplicate, so overrides win.
func (r *Runner) environ() []string {
	env := os.Environ()
	env = append(env, "NO_COLOR=1", "TERM=dumb")
	for k, v := range r.env {
		env = append(env, k+"="+v)
	}
	return env
}

// stream reads the combined output line-by-line and forwards each line,
// ANSI-stripped, to the observer. A read error is end-of-stream, not a
// failure: a PTY returns EIO when the child side closes.
func (r *Runner) stream(out io.Reader) {
	reader := bufio.NewReader(out)
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			r.obs.OnLine(r.cleanLine(line))
		}
		if err != nil || r.cancelRequested.Load() {
			return
		}
	}
}

// cleanLine strips escape sequences and replaces invalid UTF-8 with the
// replacement character. PTY output additionally carries CRLF endings,
// normalized back to the bare newline the child wrote.
func (r *Runner) cleanLine(line string) string {
	line = ansi.Strip(strings.ToValidUTF8(line, "�"))
	if r.usePTY {
		line = strings.ReplaceAll(line, "\r\n", "\n")
	}
	return line
}

// wait reaps the child and maps the result to an exit code.
func (r *Runner) wait() int {
	r.mu.Lock()
	cmd := r.cmd
	r.mu.Unlock()

	err := cmd.Wait()
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	r.obs.OnLine(fmt.Sprintf("Unexpected error: %v\n", err))
	return ExitFailure
}

// finish moves to Terminated and fires the exit callback. The state
// flips first so IsRunning is already false when OnExit observes the run.
func (r *Runner) finish(code int) {
	r.mu.Lock()
	r.state = Terminated
	r.mu.Unlock()
	r.obs.OnExit(code)
}

// terminate asks the child to exit and schedules the escalation kill.
func (r *Runner) terminate(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		// Signal delivery failed outright; fall back to a hard kill.
		_ = cmd.Process.Kill()
		return
	}
	time.AfterFunc(r.grace, func() {
		if r.CurrentState() != Terminated {
			r.log.Debug("grace period elapsed, killing process")
			_ = cmd.Process.Kill()
		}
	})
}
