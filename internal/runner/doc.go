// Package runner supervises a single external build-tool process.
//
// A Runner owns the whole lifecycle of one child process: it spawns the
// command on a dedicated goroutine, merges stdout and stderr into one
// stream, delivers output line-by-line to an Observer, and reports the
// final exit code exactly once. The caller is never blocked: Start,
// Cancel, and the observer enqueue path all return immediately.
//
// Features:
//   - Combined stdout+stderr capture (pipe by default, PTY optional)
//   - ANSI-stripped, order-preserving line delivery
//   - Lenient decoding: invalid UTF-8 becomes U+FFFD, never an error
//   - Graceful cancellation with forced-kill escalation
//   - Spawn failures surface as sentinel exit codes, never panics
//
// Lifecycle:
//   - Idle → Running on Start
//   - Running → CancelRequested on Cancel
//   - always ends Terminated; OnExit fires exactly at that edge
//   - a Runner is single-use: once Terminated it cannot be restarted
//
// Example Usage:
//
//	r := runner.New(
//		command.Build("hemtt", []string{"build"}),
//		runner.WithDir(projectDir),
//		runner.WithObserver(sink),
//	)
//	r.Start()
//	// ... later, from any goroutine:
//	r.Cancel()
package runner
