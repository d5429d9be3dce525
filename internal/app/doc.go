// Package app coordinates the application-level run flow.
//
// The Manager owns the mutable state the display surface needs: the
// persisted settings, the active supervisor (at most one; runs never
// queue), the current run ID, and the start timestamp. It validates
// user input before a run ever reaches the supervisor and enforces the
// one-run-at-a-time rule.
//
// Key Components:
//   - Manager: validation, run admission, cancellation, elapsed time
//   - Confirm hook: lets the surface ask the user whether to proceed
//     when the executable is not on PATH
//
// Example Usage:
//
//	mgr := app.NewManager(settingsStore, log)
//	sink := runner.NewEventSink(256)
//	runID, err := mgr.Run(command.Check{Pedantic: true}.Args(), sink)
//	if err != nil {
//	    return err
//	}
//	for ev := range sink.Events() { ... }
package app
