// Package logging provides structured logging using uber/zap.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: colored console output for human readability
//
// The CLI logs its own lifecycle here; wrapped-tool output never goes
// through the logger; it flows through the supervisor's observer so the
// display surface receives it verbatim.
//
// Example Usage:
//
//	log := logging.NewDefault()
//	log.Info("run started", zap.String("run_id", runID))
package logging
