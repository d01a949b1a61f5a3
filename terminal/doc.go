// Package terminal owns the display the animation is drawn on.
//
// Two displays are provided:
//   - Session: the Linux console driven with raw escape sequences, cbreak input and poll-based readiness
//   - Screen: a tcell screen for terminals other than the Linux console
//
// The TERM=linux gate applies only to Session; Screen runs on whatever terminal tcell supports.
//
// Both restore the terminal on Release, which is idempotent and safe to call from a signal watcher.
package terminal
