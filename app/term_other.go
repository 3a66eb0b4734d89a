//go:build !linux

package app

// resetTerminalMode is a no-op where TCGETS-style termios access is
// unavailable; the escape sequences still run.
func resetTerminalMode() {}
