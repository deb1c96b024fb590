//go:build !linux

package term

// Restore is a no-op where termios is unavailable
func Restore() {}
