//go:build linux

package app

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode attempts to restore cooked mode. Best-effort for
// crash recovery; errors ignored.
func resetTerminalMode() {
	// /dev/tty works even when stdin is redirected
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
