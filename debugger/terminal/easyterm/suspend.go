// This file is part of singlecycle.
//
// singlecycle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// singlecycle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with singlecycle.  If not, see <https://www.gnu.org/licenses/>.

package easyterm

import (
	"golang.org/x/sys/unix"
)

// SuspendProcess suspends the current process. This is useful if the terminal
// is in raw mode, in which case the suspend key does not cause the operating
// system to send the suspend signal.
//
// The terminal is returned to canonical mode before suspension and to raw
// mode after the process has been continued.
func (pt *Terminal) SuspendProcess() {
	pt.CanonicalMode()
	_ = unix.Kill(unix.Getpid(), unix.SIGTSTP)
	pt.RawMode()
}
