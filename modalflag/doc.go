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

// Package modalflag wraps the flag package in the standard library. It adds
// program modes to the idea of a flag set, with each mode having its own set
// of flags and arguments.
//
// Arguments are given to a Modes instance with NewArgs() and then processed
// with Parse(). Flags for the current mode are added between the two calls:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	cycles := md.AddInt("cycles", 500, "number of ticks to run")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// Sub-modes are added with AddSubModes(). The first sub-mode in the list is the
// default and is selected when the first non-flag argument does not name a
// sub-mode. Comparisons are case insensitive and Mode() always returns the
// upper case form.
//
//	md.AddSubModes("run", "debug", "digest")
//	_, _ = md.Parse()
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		// add flags for the debug mode and call Parse() again
//	}
//
// Each call to NewMode() starts a new flag set, with parsing starting from
// where the previous Parse() finished. The sequence of selected modes is
// available with Path().
//
// Help is handled automatically. A -help flag causes the flags and sub-modes
// of the current mode to be written to the Output field and Parse() returns
// ParseHelp.
package modalflag
