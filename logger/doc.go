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

// Package logger is the central logging facility for singlecycle. Log entries
// are a tag and a detail string. The tag is usually the name of the package
// making the log entry, for example "cpu" or "programloader".
//
// Entries are kept in memory, up to a maximum number, and can be written to
// an io.Writer on demand with Write() or Tail(). Consecutive identical entries
// are collapsed into a single entry with a repeat count. This is useful for
// the simulation which can produce the same log entry on every clock tick.
//
// Every call to Log() or Logf() requires a Permission argument. Use Allow if
// there is no reason to prevent logging. A simulation that is running with
// logging turned off will pass itself as the Permission and refuse the
// request.
//
// The package level functions use a single central logger. NewLogger() can be
// used to create an independent logger, which is useful for testing.
package logger
