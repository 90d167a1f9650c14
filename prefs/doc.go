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

// Package prefs facilitates the storage of preference values. Values are typed
// and are collated in a Group. Each value in a group has a key, which is used
// to set the value from the command line stack.
//
// The command line stack is a way of temporarily specifying preference values
// from a string of the form:
//
//	"hardware.zero::true; hardware.databits::10"
//
// The string is pushed onto the stack with PushCommandLineStack() and the
// values taken by Group.ApplyCommandLine(). Keys in the string that no Group
// claims are returned by PopCommandLineStack(), so that the caller can report
// them.
package prefs
