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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test error and continue. The Demand*()
// functions are fatal to the test and should be used when the value being
// tested is needed for further tests, for example the length of a slice before
// iterating over it.
//
// The ExpectSuccess() and ExpectFailure() functions test for success and
// failure under generic conditions. Supported types are bool and error. A nil
// value is considered a success because of how errors usually work (nil to
// indicate no error).
package test
