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

// Package archivefs allows a file inside a zip archive to be referenced with an
// ordinary looking path. The archive is treated as a directory, so the file
// loop.hex in the archive programs.zip can be opened with:
//
//	data, err := archivefs.ReadFile("examples/programs.zip/loop.hex")
//
// The archive is recognised by its content and not by its file extension.
package archivefs
