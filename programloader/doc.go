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

// Package programloader is used to specify and load the program that is to be
// placed in the instruction store. Programs are text files with one
// hexadecimal instruction word per line:
//
//	# addi $9, $0, 3
//	0x20090003
//	20 0a 00 07   // addi $10, $0, 7
//
// Whitespace inside a word is ignored, as are blank lines and comments
// introduced by either '#' or '//'. The first word is placed at address zero.
//
// Programs can be loaded from a local file or over HTTP. The sha1 hash of the
// file is recorded, and can be used to make sure that the correct program has
// been loaded.
package programloader
