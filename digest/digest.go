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

// Package digest produces cryptographic hashes of the simulation. The hash can
// then be used to compare the output of subsequent runs of the same program.
// If a new hash differs from a previously recorded value then something has
// changed. This is the basis for the DIGEST mode and the idempotence tests.
//
// The State type hashes the committed state of the machine: the program
// counter, the register file and the data memory. The Ticks type chains the
// hash of every named signal in every tick, so two runs only share a Ticks
// hash if every intermediate signal was the same.
package digest

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
