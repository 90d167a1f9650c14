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

// Package regression facilitates the regression testing of the simulator. A
// regression entry records a program, the number of ticks to run it for, the
// hardware preferences to run it with and the digest of the result. Running
// the regression test later reproduces the run and compares the digests.
//
// Entries are stored with the database package. The RegressAdd(),
// RegressList(), RegressDelete() and RegressRun() functions each start and end
// their own database session.
package regression
