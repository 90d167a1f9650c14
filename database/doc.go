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

// Package database is a very simple way of storing structured and arbitrary
// entry types. It's as simple as simple can be but is still useful in helping
// to organise what is essentially a flat file.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file on the local disk. The
// second argument is a description of the type of activity that will be
// happening during the session. A session started with ActivityReading can
// not be changed and EndSession() never writes to the disk. The database file
// is only created by a session started with ActivityCreating.
//
// The third argument is the database initialisation function. The database
// can store arbitrary entry types and the initialisation function tells the
// session which types to expect:
//
//	func initDBSession(db *database.Session) error {
//		return db.AddEntryType("digest", deserialiseDigest)
//	}
//
// The deserialise function takes the entry's key and fields and returns a new
// database.Entry. Entries are deserialised as part of StartSession() and any
// error from a deserialiser causes StartSession() to fail.
//
//	func deserialiseDigest(key int, fields []string) (database.Entry, error) {
//		ent := &digestEntry{key: key}
//		ent.program = fields[0]
//		return ent, nil
//	}
//
// On disk, each entry is a single CSV record. The first two fields are the
// key and the entry type, followed by the fields returned by the Serialise()
// function of the entry.
package database
