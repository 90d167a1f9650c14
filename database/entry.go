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

package database

import "github.com/jetsetilly/singlecycle/curated"

// Deserialiser is the function that creates a new entry from its key and its
// serialised fields.
type Deserialiser func(key int, fields []string) (Entry, error)

// Entry represents the generic entry in the database.
type Entry interface {
	// EntryType returns the string that is used to identify the entry type in
	// the database
	EntryType() string

	// Serialise returns the entry's data as a list of fields. The fields are
	// passed to the entry type's Deserialiser when the database is next read
	Serialise() ([]string, error)

	// CleanUp is called when the entry is deleted from the database
	CleanUp() error

	// String should return information about the entry in a human readable
	// format
	String() string
}

// AddEntryType tells the database what entries it may expect in the database
// and what to do when it encounters one.
func (db *Session) AddEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf(DuplicateEntryType, id)
	}
	db.entryTypes[id] = des
	return nil
}
