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

import (
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jetsetilly/singlecycle/curated"
)

// Activity is the type of activity that will happen during a session.
type Activity int

// List of valid Activity values.
const (
	// the database will not be changed
	ActivityReading Activity = iota

	// the database may be changed but will not be created if it does not
	// already exist
	ActivityModifying

	// the database may be changed and will be created if necessary
	ActivityCreating
)

// Sentinal error patterns for the database package.
const (
	DuplicateEntryType = "database: duplicate entry type (%s)"
	UnknownEntryType   = "database: line %d: unrecognised entry type (%s)"
	Malformed          = "database: line %d: %v"
	KeyNotAvailable    = "database: key not available (%d)"
	ReadOnly           = "database: session is read only"
	NoDatabase         = "database: no database to modify (%s)"
	MaxEntries         = "database: maximum entries exceeded (max %d)"
)

// Session represents a database that has been read from disk. Entries are
// held in memory until EndSession() is called.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser

	// whether the database file existed at the start of the session
	exists bool
}

// StartSession reads the database at the specified path. The init function
// should add the entry types that may be found in the database.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf("database: %v", err)
		}
		if activity == ActivityModifying {
			return nil, curated.Errorf(NoDatabase, path)
		}
		return db, nil
	}
	defer f.Close()

	db.exists = true

	if err := db.read(f); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Session) read(r io.Reader) error {
	rdr := csv.NewReader(r)
	rdr.FieldsPerRecord = -1
	rdr.Comment = '#'

	for {
		record, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		line, _ := rdr.FieldPos(0)

		if len(record) < numLeaderFields {
			return curated.Errorf(Malformed, line, "too few fields")
		}

		key, err := strconv.Atoi(record[leaderFieldKey])
		if err != nil || key < 0 || key >= maxEntries {
			return curated.Errorf(Malformed, line, "invalid key")
		}
		if _, ok := db.entries[key]; ok {
			return curated.Errorf(Malformed, line, "duplicate key")
		}

		des, ok := db.entryTypes[record[leaderFieldType]]
		if !ok {
			return curated.Errorf(UnknownEntryType, line, record[leaderFieldType])
		}

		ent, err := des(key, record[numLeaderFields:])
		if err != nil {
			return curated.Errorf(Malformed, line, err)
		}

		db.entries[key] = ent
	}

	return nil
}

// EndSession closes the session. If commit is true and the activity allows it
// then the entries are written to disk.
func (db *Session) EndSession(commit bool) error {
	if !commit || db.activity == ActivityReading {
		return nil
	}

	if !db.exists && db.activity != ActivityCreating {
		return curated.Errorf(NoDatabase, db.path)
	}

	// write to a temporary file in the same directory and then rename it so
	// that a failed write does not lose the existing database
	f, err := os.CreateTemp(filepath.Dir(db.path), filepath.Base(db.path))
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	err = db.write(f)
	if cerr := f.Close(); err == nil && cerr != nil {
		err = curated.Errorf("database: %v", cerr)
	}
	if err != nil {
		_ = os.Remove(f.Name())
		return err
	}

	if err := os.Rename(f.Name(), db.path); err != nil {
		_ = os.Remove(f.Name())
		return curated.Errorf("database: %v", err)
	}

	db.exists = true

	return nil
}

func (db *Session) write(w io.Writer) error {
	wtr := csv.NewWriter(w)

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			return curated.Errorf("database: %v", err)
		}

		record := make([]string, numLeaderFields, numLeaderFields+len(fields))
		record[leaderFieldKey] = recordKey(key)
		record[leaderFieldType] = ent.EntryType()
		record = append(record, fields...)

		if err := wtr.Write(record); err != nil {
			return curated.Errorf("database: %v", err)
		}
	}

	wtr.Flush()
	if err := wtr.Error(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
