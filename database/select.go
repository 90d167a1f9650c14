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

// SelectAll entries in the database in key order. The onSelect function
// should return false if the selection process is to stop early. Any error
// returned by onSelect also stops the selection and is returned.
func (db Session) SelectAll(onSelect func(key int, ent Entry) (bool, error)) error {
	for _, key := range db.SortedKeyList() {
		cont, err := onSelect(key, db.entries[key])
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}
	return nil
}

// SelectKeys is like SelectAll() but only for the specified keys, which are
// visited in the order given. A key that is not in the database is an error.
func (db Session) SelectKeys(onSelect func(key int, ent Entry) (bool, error), keys ...int) error {
	for _, key := range keys {
		ent, ok := db.entries[key]
		if !ok {
			return curated.Errorf(KeyNotAvailable, key)
		}
		cont, err := onSelect(key, ent)
		if err != nil {
			return err
		}
		if !cont {
			break
		}
	}
	return nil
}
