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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/singlecycle/curated"
)

// Sentinal error patterns for the Group type.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
	InvalidValue = "prefs: %s: %v"
)

// Group collates preference values under unique keys.
type Group struct {
	crit    sync.Mutex
	entries map[string]pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup() *Group {
	return &Group{
		entries: make(map[string]pref),
	}
}

// keys returns the sorted list of keys. must be called with the critical
// section locked.
func (grp *Group) keys() []string {
	k := make([]string, 0, len(grp.entries))
	for key := range grp.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// String returns every key and value in the group, one per line, sorted by
// key.
func (grp *Group) String() string {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	s := strings.Builder{}
	for _, key := range grp.keys() {
		s.WriteString(fmt.Sprintf("%s :: %s\n", key, grp.entries[key]))
	}
	return s.String()
}

// Add a preference value to the group. The value is reset to its default.
func (grp *Group) Add(key string, p pref) error {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	if _, ok := grp.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	grp.entries[key] = p

	return p.Reset()
}

// Keys returns the keys of every preference in the group, sorted.
func (grp *Group) Keys() []string {
	grp.crit.Lock()
	defer grp.crit.Unlock()
	return grp.keys()
}

// Set the value of the preference with the specified key.
func (grp *Group) Set(key string, v Value) error {
	grp.crit.Lock()
	p, ok := grp.entries[key]
	grp.crit.Unlock()

	if !ok {
		return curated.Errorf(UnknownKey, key)
	}

	if err := p.Set(v); err != nil {
		return curated.Errorf(InvalidValue, key, err)
	}

	return nil
}

// Get the value of the preference with the specified key.
func (grp *Group) Get(key string) (Value, error) {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	p, ok := grp.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Reset every preference in the group to its default value.
func (grp *Group) Reset() error {
	grp.crit.Lock()
	defer grp.crit.Unlock()

	for _, key := range grp.keys() {
		if err := grp.entries[key].Reset(); err != nil {
			return curated.Errorf(InvalidValue, key, err)
		}
	}

	return nil
}

// ApplyCommandLine takes any values for the group's keys from the top of the
// command line stack.
func (grp *Group) ApplyCommandLine() error {
	for _, key := range grp.Keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := grp.Set(key, v); err != nil {
				return err
			}
		}
	}
	return nil
}
