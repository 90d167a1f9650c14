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

package prefs_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/prefs"
	"github.com/jetsetilly/singlecycle/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get(), prefs.Value(true))

	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get(), prefs.Value(false))

	for _, s := range []string{"true", "TRUE", " on", "1"} {
		test.ExpectSuccess(t, v.Set(s))
		test.ExpectEquality(t, v.String(), "true", s)
	}

	err := v.Set(10)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))

	v.SetDefault(true)
	test.ExpectSuccess(t, v.Set(false))
	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get(), prefs.Value(true))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get(), prefs.Value(10))

	// test string conversion to int
	test.ExpectSuccess(t, v.Set("99"))
	test.ExpectEquality(t, v.String(), "99")
	test.ExpectSuccess(t, v.Set("0x10"))
	test.ExpectEquality(t, v.Get(), prefs.Value(16))

	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// failed sets don't change the value
	test.ExpectEquality(t, v.Get(), prefs.Value(16))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook prevents the value from changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(5))
	test.ExpectEquality(t, post, 5)
}

func TestGroup(t *testing.T) {
	grp := prefs.NewGroup()

	var b prefs.Bool
	var n prefs.Int
	n.SetDefault(4)

	test.ExpectSuccess(t, grp.Add("test.bool", &b))
	test.ExpectSuccess(t, grp.Add("test.int", &n))
	test.ExpectEquality(t, n.Get(), prefs.Value(4))

	err := grp.Add("test.bool", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectSuccess(t, grp.Set("test.int", "12"))
	test.ExpectEquality(t, n.Get(), prefs.Value(12))

	err = grp.Set("test.missing", "12")
	test.ExpectSuccess(t, curated.Is(err, prefs.UnknownKey))

	err = grp.Set("test.int", "twelve")
	test.ExpectSuccess(t, curated.Is(err, prefs.InvalidValue))
	test.ExpectSuccess(t, curated.Has(err, prefs.CannotConvert))

	v, err := grp.Get("test.int")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, prefs.Value(12))

	test.ExpectEquality(t, grp.String(), "test.bool :: false\ntest.int :: 12\n")

	test.ExpectSuccess(t, grp.Reset())
	test.ExpectEquality(t, n.Get(), prefs.Value(4))
}

func TestGroupCommandLine(t *testing.T) {
	grp := prefs.NewGroup()

	var b prefs.Bool
	var n prefs.Int
	test.ExpectSuccess(t, grp.Add("test.bool", &b))
	test.ExpectSuccess(t, grp.Add("test.int", &n))

	prefs.PushCommandLineStack("test.bool::true; test.int::7; other::value")
	test.ExpectSuccess(t, grp.ApplyCommandLine())
	test.ExpectEquality(t, b.Get(), prefs.Value(true))
	test.ExpectEquality(t, n.Get(), prefs.Value(7))

	// only the unclaimed key remains
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")

	// invalid value on the command line
	prefs.PushCommandLineStack("test.int::seven")
	test.ExpectFailure(t, grp.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}
