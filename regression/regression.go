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

package regression

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/database"
	"github.com/jetsetilly/singlecycle/logger"
)

// Sentinal error patterns for the regression package.
const (
	InvalidKey = "regression: invalid key (%s)"
	Failures   = "regression: %d of %d tests did not succeed"
)

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the result should be recorded rather than compared.
	// the string is a short explanation of a failure
	regress(newRegression bool) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.AddEntryType(digestEntryType, deserialiseDigestEntry)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer, dbPath string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressAdd adds a new regression entry to the database. The regression is
// run once to record the expected result.
func RegressAdd(output io.Writer, dbPath string, reg Regressor) error {
	if dr, ok := reg.(*DigestRegression); ok && !strings.Contains(dr.Program, "://") {
		p, err := filepath.Abs(dr.Program)
		if err != nil {
			return curated.Errorf("regression: %v", err)
		}
		dr.Program = p
	}

	db, err := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
	if err != nil {
		return err
	}

	if _, _, err := reg.regress(true); err != nil {
		_ = db.EndSession(false)
		return err
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "regression", "added #%03d", key)
	fmt.Fprintf(output, "added: %s\n", reg)

	return nil
}

// RegressDelete removes an entry from the regression database. The user is
// asked to confirm the deletion by reading a line from the confirmation
// reader. A nil confirmation reader deletes the entry without asking.
func RegressDelete(output io.Writer, confirmation io.Reader, dbPath string, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf(InvalidKey, key)
	}

	db, err := database.StartSession(dbPath, database.ActivityModifying, initDBSession)
	if err != nil {
		return err
	}

	ent, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return err
	}

	if confirmation != nil {
		fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

		confirm, err := bufio.NewReader(confirmation).ReadString('\n')
		if err != nil && err != io.EOF {
			_ = db.EndSession(false)
			return curated.Errorf("regression: %v", err)
		}

		confirm = strings.ToLower(strings.TrimSpace(confirm))
		if confirm != "y" && confirm != "yes" {
			return db.EndSession(false)
		}
	}

	if err := db.Delete(v); err != nil {
		_ = db.EndSession(false)
		return err
	}

	if err := db.EndSession(true); err != nil {
		return err
	}

	fmt.Fprintf(output, "deleted test #%s from regression database\n", key)

	return nil
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested.
//
// An error is returned if any test does not succeed.
func RegressRun(output io.Writer, dbPath string, verbose bool, failOnError bool, filterKeys []string) error {
	db, err := database.StartSession(dbPath, database.ActivityReading, initDBSession)
	if err != nil {
		return err
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf(InvalidKey, k)
		}
		keys = append(keys, v)
	}

	var numSucceed, numFail, numError int

	onSelect := func(key int, ent database.Entry) (bool, error) {
		reg, ok := ent.(Regressor)
		if !ok {
			return false, curated.Errorf("regression: database entry #%03d is not a regression test", key)
		}

		ok, failm, err := reg.regress(false)

		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "  %v\n", err)
			}
			if failOnError {
				return false, nil
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose && failm != "" {
				fmt.Fprintf(output, "  %s\n", failm)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return true, nil
	}

	if len(keys) > 0 {
		err = db.SelectKeys(onSelect, keys...)
	} else {
		err = db.SelectAll(onSelect)
	}
	if err != nil {
		return err
	}

	numTests := numSucceed + numFail + numError

	fmt.Fprintf(output, "regression tests: %d succeed, %d fail", numSucceed, numFail)
	if numError > 0 {
		fmt.Fprintf(output, " [with %d errors]", numError)
	}
	fmt.Fprintln(output)

	if numFail+numError > 0 {
		return curated.Errorf(Failures, numFail+numError, numTests)
	}

	return nil
}
