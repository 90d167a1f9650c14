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
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/database"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/digest"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
	"github.com/jetsetilly/singlecycle/prefs"
	"github.com/jetsetilly/singlecycle/programloader"
)

const digestEntryType = "digest"

const (
	digestFieldProgram int = iota
	digestFieldProgramHash
	digestFieldCycles
	digestFieldPrefs
	digestFieldMode
	digestFieldDigest
	digestFieldNotes
	numDigestFields
)

// DigestMode specifies what is being hashed by a DigestRegression.
type DigestMode int

// List of valid DigestMode values.
const (
	// the committed state of the machine at the end of the run
	DigestState DigestMode = iota

	// every named signal of every tick
	DigestTicks
)

func (mode DigestMode) String() string {
	switch mode {
	case DigestState:
		return "state"
	case DigestTicks:
		return "ticks"
	}
	return "unknown"
}

// ParseDigestMode converts the string to a DigestMode value.
func ParseDigestMode(s string) (DigestMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "state":
		return DigestState, nil
	case "ticks":
		return DigestTicks, nil
	}
	return DigestState, curated.Errorf("regression: unknown digest mode (%s)", s)
}

// DigestRegression is the simplest regression type. It runs a program for a
// fixed number of ticks and compares the digest of the result with the digest
// recorded when the entry was added.
type DigestRegression struct {
	Program     string
	ProgramHash string
	Cycles      int
	Prefs       string
	Mode        DigestMode
	Notes       string
	digest      string
}

func deserialiseDigestEntry(_ int, fields []string) (database.Entry, error) {
	if len(fields) != numDigestFields {
		return nil, curated.Errorf("regression: %s: wrong number of fields (%d)", digestEntryType, len(fields))
	}

	reg := &DigestRegression{
		Program:     fields[digestFieldProgram],
		ProgramHash: fields[digestFieldProgramHash],
		Prefs:       fields[digestFieldPrefs],
		Notes:       fields[digestFieldNotes],
		digest:      fields[digestFieldDigest],
	}

	var err error

	reg.Cycles, err = strconv.Atoi(fields[digestFieldCycles])
	if err != nil || reg.Cycles <= 0 {
		return nil, curated.Errorf("regression: %s: invalid number of cycles (%s)", digestEntryType, fields[digestFieldCycles])
	}

	reg.Mode, err = ParseDigestMode(fields[digestFieldMode])
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// EntryType implements the database.Entry interface.
func (reg *DigestRegression) EntryType() string {
	return digestEntryType
}

// Serialise implements the database.Entry interface.
func (reg *DigestRegression) Serialise() ([]string, error) {
	return []string{
		reg.Program,
		reg.ProgramHash,
		strconv.Itoa(reg.Cycles),
		reg.Prefs,
		reg.Mode.String(),
		reg.digest,
		reg.Notes,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (reg *DigestRegression) CleanUp() error {
	return nil
}

func (reg *DigestRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s/%s] %s [%d ticks]", digestEntryType, reg.Mode, programloader.NewLoader(reg.Program).ShortName(), reg.Cycles))
	if reg.Prefs != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Prefs))
	}
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" %s", reg.Notes))
	}
	return s.String()
}

// regress implements the regressor interface.
func (reg *DigestRegression) regress(newRegression bool) (bool, string, error) {
	if reg.Cycles <= 0 {
		return false, "", curated.Errorf("regression: %s: number of cycles must be positive (%d)", digestEntryType, reg.Cycles)
	}

	ld := programloader.NewLoader(reg.Program)
	ld.Hash = reg.ProgramHash
	if err := ld.Load(); err != nil {
		return false, "", curated.Errorf("regression: %s: %v", digestEntryType, err)
	}

	prefs.PushCommandLineStack(reg.Prefs)
	m, err := hardware.NewMachine(nil)
	prefs.PopCommandLineStack()
	if err != nil {
		return false, "", curated.Errorf("regression: %s: %v", digestEntryType, err)
	}

	if err := m.Load(ld.Data); err != nil {
		return false, "", curated.Errorf("regression: %s: %v", digestEntryType, err)
	}

	var ticks digest.Ticks

	err = m.Run(reg.Cycles, func(t result.Tick) (govern.State, error) {
		if reg.Mode == DigestTicks {
			ticks.Tick(t)
		}
		return govern.Running, nil
	})
	if err != nil {
		return false, "", curated.Errorf("regression: %s: %v", digestEntryType, err)
	}

	var dig digest.Digest = &ticks
	if reg.Mode == DigestState {
		var state digest.State
		state.Update(m)
		dig = &state
	}

	if newRegression {
		reg.ProgramHash = ld.Hash
		reg.digest = dig.Hash()
		return true, "", nil
	}

	if dig.Hash() != reg.digest {
		return false, "digest mismatch", nil
	}

	return true, "", nil
}
