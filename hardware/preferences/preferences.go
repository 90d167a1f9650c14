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

// Package preferences collates the preference values that configure the
// simulated hardware. The values are set on the command line with strings
// like:
//
//	"hardware.hardwiredzero::true; hardware.instructionbits::6"
//
// Changes to the memory sizes only take effect when a new machine is created.
// Changes to HardwiredZero and Logging are seen by a running machine
// immediately.
package preferences

import (
	"fmt"

	"github.com/jetsetilly/singlecycle/hardware/memory"
	"github.com/jetsetilly/singlecycle/prefs"
)

// Default values for the hardware preferences.
const (
	DefaultInstructionBits = 4
	DefaultDataWords       = 1024
)

// Preferences defines and collates all the preference values used by the
// hardware.
type Preferences struct {
	grp *prefs.Group

	// discard writes to register zero. the datapath this simulator models
	// allows register zero to be written to like any other register
	HardwiredZero prefs.Bool

	// number of address bits in the instruction store. also the width of the
	// program counter
	InstructionBits prefs.Int

	// number of words in the data memory
	DataWords prefs.Int

	// allow the CPU to make log entries during evaluation
	Logging prefs.Bool
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Any values on the top of the prefs command line stack are applied.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.InstructionBits.SetDefault(DefaultInstructionBits)
	p.InstructionBits.SetHookPre(func(v prefs.Value) error {
		b := v.(int)
		if b < memory.MinInstructionBits || b > memory.MaxInstructionBits {
			return fmt.Errorf("instruction bits must be between %d and %d", memory.MinInstructionBits, memory.MaxInstructionBits)
		}
		return nil
	})

	p.DataWords.SetDefault(DefaultDataWords)
	p.DataWords.SetHookPre(func(v prefs.Value) error {
		if v.(int) <= 0 {
			return fmt.Errorf("data words must be greater than zero")
		}
		return nil
	})

	if err := p.grp.Add("hardware.hardwiredzero", &p.HardwiredZero); err != nil {
		return nil, err
	}
	if err := p.grp.Add("hardware.instructionbits", &p.InstructionBits); err != nil {
		return nil, err
	}
	if err := p.grp.Add("hardware.datawords", &p.DataWords); err != nil {
		return nil, err
	}
	if err := p.grp.Add("hardware.logging", &p.Logging); err != nil {
		return nil, err
	}

	if err := p.grp.ApplyCommandLine(); err != nil {
		return nil, err
	}

	return p, nil
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	return p.grp.Reset()
}

// Set the preference with the specified key.
func (p *Preferences) Set(key string, v prefs.Value) error {
	return p.grp.Set(key, v)
}

// Keys returns the keys of every hardware preference.
func (p *Preferences) Keys() []string {
	return p.grp.Keys()
}
