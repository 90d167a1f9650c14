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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/debugger/govern"
	"github.com/jetsetilly/singlecycle/hardware"
	"github.com/jetsetilly/singlecycle/hardware/cpu/result"
)

// the timer is only checked every brake ticks. checking the channel on every
// tick is measurably slower than the tick itself.
const brake = 1000

// sentinal error returned by the continue check when the duration has elapsed.
var timedOut = errors.New("performance timed out")

// Check the performance of the simulation. The machine runs the program it has
// already been loaded with for the specified duration, after which the number
// of ticks per second is written to output.
//
// Profiles are generated as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	if dur <= 0 {
		return curated.Errorf("performance: duration must be positive (%s)", duration)
	}

	var ticks int
	var elapsed time.Duration

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		startTime := time.Now()
		defer func() {
			elapsed = time.Since(startTime)
		}()

		performanceBrake := 0

		return m.Run(0, func(_ result.Tick) (govern.State, error) {
			ticks++
			performanceBrake++
			if performanceBrake < brake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case <-timer.C:
				return govern.Ending, timedOut
			default:
				return govern.Running, nil
			}
		})
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return curated.Errorf("performance: %v", err)
	}

	tps := float64(ticks) / elapsed.Seconds()
	_, err = io.WriteString(output, fmt.Sprintf("%.0f ticks per second (%d ticks in %.2f seconds)\n", tps, ticks, elapsed.Seconds()))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
