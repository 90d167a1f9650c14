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

package programloader

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
)

// Sentinal error patterns for the Parse() function.
const (
	MalformedLine = "programloader: line %d: malformed instruction word (%s)"
	EmptyProgram  = "programloader: program is empty"
)

// stripComment removes any comment from the line.
func stripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	return line
}

// Parse the program text. An empty program is an error.
func Parse(r io.Reader) ([]instruction.Encoded, error) {
	var program []instruction.Encoded

	scanner := bufio.NewScanner(r)
	var lineNum int
	for scanner.Scan() {
		lineNum++

		word := strings.Join(strings.Fields(stripComment(scanner.Text())), "")
		if word == "" {
			continue
		}

		digits := strings.TrimPrefix(strings.TrimPrefix(word, "0x"), "0X")
		if digits == "" || len(digits) > 8 {
			return nil, curated.Errorf(MalformedLine, lineNum, word)
		}

		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return nil, curated.Errorf(MalformedLine, lineNum, word)
		}

		program = append(program, instruction.Encoded(v))
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("programloader: %v", err)
	}

	if len(program) == 0 {
		return nil, curated.Errorf(EmptyProgram)
	}

	return program, nil
}

// Format writes the program in the form understood by Parse(). Each line is
// commented with the line's address.
func Format(w io.Writer, program []instruction.Encoded) error {
	for i, v := range program {
		if _, err := io.WriteString(w, v.String()+" # "+strconv.Itoa(i)+"\n"); err != nil {
			return curated.Errorf("programloader: %v", err)
		}
	}
	return nil
}
