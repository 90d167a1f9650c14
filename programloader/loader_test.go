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

package programloader_test

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
	"github.com/jetsetilly/singlecycle/programloader"
	"github.com/jetsetilly/singlecycle/test"
)

const sampleProgram = `# sample program
0x20090003      # addi $9, $0, 3
20 0a 00 07     // addi $10, $0, 7

012a4020
ac080000
`

func TestParse(t *testing.T) {
	p, err := programloader.Parse(strings.NewReader(sampleProgram))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(p), 4)
	test.ExpectEquality(t, p[0], instruction.Encoded(0x20090003))
	test.ExpectEquality(t, p[1], instruction.Encoded(0x200a0007))
	test.ExpectEquality(t, p[2], instruction.Encoded(0x012a4020))
	test.ExpectEquality(t, p[3], instruction.Encoded(0xac080000))

	// upper case prefix and digits
	p, err = programloader.Parse(strings.NewReader("0XAC080000"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p[0], instruction.Encoded(0xac080000))
}

func TestParseErrors(t *testing.T) {
	_, err := programloader.Parse(strings.NewReader("0x20090003\n\nnonsense\n"))
	test.ExpectSuccess(t, curated.Is(err, programloader.MalformedLine))
	test.ExpectEquality(t, err.Error(), "programloader: line 3: malformed instruction word (nonsense)")

	// too many digits
	_, err = programloader.Parse(strings.NewReader("0x123456789"))
	test.ExpectSuccess(t, curated.Is(err, programloader.MalformedLine))

	// prefix only
	_, err = programloader.Parse(strings.NewReader("0x"))
	test.ExpectSuccess(t, curated.Is(err, programloader.MalformedLine))

	// only comments
	_, err = programloader.Parse(strings.NewReader("# nothing\n// here\n"))
	test.ExpectSuccess(t, curated.Is(err, programloader.EmptyProgram))
}

func TestFormat(t *testing.T) {
	p, err := programloader.Parse(strings.NewReader(sampleProgram))
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.ExpectSuccess(t, programloader.Format(w, p))
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "20090003 # 0\n200a0007 # 1\n"))

	// formatted program parses to the same program
	q, err := programloader.Parse(strings.NewReader(w.String()))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(q), len(p))
	for i := range p {
		test.ExpectEquality(t, q[i], p[i], i)
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sample.hex")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(sampleProgram), 0o600))

	ld := programloader.NewLoader(fn)
	test.ExpectEquality(t, ld.ShortName(), "sample")
	test.ExpectFailure(t, ld.HasLoaded())

	test.DemandSuccess(t, ld.Load())
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum([]byte(sampleProgram))))

	// hash is checked if it is specified
	ld = programloader.NewLoader(fn)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.UnexpectedHash))
	test.ExpectFailure(t, ld.HasLoaded())

	// missing file
	ld = programloader.NewLoader(filepath.Join(t.TempDir(), "missing.hex"))
	test.ExpectFailure(t, ld.Load())

	// unsupported scheme
	ld = programloader.NewLoader("ftp://example.com/sample.hex")
	err = ld.Load()
	test.ExpectSuccess(t, curated.Is(err, programloader.UnsupportedScheme))
}

func TestLoadArchive(t *testing.T) {
	zfn := filepath.Join(t.TempDir(), "programs.zip")
	f, err := os.Create(zfn)
	test.DemandSuccess(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("examples/sample.hex")
	test.DemandSuccess(t, err)
	_, err = w.Write([]byte(sampleProgram))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, zw.Close())
	test.DemandSuccess(t, f.Close())

	ld := programloader.NewLoader(filepath.Join(zfn, "examples", "sample.hex"))
	test.ExpectEquality(t, ld.ShortName(), "sample")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)
	test.ExpectEquality(t, ld.Hash, fmt.Sprintf("%x", sha1.Sum([]byte(sampleProgram))))

	// the archive itself is not a program
	ld = programloader.NewLoader(zfn)
	test.ExpectFailure(t, ld.Load())
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sample.hex" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, sampleProgram)
	}))
	defer srv.Close()

	ld := programloader.NewLoader(srv.URL + "/sample.hex")
	test.DemandSuccess(t, ld.Load())
	test.ExpectEquality(t, len(ld.Data), 4)

	ld = programloader.NewLoader(srv.URL + "/missing.hex")
	test.ExpectFailure(t, ld.Load())
}
