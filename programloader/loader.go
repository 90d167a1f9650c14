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
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/singlecycle/archivefs"
	"github.com/jetsetilly/singlecycle/curated"
	"github.com/jetsetilly/singlecycle/hardware/cpu/instruction"
)

// Sentinal error patterns for the Loader type.
const (
	UnexpectedHash    = "programloader: unexpected hash value (%s)"
	UnsupportedScheme = "programloader: unsupported URL scheme (%s)"
)

// Loader is used to specify the program to load into the instruction store.
type Loader struct {
	// filename of program to load. can be a URL with an http or https scheme
	Filename string

	// expected hash of the loaded program. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded file
	Hash string

	// the parsed program. subsequent calls to Load() will not change this
	// field
	Data []instruction.Encoded
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	return strings.TrimSuffix(filepath.Base(ld.Filename), filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// read the raw file data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files. Local files can be inside a zip archive.
func (ld Loader) read() ([]byte, error) {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, curated.Errorf("programloader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, curated.Errorf("programloader: %v", resp.Status)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, curated.Errorf("programloader: %v", err)
		}
		return data, nil

	case "file", "":
		data, err := archivefs.ReadFile(strings.TrimPrefix(ld.Filename, "file://"))
		if err != nil {
			return nil, curated.Errorf("programloader: %v", err)
		}
		return data, nil
	}

	// single letter schemes are windows drive letters
	if len(scheme) == 1 {
		data, err := archivefs.ReadFile(ld.Filename)
		if err != nil {
			return nil, curated.Errorf("programloader: %v", err)
		}
		return data, nil
	}

	return nil, curated.Errorf(UnsupportedScheme, scheme)
}

// Load and parse the program. The Data field is only set if the program parses
// without error and the hash matches the expected hash (if there is one).
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	raw, err := ld.read()
	if err != nil {
		return err
	}

	hash := fmt.Sprintf("%x", sha1.Sum(raw))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	data, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}
