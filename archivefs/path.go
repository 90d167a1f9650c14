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

package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/singlecycle/curated"
)

// IsDirectory is returned by Open() when the path refers to a directory or to
// the root of an archive.
const IsDirectory = "archivefs: %s is a directory"

// Path represents a single destination in the file system.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, we split the in-zip path into the path
	// to a file and the file itself
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// IsDir returns true if Path is currently set to a directory. For the purposes
// of archivefs, the root of an archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each part of the path is checked in turn and the first part
// that is a zip archive is opened. The remaining parts of the path are
// resolved inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	// clean path and split into parts
	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split will remove a leading filepath.Separator. we need to add
	// one back so that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	// reuse path string
	pth = ""

	for _, l := range lst {
		pth = filepath.Join(pth, l)

		if afs.zf != nil {
			// zip archives always use forward slashes
			p := path.Join(afs.inZipPath, l)

			zfi, err := fs.Stat(afs.zf, p)
			if err != nil {
				return curated.Errorf("archivefs: %v", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

			continue
		}

		fi, err := os.Stat(pth)
		if err != nil {
			return curated.Errorf("archivefs: %v", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(pth)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			return curated.Errorf("archivefs: %v", err)
		}
	}

	// make sure path is clean
	afs.current = filepath.Clean(pth)

	return nil
}

// Open and return an io.ReadCloser for the file previously set by Set().
func (afs Path) Open() (io.ReadCloser, error) {
	if afs.isDir {
		return nil, curated.Errorf(IsDirectory, afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, curated.Errorf("archivefs: %v", err)
		}
		return f, nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}
	return f, nil
}

// ReadFile returns the entire contents of the file, which can be inside an
// archive.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	if err := afs.Set(filename); err != nil {
		return nil, err
	}
	defer afs.Close()

	f, err := afs.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, curated.Errorf("archivefs: %v", err)
	}

	return data, nil
}
