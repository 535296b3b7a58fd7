// This file is part of Romcheat.
//
// Romcheat is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romcheat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romcheat.  If not, see <https://www.gnu.org/licenses/>.

package romimage

import (
	"archive/zip"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romcheat/curated"
	"github.com/jetsetilly/romcheat/logger"
)

// Loader reads image data from a file, an archive or a URL.
type Loader struct {
	// filename of image to load. see the package documentation for how to
	// refer to a file inside an archive
	Filename string

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
	}
}

// ShortName returns the base of the filename without the extension.
func (ld Loader) ShortName() string {
	s := path.Base(filepath.ToSlash(ld.Filename))
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successful.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data. Calling Load() more than once has no effect.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = strings.ToLower(u.Scheme)
	}

	var err error

	switch scheme {
	case "http", "https":
		ld.Data, err = fetch(ld.Filename)
	case "file":
		ld.Data, err = readFile(ld.Filename)
	default:
		// windows drive letters look like a URL scheme
		if len(scheme) == 1 {
			ld.Data, err = readFile(ld.Filename)
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}

	if err != nil {
		ld.Data = nil
		return curated.Errorf("romimage: %v", err)
	}

	if len(ld.Data) == 0 {
		return curated.Errorf("romimage: %v", "image is empty")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("romimage: %v", "unexpected hash value")
	}
	ld.Hash = hash

	logger.Logf(logger.Allow, "romimage", "loaded %s (%d bytes) sha1 %s", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

func fetch(u string) ([]byte, error) {
	resp, err := http.Get(u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// readFile reads a plain file, the only member of an archive or a named file
// inside an archive.
func readFile(filename string) ([]byte, error) {
	filename = filepath.Clean(filename)

	fi, err := os.Stat(filename)
	if err == nil {
		if fi.IsDir() {
			return nil, fmt.Errorf("%s is a directory", filename)
		}

		zf, err := zip.OpenReader(filename)
		if err == nil {
			defer zf.Close()
			return readOnlyMember(&zf.Reader)
		}
		if !errors.Is(err, zip.ErrFormat) {
			return nil, err
		}

		return os.ReadFile(filename)
	}

	// the file doesn't exist so look for an archive somewhere in the path.
	// the archive is the longest existing prefix of the path
	archive := filename
	var member []string

	for {
		parent := filepath.Dir(archive)
		if parent == archive {
			return nil, err
		}
		member = append([]string{filepath.Base(archive)}, member...)
		archive = parent

		afi, aerr := os.Stat(archive)
		if aerr != nil {
			continue
		}
		if afi.IsDir() {
			return nil, err
		}

		zf, zerr := zip.OpenReader(archive)
		if zerr != nil {
			return nil, err
		}
		defer zf.Close()

		// paths inside zip files always use forward slashes
		f, zerr := zf.Open(path.Join(member...))
		if zerr != nil {
			return nil, zerr
		}
		defer f.Close()

		return io.ReadAll(f)
	}
}

func readOnlyMember(zr *zip.Reader) ([]byte, error) {
	var files []*zip.File
	for _, f := range zr.File {
		if !f.FileInfo().IsDir() {
			files = append(files, f)
		}
	}

	if len(files) != 1 {
		return nil, fmt.Errorf("archive contains %d files: name the file to use", len(files))
	}

	r, err := files[0].Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
