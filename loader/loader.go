// This file is part of armbf.
//
// armbf is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// armbf is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with armbf.  If not, see <https://www.gnu.org/licenses/>.

package loader

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/eigenform/armbf/curated"
	"github.com/eigenform/armbf/logger"
)

// Sentinal error patterns.
const (
	TruncatedInput    = "loader: input of %d bytes is not a multiple of %d"
	UnsupportedScheme = "loader: unsupported URL scheme (%s)"
	UnexpectedHash    = "loader: unexpected hash value"
)

// Loader is used to specify the binary data to decode.
type Loader struct {
	// filename of the binary to load. can be a URL
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
		Filename: strings.TrimSpace(filename),
	}
}

// NewLoaderFromData creates a Loader for data that is already in memory. The
// name is used in place of a filename.
func NewLoaderFromData(name string, data []byte) Loader {
	return Loader{
		Filename: name,
		Hash:     fmt.Sprintf("%x", sha1.Sum(data)),
		Data:     data,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the data. Loader filenames with a valid schema will use that method
// to load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	filename := ld.Filename

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
		if scheme == "file" {
			filename = u.Path
		}
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf("loader: %v", resp.Status)
		}

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	case "file", "":
		ld.Data, err = os.ReadFile(filename)
		if err != nil {
			return curated.Errorf("loader: %v", err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	// generate hash
	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(UnexpectedHash)
	}

	ld.Hash = hash

	logger.Logf(logger.Allow, "loader", "%s: %d bytes (%s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

// Words returns the loaded data as a list of big-endian ARM instruction
// words. The length of the data must be a multiple of four.
func (ld Loader) Words() ([]uint32, error) {
	if len(ld.Data)%4 != 0 {
		return nil, curated.Errorf(TruncatedInput, len(ld.Data), 4)
	}

	w := make([]uint32, len(ld.Data)/4)
	for i := range w {
		w[i] = binary.BigEndian.Uint32(ld.Data[i*4:])
	}
	return w, nil
}

// Halfwords returns the loaded data as a list of big-endian Thumb
// instruction halfwords. The length of the data must be a multiple of two.
func (ld Loader) Halfwords() ([]uint16, error) {
	if len(ld.Data)%2 != 0 {
		return nil, curated.Errorf(TruncatedInput, len(ld.Data), 2)
	}

	h := make([]uint16, len(ld.Data)/2)
	for i := range h {
		h[i] = binary.BigEndian.Uint16(ld.Data[i*2:])
	}
	return h, nil
}
