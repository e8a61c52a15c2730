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

// Package version reports the version of armbf. The release number is set at
// link time:
//
//	go build -ldflags "-X github.com/eigenform/armbf/version.number=v0.1.0"
//
// Builds without a release number are described by the VCS information
// embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name of the application.
const ApplicationName = "armbf"

// set by the linker
var number string

// Info describes the build.
type Info struct {
	Version   string
	Revision  string
	GoVersion string
	Release   bool
}

func (inf Info) String() string {
	return fmt.Sprintf("%s %s (%s) %s", ApplicationName, inf.Version, inf.Revision, inf.GoVersion)
}

// Version returns the version information for the running binary.
func Version() Info {
	return describe(number, debug.ReadBuildInfo)
}

// describe is separate from Version() so that the build information can be
// replaced in tests.
func describe(number string, readBuildInfo func() (*debug.BuildInfo, bool)) Info {
	var inf Info
	var vcs bool
	var modified bool

	if bi, ok := readBuildInfo(); ok {
		inf.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				inf.Revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if inf.Revision == "" {
		inf.Revision = "no revision information"
	} else if modified {
		inf.Revision = fmt.Sprintf("%s+dirty", inf.Revision)
	}

	switch {
	case number != "":
		inf.Version = number
		inf.Release = true
	case vcs:
		inf.Version = "unreleased"
	default:
		inf.Version = "local"
	}

	return inf
}
