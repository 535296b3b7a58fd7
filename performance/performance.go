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

package performance

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/romcheat/curated"
	"github.com/jetsetilly/romcheat/logger"
	"github.com/pkg/profile"
)

// Profile specifies the type of profile to create. Only one profile can be
// active at a time.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
)

// ParseProfile converts a profile name to a Profile. Valid names are "cpu",
// "mem" and "none". The empty string is the same as "none".
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return ProfileNone, nil
	case "cpu":
		return ProfileCPU, nil
	case "mem":
		return ProfileMem, nil
	}
	return ProfileNone, curated.Errorf("performance: unknown profile (%s)", s)
}

func (p Profile) String() string {
	switch p {
	case ProfileCPU:
		return "cpu"
	case ProfileMem:
		return "mem"
	}
	return "none"
}

// RunProfiler runs the function and profiles it as specified. The profile is
// written to a directory named after the profile type inside dir. The current
// directory is used if dir is empty.
func RunProfiler(p Profile, dir string, run func() error) error {
	var mode func(*profile.Profile)

	switch p {
	case ProfileNone:
		return run()
	case ProfileCPU:
		mode = profile.CPUProfile
	case ProfileMem:
		mode = profile.MemProfile
	default:
		return curated.Errorf("performance: unknown profile (%d)", int(p))
	}

	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return curated.Errorf("performance: %v", err)
		}
	}

	path := filepath.Join(dir, p.String())
	logger.Logf(logger.Allow, "performance", "%s profile: %s", p, path)

	defer profile.Start(mode, profile.ProfilePath(path), profile.Quiet, profile.NoShutdownHook).Stop()

	return run()
}
