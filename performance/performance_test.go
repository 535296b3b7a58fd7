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

package performance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/romcheat/performance"
	"github.com/jetsetilly/romcheat/test"
)

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("CPU")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile(" mem")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileMem)

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("trace")
	test.ExpectFailure(t, err)
}

func TestRunWithoutProfile(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, t.TempDir(), func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	// errors from the function are returned unchanged
	e := errors.New("run error")
	err = performance.RunProfiler(performance.ProfileNone, "", func() error {
		return e
	})
	test.ExpectEquality(t, err, e)
}

func TestCPUProfile(t *testing.T) {
	dir := t.TempDir()
	err := performance.RunProfiler(performance.ProfileCPU, dir, func() error {
		return nil
	})
	test.DemandSuccess(t, err)

	_, err = os.Stat(filepath.Join(dir, "cpu", "cpu.pprof"))
	test.ExpectSuccess(t, err)
}
