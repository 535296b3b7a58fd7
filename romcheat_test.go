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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/romcheat/test"
)

func writeImage(t *testing.T, name string, size int) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, size), 0o644))
	return fn
}

func TestPatchMode(t *testing.T) {
	in := writeImage(t, "game.gb", 32768)
	out := filepath.Join(filepath.Dir(in), "patched.gb")

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(tw, []string{"-mode", "gb", "AB0-00F+ +0100:ff", in, out}), 0, tw.String())

	expected := "parsing code: AB000F\n" +
		"parsing code: 0100:FF\n" +
		"final changes:\n" +
		"  0100:ff - 300:ff\n" +
		"  AB0-00F - 6000:ab\n" +
		"  AB0-00F - 4000:ab\n" +
		"  AB0-00F - 2000:ab\n" +
		"  AB0-00F - 0:ab\n"
	test.ExpectSuccess(t, tw.Compare(expected), tw.String())

	d, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(d), 32768)
	test.ExpectEquality(t, d[0x2000], 0xab)
	test.ExpectEquality(t, d[0x300], 0xff)

	// input is unchanged
	d, err = os.ReadFile(in)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0x2000], 0x00)
}

func TestPatchModeErrors(t *testing.T) {
	in := writeImage(t, "game.nes", 40960)
	out := filepath.Join(filepath.Dir(in), "patched.nes")

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(tw, []string{"PATCH", "-mode", "3", "SXIOPO", in, in}), 20)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "* error in PATCH mode: romcheat: input and output must be different files"), tw.String())

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"-mode", "3", "SXIOPO", in}), 20)

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"-mode", "9", "SXIOPO", in, out}), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "unknown platform"), tw.String())

	// invalid code stops the run unless -skip is given
	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"-mode", "nes", "SXIOPB+SXIOPO", in, out}), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "invalid symbol (B)"), tw.String())

	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"-mode", "nes", "-skip", "SXIOPB+SXIOPO", in, out}), 0, tw.String())
	d, err := os.ReadFile(out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0x11d9], 0xad)
}

func TestDecodeMode(t *testing.T) {
	in := writeImage(t, "game.bin", 16)

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(tw, []string{"DECODE", "-mode", "md", "BAAA-AAAA", in}), 0, tw.String())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "BAAA-AAAA [Genesis / Mega Drive, genesis game genie]\n  0:0008\n"), tw.String())

	// nothing is written in decode mode
	d, err := os.ReadFile(in)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[1], 0x00)

	graph := filepath.Join(t.TempDir(), "decoded.dot")
	tw.Clear()
	test.ExpectEquality(t, launch(tw, []string{"DECODE", "-mode", "md", "-memviz", graph, "BAAA-AAAA", in}), 0, tw.String())
	_, err = os.Stat(graph)
	test.ExpectSuccess(t, err)
}

func TestVersionMode(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(tw, []string{"version"}), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Romcheat "), tw.String())
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(tw, []string{"-help"}), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "available sub-modes: PATCH, DECODE, VERSION"), tw.String())
}

func TestSplitCodes(t *testing.T) {
	c := splitCodes("ABCD-EFGH+1234:56+")
	test.DemandEquality(t, len(c), 3)
	test.ExpectEquality(t, c[0], "ABCD-EFGH")
	test.ExpectEquality(t, c[1], "1234:56")
	test.ExpectEquality(t, c[2], "")
}

func TestSamePath(t *testing.T) {
	test.ExpectSuccess(t, samePath("a/b.rom", "a/../a/b.rom"))
	test.ExpectFailure(t, samePath("a/b.rom", "a/c.rom"))
}
