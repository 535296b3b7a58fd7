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

package cheats_test

import (
	"testing"

	"github.com/jetsetilly/romcheat/cheats"
	"github.com/jetsetilly/romcheat/curated"
	"github.com/jetsetilly/romcheat/romimage"
	"github.com/jetsetilly/romcheat/test"
)

func TestClean(t *testing.T) {
	test.ExpectEquality(t, cheats.Clean(" ab-cd "), "ABCD")
	test.ExpectEquality(t, cheats.Clean("sxi-opo"), "SXIOPO")
	test.ExpectEquality(t, cheats.Clean("--"), "")
	test.ExpectEquality(t, cheats.Clean("   "), "")
	test.ExpectEquality(t, cheats.Clean("abcdef:12"), "ABCDEF:12")
}

func TestParsePlatform(t *testing.T) {
	for i, s := range []string{"1", "2", "3", "4", "5"} {
		p, err := cheats.ParsePlatform(s)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, cheats.Platforms[i])
	}

	p, err := cheats.ParsePlatform(" snes ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, cheats.SuperNintendo)

	p, err = cheats.ParsePlatform("sms")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, cheats.GameBoyFamily)

	_, err = cheats.ParsePlatform("6")
	test.ExpectSuccess(t, curated.Is(err, cheats.UnknownPlatform))
	_, err = cheats.ParsePlatform("0")
	test.ExpectFailure(t, err)
	_, err = cheats.ParsePlatform("atari")
	test.ExpectFailure(t, err)
}

// decode and check that the patch offsets are as expected
func decode(t *testing.T, platform cheats.Platform, code string, img cheats.Image, form cheats.Form, offsets ...int) []cheats.Patch {
	t.Helper()

	f, patches, err := cheats.Decode(platform, code, img)
	test.DemandSuccess(t, err, code)
	test.ExpectEquality(t, f, form, code)
	test.DemandEquality(t, len(patches), len(offsets), code)
	for i := range patches {
		test.ExpectEquality(t, patches[i].Offset, offsets[i], code, i)
		test.ExpectEquality(t, patches[i].Code, code, code, i)
	}
	return patches
}

func TestRawForm(t *testing.T) {
	img := romimage.NewBuffer(make([]byte, 0x10000))

	// PC Engine always adds the copier header
	p := decode(t, cheats.PCEngine, "1234:56", img, cheats.Raw, 0x1234+512)
	test.ExpectEquality(t, p[0].Data[0], 0x56)
	test.ExpectFailure(t, p[0].Conditional)

	// master system adds the header only when image is a multiple of 1KB
	decode(t, cheats.GameBoyFamily, "1234:56", img, cheats.Raw, 0x1234+512)
	hdr := romimage.NewBuffer(make([]byte, 0x10000+512))
	decode(t, cheats.GameBoyFamily, "1234:56", hdr, cheats.Raw, 0x1234)

	// other platforms use the address as is
	decode(t, cheats.Nintendo, "1234:56", img, cheats.Raw, 0x1234)
	decode(t, cheats.SuperNintendo, "12-34:56", img, cheats.Raw, 0x1234)
	decode(t, cheats.GenesisMegaDrive, " 1234:56 ", img, cheats.Raw, 0x1234)

	// malformed raw codes
	_, _, err := cheats.Decode(cheats.PCEngine, "12:3456", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
	_, _, err = cheats.Decode(cheats.PCEngine, ":56", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
	_, _, err = cheats.Decode(cheats.PCEngine, "12G4:56", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.InvalidHex))
	_, _, err = cheats.Decode(cheats.PCEngine, "1234:5Z", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.InvalidHex))

	// PC Engine has no other form
	_, _, err = cheats.Decode(cheats.PCEngine, "123456", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
}

func TestGameBoyShort(t *testing.T) {
	img := romimage.NewBuffer(make([]byte, 32768))

	// last digit is inverted and becomes the first digit of the address
	p := decode(t, cheats.GameBoyFamily, "AB0-00F", img, cheats.GameBoyShort, 0, 8192, 16384, 24576, 32768)
	test.ExpectEquality(t, p[0].Data[0], 0xab)
	test.ExpectFailure(t, p[0].Conditional)

	decode(t, cheats.GameBoyFamily, "000000", img, cheats.GameBoyShort, 0xf000, 0xf000+8192, 0xf000+16384, 0xf000+24576, 0xf000+32768)

	p = decode(t, cheats.GameBoyFamily, "3E0-D0F", img, cheats.GameBoyShort, 0x0d0, 0x0d0+8192, 0x0d0+16384, 0x0d0+24576, 0x0d0+32768)
	test.ExpectEquality(t, p[0].Data[0], 0x3e)
	test.ExpectEquality(t, p[0].String(), "d0:3e")

	_, _, err := cheats.Decode(cheats.GameBoyFamily, "3E0-D0", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
	_, _, err = cheats.Decode(cheats.GameBoyFamily, "3E0-D0X", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.InvalidSymbol))
}

func TestGameBoyLong(t *testing.T) {
	img := romimage.NewBuffer(make([]byte, 16384))

	p := decode(t, cheats.GameBoyFamily, "012-34F-567", img, cheats.GameBoyLong, 0x234, 0x234+8192, 0x234+16384)
	test.ExpectEquality(t, p[0].Data[0], 0x01)
	test.ExpectSuccess(t, p[0].Conditional)
	test.ExpectEquality(t, p[0].Compare, 0x6f)
	test.ExpectEquality(t, p[0].String(), "234:6f:1")

	// the eighth digit plays no part
	q := decode(t, cheats.GameBoyFamily, "012-34F-5F7", img, cheats.GameBoyLong, 0x234, 0x234+8192, 0x234+16384)
	test.ExpectEquality(t, q[0].Compare, p[0].Compare)

	p = decode(t, cheats.GameBoyFamily, "00A-17B-C3E", img, cheats.GameBoyLong, 0x4a17, 0x4a17+8192, 0x4a17+16384)
	test.ExpectEquality(t, p[0].Compare, 0x09)
	test.ExpectEquality(t, p[0].Data[0], 0x00)
}

func TestGenesis(t *testing.T) {
	img := romimage.NewBuffer(make([]byte, 0x10000))

	p := decode(t, cheats.GenesisMegaDrive, "RFAA-A6T2", img, cheats.Genesis, 0x4018)
	test.DemandEquality(t, len(p[0].Data), 2)
	test.ExpectEquality(t, p[0].Data[0], 0x4e)
	test.ExpectEquality(t, p[0].Data[1], 0x71)
	test.ExpectFailure(t, p[0].Conditional)
	test.ExpectEquality(t, p[0].String(), "4018:4e71")

	p = decode(t, cheats.GenesisMegaDrive, "ACLA-AAT2", img, cheats.Genesis, 0x9418)
	test.ExpectEquality(t, p[0].Data[0], 0x40)
	test.ExpectEquality(t, p[0].Data[1], 0x00)
	test.ExpectEquality(t, p[0].String(), "9418:4000")

	p = decode(t, cheats.GenesisMegaDrive, "AJBT-AA4A", img, cheats.Genesis, 0x340)
	test.ExpectEquality(t, p[0].Data[0], 0x60)
	test.ExpectEquality(t, p[0].Data[1], 0x02)

	_, _, err := cheats.Decode(cheats.GenesisMegaDrive, "AJBT-AA4", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))

	// I, O, Q and U are not in the alphabet
	_, _, err = cheats.Decode(cheats.GenesisMegaDrive, "AJBT-AA4I", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.InvalidSymbol))
}

func TestNESShort(t *testing.T) {
	// single bank and no header
	img := romimage.NewBuffer(make([]byte, 40960))
	p := decode(t, cheats.Nintendo, "SXIOPO", img, cheats.NESShort, 0x11d9)
	test.ExpectEquality(t, p[0].Data[0], 0xad)
	test.ExpectFailure(t, p[0].Conditional)

	// single bank with header
	img = romimage.NewBuffer(make([]byte, 40960+16))
	decode(t, cheats.Nintendo, "SXIOPO", img, cheats.NESShort, 0x11d9+16)

	// multiple banks with header
	img = romimage.NewBuffer(make([]byte, 49169))
	decode(t, cheats.Nintendo, "SXIOPO", img, cheats.NESShort,
		0x11d9+16, 0x11d9+16+8192, 0x11d9+16+16384, 0x11d9+16+24576, 0x11d9+16+32768, 0x11d9+16+40960, 0x11d9+16+49152)

	// multiple banks without header
	img = romimage.NewBuffer(make([]byte, 65536))
	p = decode(t, cheats.Nintendo, "GOSSIP", img, cheats.NESShort,
		0xd1dd, 0xf1dd, 0x111dd, 0x131dd, 0x151dd, 0x171dd, 0x191dd, 0x1b1dd, 0x1d1dd)
	test.ExpectEquality(t, p[0].Data[0], 0x14)

	_, _, err := cheats.Decode(cheats.Nintendo, "SXIOP", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
	_, _, err = cheats.Decode(cheats.Nintendo, "SXIOPB", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.InvalidSymbol))
}

func TestNESLong(t *testing.T) {
	img := romimage.NewBuffer(make([]byte, 65536))

	// addresses below 0xc000 produce negative offsets for the first banks
	p := decode(t, cheats.Nintendo, "ZEX-PYG-LA", img, cheats.NESLong,
		-11097, -2905, 5287, 13479, 21671, 29863, 38055, 46247, 54439)
	test.ExpectSuccess(t, p[0].Conditional)
	test.ExpectEquality(t, p[0].Compare, 0x03)
	test.ExpectEquality(t, p[0].Data[0], 0x02)

	p = decode(t, cheats.Nintendo, "GOSSIPAE", img, cheats.NESLong,
		4573, 12765, 20957, 29149, 37341, 45533, 53725, 61917, 70109)
	test.ExpectEquality(t, p[0].Compare, 0x00)
	test.ExpectEquality(t, p[0].Data[0], 0x1c)

	// header
	img = romimage.NewBuffer(make([]byte, 65536+16))
	decode(t, cheats.Nintendo, "GOSSIPAE", img, cheats.NESLong,
		4589, 12781, 20973, 29165, 37357, 45549, 53741, 61933, 70125)

	_, _, err := cheats.Decode(cheats.Nintendo, "GOSSIPA", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
}

func snesImage(size int, header int, mapMode uint8) *romimage.Buffer {
	d := make([]byte, size)
	d[0xffd5+header] = mapMode
	return romimage.NewBuffer(d)
}

func TestSNES(t *testing.T) {
	lorom := snesImage(1048576, 0, 0x20)
	hirom := snesImage(1048576, 0, 0x21)
	hiromFast := snesImage(1048576, 0, 0x31)
	header := snesImage(1048576+512, 512, 0x20)

	p := decode(t, cheats.SuperNintendo, "C2AB-6DAF", lorom, cheats.SNES, 0x4693)
	test.ExpectEquality(t, p[0].Data[0], 0xad)
	test.ExpectFailure(t, p[0].Conditional)
	decode(t, cheats.SuperNintendo, "C2AB-6DAF", hirom, cheats.SNES, 0xc693)
	decode(t, cheats.SuperNintendo, "C2AB-6DAF", hiromFast, cheats.SNES, 0xc693)
	decode(t, cheats.SuperNintendo, "C2AB-6DAF", header, cheats.SNES, 0x4893)

	p = decode(t, cheats.SuperNintendo, "DD62-6DAD", lorom, cheats.SNES, 0x2d3)
	test.ExpectEquality(t, p[0].Data[0], 0x00)
	decode(t, cheats.SuperNintendo, "DD62-6DAD", hirom, cheats.SNES, 0x82d3)

	p = decode(t, cheats.SuperNintendo, "F3C7-6DBD", lorom, cheats.SNES, 0x22232)
	test.ExpectEquality(t, p[0].Data[0], 0x1e)

	// mirrored windows are folded into ROM space
	decode(t, cheats.SuperNintendo, "6D15-8464", hirom, cheats.SNES, 0x6a7a)
	decode(t, cheats.SuperNintendo, "6D15-8464", lorom, cheats.SNES, 0x206a7a)
	decode(t, cheats.SuperNintendo, "6D5F-B4DF", hirom, cheats.SNES, 0x7618)

	// a map mode byte outside the image reads as zero
	small := romimage.NewBuffer(make([]byte, 1024))
	decode(t, cheats.SuperNintendo, "DD62-6DAD", small, cheats.SNES, 0x2d3)

	_, _, err := cheats.Decode(cheats.SuperNintendo, "DD62-6DA", lorom)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode))
	_, _, err = cheats.Decode(cheats.SuperNintendo, "DD62-6DAG", lorom)
	test.ExpectSuccess(t, curated.Is(err, cheats.InvalidSymbol))
}

func TestUnrecognisedLength(t *testing.T) {
	img := romimage.NewBuffer(make([]byte, 32768))
	for _, p := range cheats.Platforms {
		_, _, err := cheats.Decode(p, " ab-cd ", img)
		test.ExpectSuccess(t, curated.Is(err, cheats.UnrecognisedCode), p)
	}

	_, _, err := cheats.Decode(cheats.Platform(0), "ABCD", img)
	test.ExpectSuccess(t, curated.Is(err, cheats.UnknownPlatform))
}

func TestBankMirrorCount(t *testing.T) {
	for _, size := range []int{1024, 8191, 8192, 8193, 32768, 40976, 65536, 65536 + 512} {
		img := romimage.NewBuffer(make([]byte, size))
		n := size/8192 + 1

		_, p, err := cheats.Decode(cheats.GameBoyFamily, "00000F", img)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, len(p), n, size)
		for k := range p {
			test.ExpectEquality(t, p[k].Offset, p[0].Offset+8192*k, size, k)
		}

		_, p, err = cheats.Decode(cheats.Nintendo, "GOSSIPAE", img)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, len(p), n, size)
	}
}
