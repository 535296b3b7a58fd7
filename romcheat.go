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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/romcheat/cheats"
	"github.com/jetsetilly/romcheat/curated"
	"github.com/jetsetilly/romcheat/logger"
	"github.com/jetsetilly/romcheat/modalflag"
	"github.com/jetsetilly/romcheat/performance"
	"github.com/jetsetilly/romcheat/romimage"
	"github.com/jetsetilly/romcheat/statsview"
	"github.com/jetsetilly/romcheat/terminal"
	"github.com/jetsetilly/romcheat/version"
)

// codes on the command line are joined with this separator.
const codeSeparator = "+"

// pen used to tint the summary of changes when output is a terminal.
const summaryPen = "green"

const modeHelp = `platform modes:
  1  GB    Game Boy, Game Boy Color, Game Gear, Master System
  2  MD    Genesis, Mega Drive
  3  NES   Nintendo Entertainment System, Famicom
  4  SNES  Super Nintendo, Super Famicom
  5  PCE   PC Engine, TurboGrafx-16

multiple codes are joined with a plus sign. for example:
  ABCD-EFGH+1234:56`

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch runs the program with the arguments and returns the exit value.
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("PATCH", "DECODE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "PATCH":
		err = patch(md, output)

	case "DECODE":
		err = decode(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

func patch(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mode := md.AddString("mode", "1", "platform mode: 1-5 or name")
	skip := md.AddBool("skip", false, "skip codes that cannot be decoded")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	profile := md.AddString("profile", "none", "run through profiler: CPU, MEM")
	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	md.AdditionalHelp(modeHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	switch len(md.RemainingArgs()) {
	case 0, 1, 2:
		return fmt.Errorf("codes, input and output files required for %s mode", md)
	case 3:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	platform, err := cheats.ParsePlatform(*mode)
	if err != nil {
		return err
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	pt, err := cheats.NewPatcher(platform)
	if err != nil {
		return err
	}
	pt.SkipInvalid = *skip
	pt.Verbose = *log
	pt.OnLog = onLog(output)

	return performance.RunProfiler(prof, "", func() error {
		return patchFile(pt, splitCodes(md.GetArg(0)), md.GetArg(1), md.GetArg(2))
	})
}

// patchFile copies the input image to the output file and patches the copy.
// the input file is never changed.
func patchFile(pt *cheats.Patcher, codes []string, input string, output string) (rerr error) {
	if samePath(input, output) {
		return curated.Errorf("romcheat: input and output must be different files")
	}

	ld := romimage.NewLoader(input)
	if err := ld.Load(); err != nil {
		return err
	}

	img, err := romimage.Create(output, ld.Data)
	if err != nil {
		return err
	}
	defer func() {
		if err := img.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	logger.Logf(logger.Allow, "romcheat", "patching %s (%s) with %d codes", ld.ShortName(), pt.Platform(), len(codes))

	_, err = pt.Patch(img, codes...)
	return err
}

func decode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	mode := md.AddString("mode", "1", "platform mode: 1-5 or name")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	graph := md.AddString("memviz", "", "write decoded patches to file as graphviz dot")
	md.AdditionalHelp(modeHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setEcho(*log, output)

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("codes and input file required for %s mode", md)
	case 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	platform, err := cheats.ParsePlatform(*mode)
	if err != nil {
		return err
	}

	pt, err := cheats.NewPatcher(platform)
	if err != nil {
		return err
	}
	pt.Verbose = *log

	ld := romimage.NewLoader(md.GetArg(1))
	if err := ld.Load(); err != nil {
		return err
	}

	dec, err := pt.Preview(romimage.NewReadOnlyBuffer(ld.Data), splitCodes(md.GetArg(0))...)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %d bytes (sha1 %s)\n", ld.ShortName(), len(ld.Data), ld.Hash)
	writeDecoded(output, platform, dec)

	if *graph != "" {
		f, err := os.Create(*graph)
		if err != nil {
			return curated.Errorf("romcheat: %v", err)
		}
		defer f.Close()
		memviz.Map(f, &dec)
	}

	return nil
}

func writeDecoded(output io.Writer, platform cheats.Platform, dec []cheats.Decoded) {
	for _, d := range dec {
		fmt.Fprintf(output, "%s [%s, %s]\n", d.Code, platform, d.Form)
		for i, p := range d.Patches {
			if d.Applies[i] {
				fmt.Fprintf(output, "  %s\n", p)
			} else {
				fmt.Fprintf(output, "  %s (skipped)\n", p)
			}
		}
	}
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, r)
	} else {
		fmt.Fprintln(output, version.String())
	}

	return nil
}

// onLog returns a function suitable for the OnLog field of cheats.Patcher.
// output is colorized if it is a terminal.
func onLog(output io.Writer) func(string) {
	var w io.Writer = output
	if f, ok := output.(*os.File); ok && terminal.IsTerminal(f) {
		w = logger.NewColorizer(output, summaryPen)
	}
	return func(s string) {
		io.WriteString(w, s+"\n")
	}
}

func setEcho(echo bool, output io.Writer) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

// splitCodes splits the codes argument. empty codes are kept and are ignored
// by the patcher.
func splitCodes(s string) []string {
	return strings.Split(s, codeSeparator)
}

func samePath(a, b string) bool {
	if p, err := filepath.Abs(a); err == nil {
		a = p
	}
	if p, err := filepath.Abs(b); err == nil {
		b = p
	}
	return filepath.Clean(a) == filepath.Clean(b)
}
