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

package cheats

import (
	"fmt"

	"github.com/jetsetilly/romcheat/curated"
	"github.com/jetsetilly/romcheat/logger"
)

// Patcher applies a list of codes to an image. Codes are processed in order
// and mirrored patches are applied in ascending bank order.
type Patcher struct {
	platform Platform

	// OnLog receives the human readable record of the run: one line for every
	// code and a summary of the changes made once all codes have been
	// processed. Can be nil.
	OnLog func(string)

	// by default a code that cannot be decoded stops the run. if SkipInvalid is
	// true the code is noted and the run continues with the next code
	SkipInvalid bool

	// Verbose adds detail about decoding and skipped patches to the central
	// logger
	Verbose bool
}

// NewPatcher is the preferred method of initialisation for the Patcher type.
func NewPatcher(platform Platform) (*Patcher, error) {
	if !platform.Valid() {
		return nil, curated.Errorf(UnknownPlatform, fmt.Sprintf("%d", int(platform)))
	}
	return &Patcher{platform: platform}, nil
}

// Platform returns the platform used to decode codes.
func (pt *Patcher) Platform() Platform {
	return pt.platform
}

// AllowLogging implements the logger.Permission interface.
func (pt *Patcher) AllowLogging() bool {
	return pt.Verbose
}

func (pt *Patcher) print(s string) {
	if pt.OnLog != nil {
		pt.OnLog(s)
	}
}

// Patch decodes and applies each code to the image. Empty codes are ignored.
//
// Returns the log of applied patches. If an error is returned the log contains
// the patches applied before the error.
func (pt *Patcher) Patch(img Image, codes ...string) (Log, error) {
	if img == nil {
		return nil, curated.Errorf(NoImage)
	}
	if w, ok := img.(writable); ok && !w.Writable() {
		return nil, curated.Errorf(ImageNotWritable)
	}

	var log Log

	for _, code := range codes {
		_, patches, ok, err := pt.decode(code, img)
		if err != nil {
			return log, err
		}
		if !ok {
			continue
		}

		for _, p := range patches {
			applied, err := apply(img, p)
			if err != nil {
				return log, err
			}
			if applied {
				log = log.add(p)
			} else {
				logger.Logf(pt, "cheats", "%s: skipped %s", p.Code, p)
			}
		}
	}

	pt.print(fmt.Sprintf("final changes:\n%s", log))

	return log, nil
}

// Decoded is the result of decoding a code without applying it.
type Decoded struct {
	Code    string
	Form    Form
	Patches []Patch

	// whether each entry in Patches would be applied to the image
	Applies []bool
}

// Preview decodes each code and reports the patches that would be applied.
// The image is not changed so each code is previewed against the original
// image data.
func (pt *Patcher) Preview(img Image, codes ...string) ([]Decoded, error) {
	if img == nil {
		return nil, curated.Errorf(NoImage)
	}

	var dec []Decoded

	for _, code := range codes {
		form, patches, ok, err := pt.decode(code, img)
		if err != nil {
			return dec, err
		}
		if !ok {
			continue
		}

		d := Decoded{
			Code:    code,
			Form:    form,
			Patches: patches,
			Applies: make([]bool, len(patches)),
		}

		for i, p := range patches {
			d.Applies[i], err = applies(img, p)
			if err != nil {
				return dec, err
			}
		}

		dec = append(dec, d)
	}

	return dec, nil
}

// decode a single code. the boolean return value is false if the code should
// be skipped.
func (pt *Patcher) decode(code string, img Image) (Form, []Patch, bool, error) {
	clean := Clean(code)
	if clean == "" {
		return Raw, nil, false, nil
	}

	pt.print(fmt.Sprintf("parsing code: %s", clean))

	form, patches, err := Decode(pt.platform, code, img)
	if err != nil {
		if !pt.SkipInvalid {
			return form, nil, false, err
		}
		logger.Logf(logger.Allow, "cheats", "skipping code: %v", err)
		pt.print(fmt.Sprintf("skipping code: %s: %v", clean, err))
		return form, nil, false, nil
	}

	logger.Logf(pt, "cheats", "%s: %s: %d candidate patches", clean, form, len(patches))

	return form, patches, true, nil
}
