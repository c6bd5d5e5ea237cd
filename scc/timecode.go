package scc

import (
	"fmt"
	"math/big"

	"github.com/alecthomas/participle"

	"github.com/sandflow/ttconv/unit"
)

// DefaultDropFrameRate and DefaultNonDropFrameRate are the two nominal
// SMPTE frame rates CEA-608 streams are authored against, grounded on
// time_codes.py's DEFAULT_DF_FRAME_RATE/DEFAULT_NDF_FRAME_RATE.
var (
	DefaultDropFrameRate    = big.NewRat(30000, 1001)
	DefaultNonDropFrameRate = big.NewRat(30, 1)
)

// timeCodeAST is the grammar alecthomas/participle parses a SMPTE time
// code against: four two-digit fields, the first three always separated
// by a colon and the last by either a colon or a semicolon — a
// semicolon marks the time code drop-frame. time_codes.py expresses the
// non-drop and drop-frame forms as two separate regular expressions
// (SMPTE_TIME_CODE_NDF_PATTERN/SMPTE_TIME_CODE_DF_PATTERN); collapsing
// them into a single participle grammar avoids trying the NDF pattern
// first and falling back to the DF one.
type timeCodeAST struct {
	Hours   int    `@Int ":"`
	Minutes int    `@Int ":"`
	Seconds int    `@Int`
	Sep     string `@(":" | ";")`
	Frames  int    `@Int`
}

var timeCodeParser = participle.MustBuild(&timeCodeAST{})

// TimeCode is a SMPTE-style HH:MM:SS:FF (or HH:MM:SS;FF, drop-frame) time
// code, as found at the start of every line of an SCC document
// (time_codes.py's SccTimeCode).
type TimeCode struct {
	Hours, Minutes, Seconds, Frames int
	DropFrame                       bool
}

// ParseTimeCode parses s, grounded on time_codes.py's SccTimeCode.parse.
func ParseTimeCode(s string) (TimeCode, error) {
	var ast timeCodeAST
	if err := timeCodeParser.ParseString(s, &ast); err != nil {
		return TimeCode{}, fmt.Errorf("scc: invalid time code %q: %w", s, err)
	}
	return TimeCode{
		Hours: ast.Hours, Minutes: ast.Minutes, Seconds: ast.Seconds, Frames: ast.Frames,
		DropFrame: ast.Sep == ";",
	}, nil
}

// FrameCount converts tc to an absolute frame count at a nominal 30
// frames/second, dropping two frame numbers per minute except every
// tenth minute when tc is drop-frame. This is the standard SMPTE
// drop-frame counting convention; time_codes.py's get_nb_frames computes
// the equivalent value via Fraction arithmetic rounded to the nearest
// integer — this is its integer-only equivalent.
func (tc TimeCode) FrameCount() int64 {
	total := int64(tc.Hours)*3600 + int64(tc.Minutes)*60 + int64(tc.Seconds)
	frames := total*30 + int64(tc.Frames)
	if tc.DropFrame {
		totalMinutes := int64(tc.Hours)*60 + int64(tc.Minutes)
		frames -= 2 * (totalMinutes - totalMinutes/10)
	}
	return frames
}

// FromFrameCount is FrameCount's inverse, grounded on time_codes.py's
// SccTimeCode._from_frames drop-frame branch.
func FromFrameCount(frames int64, dropFrame bool) TimeCode {
	if dropFrame {
		tens := frames / 17982
		rem := frames % 17982
		if rem < 2 {
			frames += 18 * tens
		} else {
			frames += 18*tens + 2*((rem-2)/1798)
		}
	}
	h := frames / (30 * 3600)
	frames %= 30 * 3600
	m := frames / (30 * 60)
	frames %= 30 * 60
	s := frames / 30
	f := frames % 30
	return TimeCode{Hours: int(h), Minutes: int(m), Seconds: int(s), Frames: int(f), DropFrame: dropFrame}
}

// AddFrames returns tc advanced by n frames, grounded on time_codes.py's
// SccTimeCode.add_frames.
func (tc TimeCode) AddFrames(n int) TimeCode {
	return FromFrameCount(tc.FrameCount()+int64(n), tc.DropFrame)
}

// ToTime converts tc to a real elapsed-time Time: its nominal frame
// count divided by rate. A nil rate selects the nominal rate implied by
// tc's own drop-frame flag (time_codes.py's to_temporal_offset); a
// caller-supplied rate is the reader configuration's frame-rate
// override, applied uniformly regardless of tc.DropFrame.
func (tc TimeCode) ToTime(rate *big.Rat) unit.Time {
	if rate == nil {
		if tc.DropFrame {
			rate = DefaultDropFrameRate
		} else {
			rate = DefaultNonDropFrameRate
		}
	}
	return unit.FromFrames(tc.FrameCount(), rate)
}

func (tc TimeCode) String() string {
	sep := ":"
	if tc.DropFrame {
		sep = ";"
	}
	return fmt.Sprintf("%02d:%02d:%02d%s%02d", tc.Hours, tc.Minutes, tc.Seconds, sep, tc.Frames)
}
