package scc

import (
	"bufio"
	"io"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/unit"
)

// headerLine is the optional Scenarist header a well-formed .scc file
// may start with (spec §6.3), skipped rather than parsed as a data
// line.
const headerLine = "Scenarist_SCC V1.0"

// CaptionRegionID is the id of the single safe-area region every SCC
// paragraph is bound to (spec §4.3's "region set to a single region
// spanning the safe area").
const CaptionRegionID = "cea608"

// Root cell resolution the safe-area region is expressed against,
// grounded on caption_paragraph.py's SCC_ROOT_CELL_RESOLUTION_ROWS/
// COLUMNS: a 15x32 safe area inset 10% on every side of a 19x40 root
// grid (ceil(15/0.8)=19, ceil(32/0.8)=40).
const (
	RootCellRows    = 19
	RootCellColumns = 40
)

// Config configures an SCC read (spec §6.2's scc_reader.* keys).
type Config struct {
	// Channel selects which of CC1/CC2 to decode; the other channel's
	// words are ignored. Defaults to Channel1.
	Channel Channel

	// FrameRate overrides the nominal frame rate a time code converts
	// through (spec §4.3: "unless a configured frame rate overrides").
	// nil selects 30000/1001 for drop-frame time codes and 30/1 for
	// non-drop, per time code.
	FrameRate *big.Rat

	// TextAlign sets the safe-area region's textAlign style; "auto" or
	// the empty zero value leaves the style-table default (start) in place (spec
	// §6.2's scc_reader.text_align).
	TextAlign string
}

// Read parses an SCC document from r and returns the resulting
// cdm.Document: a single safe-area region under which every decoded
// paragraph is placed as a P under a shared Div under Body, in begin-
// time order (spec §4.3's output mapping, spec §8 invariant 4).
func Read(r io.Reader, cfg Config) (*cdm.Document, error) {
	doc := cdm.NewDocument()
	doc.SetCellResolution(cdm.CellResolution{Rows: RootCellRows, Columns: RootCellColumns})

	region := cdm.NewRegion(CaptionRegionID)
	if err := region.SetStyle(style.Origin, style.NewLengthPairValue(
		unit.NewLength(10, 1, unit.Percent), unit.NewLength(10, 1, unit.Percent))); err != nil {
		return nil, err
	}
	if err := region.SetStyle(style.Extent, style.NewLengthPairValue(
		unit.NewLength(80, 1, unit.Percent), unit.NewLength(80, 1, unit.Percent))); err != nil {
		return nil, err
	}
	// Captions are only visible while a paragraph is active; the region
	// itself should not paint a background the rest of the time.
	if err := region.SetStyle(style.ShowBackground, style.NewEnumValue("whenActive")); err != nil {
		return nil, err
	}
	if cfg.TextAlign != "" && cfg.TextAlign != "auto" {
		if err := region.SetStyle(style.TextAlign, style.NewEnumValue(cfg.TextAlign)); err != nil {
			return nil, err
		}
	}
	if err := doc.PutRegion(region); err != nil {
		return nil, err
	}

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	div.SetRegionRef(CaptionRegionID)
	if err := pushChild(body, div); err != nil {
		return nil, err
	}
	if err := doc.SetBody(body); err != nil {
		return nil, err
	}

	ctx := NewContext(cfg.Channel)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line == headerLine {
			continue
		}
		t, words, err := parseLine(line, cfg.FrameRate)
		if err != nil {
			tracer().Errorf("scc: line %d: %v", lineNo, err)
			continue
		}
		for _, ws := range words {
			w, err := parseWord(ws)
			if err != nil {
				tracer().Errorf("scc: line %d: %v", lineNo, err)
				continue
			}
			ctx.Process(w, t)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	ctx.Flush()

	paragraphs := ctx.Paragraphs()
	sort.SliceStable(paragraphs, func(i, j int) bool {
		var bi, bj unit.Time
		switch m := paragraphs[i].Begin().Match(); m {
		case m.Just(&bi):
		case m.Nothing():
		}
		switch m := paragraphs[j].Begin().Match(); m {
		case m.Just(&bj):
		case m.Nothing():
		}
		return bi.Less(bj)
	})
	for _, p := range paragraphs {
		if err := pushChild(div, p); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// parseLine splits a data line into its time code (converted to a
// cdm-native Time, through rate if non-nil or the time code's own
// nominal rate otherwise) and its whitespace-separated words.
func parseLine(line string, rate *big.Rat) (unit.Time, []string, error) {
	fields := strings.Fields(line)
	if len(fields) < 1 {
		return unit.Time{}, nil, &Error{Kind: KindParse, Message: "empty data line"}
	}
	tc, err := ParseTimeCode(fields[0])
	if err != nil {
		return unit.Time{}, nil, &Error{Kind: KindParse, Message: err.Error()}
	}
	return tc.ToTime(rate), fields[1:], nil
}

// parseWord decodes a single four-hex-digit SCC word into its
// parity-stripped byte pair (spec §4.3's preprocessing step).
func parseWord(s string) (Word, error) {
	if len(s) != 4 {
		return Word{}, &Error{Kind: KindParse, Message: "malformed word " + strconv.Quote(s)}
	}
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return Word{}, &Error{Kind: KindParse, Message: "malformed word " + strconv.Quote(s)}
	}
	return NewWord(byte(v>>8), byte(v)), nil
}
