package scc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/unit"
)

// collectText concatenates every Text descendant of e in document order.
func collectText(e *cdm.Element) string {
	var b strings.Builder
	switch e.Kind {
	case cdm.KindText:
		b.WriteString(e.Text)
	default:
		for _, c := range e.Children() {
			b.WriteString(collectText(c))
		}
	}
	return b.String()
}

func paragraphsOf(t *testing.T, doc *cdm.Document) []*cdm.Element {
	t.Helper()
	body := doc.Body()
	require.NotNil(t, body)
	divs := body.Children()
	require.Len(t, divs, 1)
	return divs[0].Children()
}

func mustBegin(t *testing.T, p *cdm.Element) unit.Time {
	t.Helper()
	var begin unit.Time
	switch m := p.Begin().Match(); m {
	case m.Just(&begin):
	case m.Nothing():
		t.Fatalf("paragraph has no begin time")
	}
	return begin
}

func mustEnd(t *testing.T, p *cdm.Element) unit.Time {
	t.Helper()
	var end unit.Time
	switch m := p.End().Match(); m {
	case m.Just(&end):
	case m.Nothing():
		t.Fatalf("paragraph has no end time")
	}
	return end
}

func TestReadPopOnMinimum(t *testing.T) {
	input := "Scenarist_SCC V1.0\n\n00:00:00:22\t9420 9420 9470 9470 4c6f 7265 6d80\n"
	doc, err := Read(strings.NewReader(input), Config{})
	require.NoError(t, err)

	ps := paragraphsOf(t, doc)
	require.Len(t, ps, 1)
	require.Equal(t, "Lorem", collectText(ps[0]))
	require.Equal(t, 0, mustBegin(t, ps[0]).Cmp(unit.NewTime(22, 30)))
	require.True(t, mustEnd(t, ps[0]).IsInfinite())
}

func TestReadEOCFlip(t *testing.T) {
	input := "" +
		"00:00:01:00\t1420 1470 4869\n" + // RCL, PAC(15,0), "Hi"
		"00:00:02:00\t142F 1420 1470 4279 6500\n" + // EOC, RCL, PAC(15,0), "Bye"
		"00:00:03:00\t142F\n" // EOC
	doc, err := Read(strings.NewReader(input), Config{})
	require.NoError(t, err)

	ps := paragraphsOf(t, doc)
	require.Len(t, ps, 2)

	require.Equal(t, "Hi", collectText(ps[0]))
	require.Equal(t, 0, mustBegin(t, ps[0]).Cmp(unit.NewTime(2, 1)))
	require.Equal(t, 0, mustEnd(t, ps[0]).Cmp(unit.NewTime(3, 1)))

	require.Equal(t, "Bye", collectText(ps[1]))
	require.Equal(t, 0, mustBegin(t, ps[1]).Cmp(unit.NewTime(3, 1)))
	require.True(t, mustEnd(t, ps[1]).IsInfinite())
}

func TestReadSkipsBlankLinesAndHeader(t *testing.T) {
	input := "Scenarist_SCC V1.0\n\n\n00:00:00:10\t4869\n\n"
	doc, err := Read(strings.NewReader(input), Config{})
	require.NoError(t, err)
	// A bare standard-character pair with no preceding RCL/RU/RDC falls
	// back to Paint-On (spec §4.3's implicit "writes go directly to
	// display" for an as-yet-unset mode), so it is visible without a
	// flip and flushed at end of stream.
	ps := paragraphsOf(t, doc)
	require.Len(t, ps, 1)
	require.Equal(t, "Hi", collectText(ps[0]))
}

func TestBackspaceAtColumnZeroIsNoOp(t *testing.T) {
	b := newBuffer()
	b.touch(unit.Zero)
	b.backspace()
	require.True(t, b.isEmpty())
	require.Equal(t, 0, b.col)
}

func TestTabOffsetClampsAtLastColumn(t *testing.T) {
	b := newBuffer()
	b.col = 30
	b.advanceColumn(3)
	require.Equal(t, columnCount-1, b.col)
}

func TestDuplicateControlPairCollapses(t *testing.T) {
	ctx := NewContext(Channel1)
	rcl, _ := FindControlCode(Word{Byte1: 0x14, Byte2: 0x20})
	require.Equal(t, RCL, rcl)

	w := Word{Byte1: 0x14, Byte2: 0x20}
	ctx.Process(w, unit.Zero)
	require.Equal(t, stylePopOn, ctx.style)

	// Force back out of Pop-On so a second, duplicate RCL transmission
	// would be observable if it were not collapsed.
	ctx.style = styleUnknown
	ctx.Process(w, unit.Zero)
	require.Equal(t, styleUnknown, ctx.style, "duplicate control pair must be dropped, not reprocessed")
}

func TestDropFrameTimeCodeSkipsTwoFramesPerMinute(t *testing.T) {
	last, err := ParseTimeCode("00:00:59;29")
	require.NoError(t, err)
	next, err := ParseTimeCode("00:01:00;02")
	require.NoError(t, err)
	require.True(t, last.DropFrame)
	require.True(t, next.DropFrame)

	// Frame numbers 00 and 01 do not exist at a non-tenth minute
	// boundary in drop-frame, so the transmitted frame after
	// 00:00:59;29 is 00:01:00;02, one frame later in real time.
	require.Equal(t, next.FrameCount(), last.FrameCount()+1)

	require.Equal(t, last, FromFrameCount(last.FrameCount(), true))
	require.Equal(t, next, FromFrameCount(next.FrameCount(), true))
}
