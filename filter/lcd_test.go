package filter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/filter"
	"github.com/sandflow/ttconv/style"
	"github.com/sandflow/ttconv/unit"
)

func mustPush(t *testing.T, parent, child *cdm.Element) {
	t.Helper()
	var v *cdm.Element
	var err error
	switch m := cdm.PushChild(parent, child).Match(); m {
	case m.Ok(&v):
	case m.Err(&err):
		t.Fatalf("PushChild failed: %v", err)
	}
}

// buildTwoRegionDoc builds a body with two Divs bound to two distinct
// regions, each containing one styled paragraph, the shape the "lcd"
// filter (spec §4.5) must collapse to a single safe-area region.
func buildTwoRegionDoc(t *testing.T) *cdm.Document {
	t.Helper()
	doc := cdm.NewDocument()

	top := cdm.NewRegion("top")
	bottom := cdm.NewRegion("bottom")
	require.NoError(t, doc.PutRegion(top))
	require.NoError(t, doc.PutRegion(bottom))

	body := cdm.New(cdm.KindBody)

	divTop := cdm.New(cdm.KindDiv)
	divTop.SetRegionRef("top")
	pTop := cdm.New(cdm.KindP)
	spanTop := cdm.New(cdm.KindSpan)
	require.NoError(t, spanTop.SetStyle(style.FontWeight, style.NewEnumValue("bold")))
	require.NoError(t, spanTop.SetStyle(style.TextAlign, style.NewEnumValue("end")))
	mustPush(t, spanTop, cdm.NewText("hello"))
	mustPush(t, pTop, spanTop)
	mustPush(t, divTop, pTop)
	mustPush(t, body, divTop)

	divBottom := cdm.New(cdm.KindDiv)
	divBottom.SetRegionRef("bottom")
	pBottom := cdm.New(cdm.KindP)
	spanBottom := cdm.New(cdm.KindSpan)
	mustPush(t, spanBottom, cdm.NewText("world"))
	mustPush(t, pBottom, spanBottom)
	mustPush(t, divBottom, pBottom)
	mustPush(t, body, divBottom)

	require.NoError(t, doc.SetBody(body))
	return doc
}

func TestLCDMergesRegionsToSingleSafeArea(t *testing.T) {
	doc := buildTwoRegionDoc(t)

	out, err := filter.NewLCD(filter.LCDOptions{SafeArea: 15})(doc)
	require.NoError(t, err)

	regions := out.Regions()
	require.Len(t, regions, 1)

	origin, ok := regions[0].InlineStyle(style.Origin)
	require.True(t, ok)
	require.Equal(t, style.NewLengthPairValue(
		unit.NewLength(15, 1, unit.Percent), unit.NewLength(15, 1, unit.Percent)), origin)

	extent, ok := regions[0].InlineStyle(style.Extent)
	require.True(t, ok)
	require.Equal(t, style.NewLengthPairValue(
		unit.NewLength(70, 1, unit.Percent), unit.NewLength(70, 1, unit.Percent)), extent)

	body := out.Body()
	var ref string
	switch m := body.RegionRef().Match(); m {
	case m.Just(&ref):
	case m.Nothing():
		t.Fatalf("body should be rebound to the merged region")
	}
	require.Equal(t, "lcd", ref)

	for _, div := range cdm.DescendantsOfKind(out.Body(), cdm.KindDiv) {
		var divRef string
		switch m := div.RegionRef().Match(); m {
		case m.Just(&divRef):
			require.Equal(t, "lcd", divRef)
		case m.Nothing():
			t.Fatalf("div should be rebound to the merged region")
		}
	}
}

func TestLCDStripsStylesExceptColorAndTextAlign(t *testing.T) {
	doc := buildTwoRegionDoc(t)

	out, err := filter.NewLCD(filter.LCDOptions{SafeArea: 10})(doc)
	require.NoError(t, err)

	for _, span := range cdm.DescendantsOfKind(out.Body(), cdm.KindSpan) {
		_, ok := span.InlineStyle(style.FontWeight)
		require.False(t, ok)
	}
}

func TestLCDPreservesTextAlignWhenConfigured(t *testing.T) {
	doc := buildTwoRegionDoc(t)

	out, err := filter.NewLCD(filter.LCDOptions{SafeArea: 10, PreserveTextAlign: true})(doc)
	require.NoError(t, err)

	spans := cdm.DescendantsOfKind(out.Body(), cdm.KindSpan)
	require.NotEmpty(t, spans)

	var found bool
	for _, span := range spans {
		if v, ok := span.InlineStyle(style.TextAlign); ok {
			require.Equal(t, style.NewEnumValue("end"), v)
			found = true
		}
		_, ok := span.InlineStyle(style.FontWeight)
		require.False(t, ok, "fontWeight must be stripped regardless of preserve_text_align")
	}
	require.True(t, found, "the span's own textAlign should survive when preserved")

	_, ok := out.Body().InlineStyle(style.TextAlign)
	require.False(t, ok, "preserve_text_align leaves the body's own textAlign unset")
}

func TestLCDForcesCenterTextAlignByDefault(t *testing.T) {
	doc := buildTwoRegionDoc(t)

	out, err := filter.NewLCD(filter.LCDOptions{SafeArea: 10})(doc)
	require.NoError(t, err)

	v, ok := out.Body().InlineStyle(style.TextAlign)
	require.True(t, ok)
	require.Equal(t, style.NewEnumValue("center"), v)

	spans := cdm.DescendantsOfKind(out.Body(), cdm.KindSpan)
	require.NotEmpty(t, spans)
	for _, span := range spans {
		_, ok := span.InlineStyle(style.TextAlign)
		require.False(t, ok, "per-element textAlign is stripped unless preserved")
	}
}

func TestLCDAppliesColorAndBackgroundOverrides(t *testing.T) {
	doc := buildTwoRegionDoc(t)

	fg := unit.Color{R: 10, G: 20, B: 30, A: 255}
	bg := unit.Color{R: 0, G: 0, B: 0, A: 255}

	out, err := filter.NewLCD(filter.LCDOptions{SafeArea: 10, Color: &fg, BackgroundColor: &bg})(doc)
	require.NoError(t, err)

	v, ok := out.Body().InlineStyle(style.Color)
	require.True(t, ok)
	require.Equal(t, style.NewColorValue(fg), v)

	for _, p := range cdm.DescendantsOfKind(out.Body(), cdm.KindP) {
		v, ok := p.InlineStyle(style.BackgroundColor)
		require.True(t, ok)
		require.Equal(t, style.NewColorValue(bg), v)
	}
}

func TestComposeUnknownFilterNameFails(t *testing.T) {
	_, err := filter.Compose([]string{"no-such-filter"})
	require.Error(t, err)
	var ferr *filter.Error
	require.ErrorAs(t, err, &ferr)
}

func TestComposeChainsRegisteredFilters(t *testing.T) {
	var calls []string
	filter.Register("test-a", func(doc *cdm.Document) (*cdm.Document, error) {
		calls = append(calls, "a")
		return doc, nil
	})
	filter.Register("test-b", func(doc *cdm.Document) (*cdm.Document, error) {
		calls = append(calls, "b")
		return doc, nil
	})

	chain, err := filter.Compose([]string{"test-a", "test-b"})
	require.NoError(t, err)

	doc := cdm.NewDocument()
	_, err = chain(doc)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, calls)
}
