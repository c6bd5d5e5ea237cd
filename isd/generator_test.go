package isd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandflow/ttconv/cdm"
	"github.com/sandflow/ttconv/isd"
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

func TestGenerateRejectsNegativeTime(t *testing.T) {
	doc := cdm.NewDocument()
	_, err := isd.Generate(doc, unit.NewTime(-1, 1))
	require.Error(t, err)
	var isdErr *isd.Error
	require.ErrorAs(t, err, &isdErr)
	require.Equal(t, isd.KindDomain, isdErr.Kind)
}

func TestGenerateMaterializesRegionBoundContent(t *testing.T) {
	doc := cdm.NewDocument()

	// "main" is the default (first-declared) region; "r1" is not, so an
	// unregioned Body never matches it and the bound Div attaches
	// directly at r1's top level, skipping the unregioned ancestor
	// entirely (spec §4.2 step 3's <div region="r1"> example).
	main := cdm.NewRegion("main")
	r1 := cdm.NewRegion("r1")
	require.NoError(t, r1.SetStyle(style.ShowBackground, style.NewEnumValue("whenActive")))
	require.NoError(t, doc.PutRegion(main))
	require.NoError(t, doc.PutRegion(r1))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	div.SetRegionRef("r1")
	p := cdm.New(cdm.KindP)
	span := cdm.New(cdm.KindSpan)
	text := cdm.NewText("hello")

	mustPush(t, body, div)
	mustPush(t, div, p)
	mustPush(t, p, span)
	mustPush(t, span, text)
	require.NoError(t, doc.SetBody(body))

	out, err := isd.Generate(doc, unit.Zero)
	require.NoError(t, err)

	r1Out, ok := out.Region("r1")
	require.True(t, ok)
	require.Len(t, r1Out.Children, 1)
	require.Equal(t, cdm.KindDiv, r1Out.Children[0].Kind, "the unregioned Body ancestor must not appear in r1's tree")
}

func TestGenerateDropsContentOutsideItsActiveInterval(t *testing.T) {
	doc := cdm.NewDocument()
	region := cdm.NewRegion("r1")
	require.NoError(t, region.SetStyle(style.ShowBackground, style.NewEnumValue("whenActive")))
	require.NoError(t, doc.PutRegion(region))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	div.SetRegionRef("r1")
	div.SetBegin(unit.NewTime(10, 1))
	div.SetEnd(unit.NewTime(20, 1))
	p := cdm.New(cdm.KindP)
	text := cdm.NewText("hi")
	span := cdm.New(cdm.KindSpan)

	mustPush(t, body, div)
	mustPush(t, div, p)
	mustPush(t, p, span)
	mustPush(t, span, text)
	require.NoError(t, doc.SetBody(body))

	out, err := isd.Generate(doc, unit.NewTime(5, 1))
	require.NoError(t, err)
	require.Empty(t, out.Regions)

	out, err = isd.Generate(doc, unit.NewTime(15, 1))
	require.NoError(t, err)
	require.Len(t, out.Regions, 1)
}

func TestGenerateFallsBackToDefaultFirstRegion(t *testing.T) {
	doc := cdm.NewDocument()
	first := cdm.NewRegion("first")
	second := cdm.NewRegion("second")
	require.NoError(t, second.SetStyle(style.ShowBackground, style.NewEnumValue("whenActive")))
	require.NoError(t, doc.PutRegion(first))
	require.NoError(t, doc.PutRegion(second))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv) // no region-ref at all
	p := cdm.New(cdm.KindP)
	text := cdm.NewText("unregioned")
	span := cdm.New(cdm.KindSpan)
	mustPush(t, body, div)
	mustPush(t, div, p)
	mustPush(t, p, span)
	mustPush(t, span, text)
	require.NoError(t, doc.SetBody(body))

	out, err := isd.Generate(doc, unit.Zero)
	require.NoError(t, err)

	firstRegion, ok := out.Region("first")
	require.True(t, ok)
	require.NotEmpty(t, firstRegion.Children)

	_, ok = out.Region("second")
	require.False(t, ok)
}

func TestGenerateShowBackgroundAlwaysMaterializesEmptyRegion(t *testing.T) {
	doc := cdm.NewDocument()
	region := cdm.NewRegion("r1")
	require.NoError(t, region.SetStyle(style.ShowBackground, style.NewEnumValue("always")))
	require.NoError(t, doc.PutRegion(region))

	out, err := isd.Generate(doc, unit.Zero)
	require.NoError(t, err)
	require.Len(t, out.Regions, 1)
	require.Empty(t, out.Regions[0].Children)
}

func TestGenerateMissingRegionRefIsAnError(t *testing.T) {
	doc := cdm.NewDocument()
	region := cdm.NewRegion("r1")
	require.NoError(t, doc.PutRegion(region))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	div.SetRegionRef("does-not-exist")
	mustPush(t, body, div)
	require.NoError(t, doc.SetBody(body))

	_, err := isd.Generate(doc, unit.Zero)
	require.Error(t, err)
	var isdErr *isd.Error
	require.ErrorAs(t, err, &isdErr)
	require.Equal(t, isd.KindMissingRegion, isdErr.Kind)
}

func TestGenerateStripsDisplayNoneSubtrees(t *testing.T) {
	doc := cdm.NewDocument()
	region := cdm.NewRegion("r1")
	require.NoError(t, region.SetStyle(style.ShowBackground, style.NewEnumValue("whenActive")))
	require.NoError(t, doc.PutRegion(region))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	div.SetRegionRef("r1")
	require.NoError(t, div.SetStyle(style.Display, style.NewEnumValue("none")))
	p := cdm.New(cdm.KindP)
	mustPush(t, body, div)
	mustPush(t, div, p)
	require.NoError(t, doc.SetBody(body))

	out, err := isd.Generate(doc, unit.Zero)
	require.NoError(t, err)
	require.Empty(t, out.Regions)
}

func TestGeneratePositionFoldsIntoOrigin(t *testing.T) {
	doc := cdm.NewDocument()
	region := cdm.NewRegion("r1")
	require.NoError(t, doc.PutRegion(region))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	div.SetRegionRef("r1")
	require.NoError(t, div.SetStyle(style.Position, style.NewLengthPairValue(
		unit.NewLength(0, 1, unit.Percent), unit.NewLength(0, 1, unit.Percent))))
	require.NoError(t, div.SetStyle(style.Extent, style.NewLengthPairValue(
		unit.NewLength(50, 1, unit.Percent), unit.NewLength(50, 1, unit.Percent))))
	p := cdm.New(cdm.KindP)
	span := cdm.New(cdm.KindSpan)
	text := cdm.NewText("content")
	mustPush(t, body, div)
	mustPush(t, div, p)
	mustPush(t, p, span)
	mustPush(t, span, text)
	require.NoError(t, doc.SetBody(body))

	out, err := isd.Generate(doc, unit.Zero)
	require.NoError(t, err)
	require.Len(t, out.Regions, 1)

	// body has no explicit region-ref, so it resolves to r1 via the
	// default-first-region fallback too and wraps div as its own child.
	divNode := out.Regions[0].Children[0].Children[0]
	_, hasOrigin := divNode.Styles[style.Origin]
	require.True(t, hasOrigin)
	_, hasPosition := divNode.Styles[style.Position]
	require.False(t, hasPosition, "position must never be emitted on an ISD node")

	pair, ok := divNode.Styles[style.Origin].LengthPair()
	require.True(t, ok)
	require.Equal(t, unit.RootWidth, pair.Left.Unit)
	require.Equal(t, "0", pair.Left.Value.RatString())
	require.Equal(t, unit.RootHeight, pair.Right.Unit)
	require.Equal(t, "0", pair.Right.Value.RatString())
}
