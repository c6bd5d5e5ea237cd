package cdm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sandflow/ttconv/cdm"
)

func TestDocumentDefaults(t *testing.T) {
	doc := cdm.NewDocument()
	require.Equal(t, cdm.DefaultCellResolution, doc.CellResolution())
	require.Equal(t, cdm.DefaultPixelResolution, doc.PixelResolution())
}

func TestDocumentSetBodyStampsDescendants(t *testing.T) {
	doc := cdm.NewDocument()
	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	require.True(t, isOk(cdm.PushChild(body, div)))

	require.NoError(t, doc.SetBody(body))
	require.Equal(t, doc, div.Document())
}

func TestDocumentRegionOrderPreserved(t *testing.T) {
	doc := cdm.NewDocument()
	r1 := cdm.NewRegion("r1")
	r2 := cdm.NewRegion("r2")
	r3 := cdm.NewRegion("r3")

	require.NoError(t, doc.PutRegion(r1))
	require.NoError(t, doc.PutRegion(r2))
	require.NoError(t, doc.PutRegion(r3))
	// replacing r2 must not move it to the end
	require.NoError(t, doc.PutRegion(cdm.NewRegion("r2")))

	ids := make([]string, 0, 3)
	for _, r := range doc.Regions() {
		ids = append(ids, r.RegionID)
	}
	require.Equal(t, []string{"r1", "r2", "r3"}, ids)
}

func TestSetIDRejectsMalformed(t *testing.T) {
	span := cdm.New(cdm.KindSpan)
	require.Error(t, span.SetID("1bad"))
	require.NoError(t, span.SetID("good_id.1"))
}

func TestDuplicateIDDetectedOnAttach(t *testing.T) {
	doc := cdm.NewDocument()
	body := cdm.New(cdm.KindBody)
	require.NoError(t, body.SetID("x"))
	require.NoError(t, doc.SetBody(body))

	div := cdm.New(cdm.KindDiv)
	require.NoError(t, div.SetID("x"))

	require.False(t, isOk(cdm.PushChild(body, div)), "attaching a detached subtree with a colliding id must fail")
}

func TestDuplicateIDDetectedOnSetIDWhileAttached(t *testing.T) {
	doc := cdm.NewDocument()
	body := cdm.New(cdm.KindBody)
	require.NoError(t, doc.SetBody(body))
	require.NoError(t, body.SetID("x"))

	div := cdm.New(cdm.KindDiv)
	require.True(t, isOk(cdm.PushChild(body, div)))
	require.Error(t, div.SetID("x"))
}

func TestDocumentRemoveRegionClearsReferences(t *testing.T) {
	doc := cdm.NewDocument()
	region := cdm.NewRegion("r1")
	require.NoError(t, doc.PutRegion(region))

	body := cdm.New(cdm.KindBody)
	div := cdm.New(cdm.KindDiv)
	require.True(t, isOk(cdm.PushChild(body, div)))
	div.SetRegionRef("r1")
	require.NoError(t, doc.SetBody(body))

	doc.RemoveRegion("r1")

	_, found := doc.Region("r1")
	require.False(t, found)

	_, ok := div.EffectiveRegion()
	require.False(t, ok)
}
