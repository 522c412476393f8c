package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The vee fixture is a U whose inner edges splay apart: 100 apart at the
// notch, diverging past the proximity distance of 300 between the rungs at
// y=6000 and y=7000, just below the tops of the arms. The polygon approaches itself, so all links are
// self-links.
const veeWidth = 300

func TestVeeSelfLinks(t *testing.T) {
	polys := []Polygon{LoadFixture("vee")}
	lk := NewLinker(polys, veeWidth)
	assertLinkerInvariants(t, lk)

	primary := lk.PrimaryLinks()
	require.NotEmpty(t, primary)

	// The rungs of the narrow region all link left arm to right arm.
	assert.GreaterOrEqual(t, len(primary), 6)
	for _, link := range primary {
		assert.Same(t, link.A.Ring, link.B.Ring)
		assert.Less(t, link.Dist, int64(veeWidth))
		// Left arm to right arm: the endpoints straddle the slot.
		assert.True(t, link.A.Point().X < 0 != (link.B.Point().X < 0),
			"link %v should cross the slot", link)
	}

	// The notch itself is bounded by segments incident on the notch
	// vertices, which the incidence rule skips; the closest surviving links
	// start one rung up.
	deepest := primary[0].Dist
	for _, link := range primary {
		if link.Dist < deepest {
			deepest = link.Dist
		}
	}
	assert.Less(t, deepest, int64(veeWidth/2))
}

func TestVeeEnding(t *testing.T) {
	polys := []Polygon{LoadFixture("vee")}
	lk := NewLinker(polys, veeWidth)

	// Exactly one ending pair, inserted where the arms have diverged to the
	// proximity distance, between the last linked rung and the arm tops.
	endings := lk.EndingLinks()
	require.Len(t, endings, 1)
	ending := endings[0]
	assert.Equal(t, int64(veeWidth), ending.Dist)
	for _, p := range []Point{ending.A.Point(), ending.B.Point()} {
		assert.Greater(t, p.Y, int64(6000))
		assert.Less(t, p.Y, int64(7000))
	}
	// The inserted divergence points sit the proximity distance apart.
	span := VSize(ending.A.Point().Sub(ending.B.Point()))
	assert.InDelta(t, veeWidth, span, 3)

	// The ending vertices were written back into the polygon.
	assert.Contains(t, polys[0].Points, ending.A.Point())
	assert.Contains(t, polys[0].Points, ending.B.Point())
}

func TestVeeFlow(t *testing.T) {
	polys := []Polygon{LoadFixture("vee")}
	wo := NewWallOverlap(polys, veeWidth)

	flows := traverseFlows(wo)
	assertFlowsInRange(t, flows)

	// The second arm through the slot gives up most of its flow where the
	// arms are only a third of a line width apart.
	minFlow := float32(1)
	for _, ef := range flows {
		if ef.flow < minFlow {
			minFlow = ef.flow
		}
	}
	assert.Less(t, minFlow, float32(0.4))

	// Far from the slot the walls extrude normally.
	for _, ef := range flows {
		if ef.from.Y == -400 || ef.to.Y == -400 {
			assert.Equal(t, float32(1), ef.flow)
		}
	}
}

func TestVeeDeterminism(t *testing.T) {
	build := func() *Linker {
		return NewLinker([]Polygon{LoadFixture("vee")}, veeWidth)
	}
	lk1 := build()
	lk2 := build()
	assert.Equal(t, extractTriples(lk1.PrimaryLinks()), extractTriples(lk2.PrimaryLinks()))
	assert.Equal(t, extractTriples(lk1.EndingLinks()), extractTriples(lk2.EndingLinks()))
	assert.Equal(t, lk1.Polygons, lk2.Polygons)
}
