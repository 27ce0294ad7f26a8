package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHasSevenKinds(t *testing.T) {
	assert.Equal(t, []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}, Kinds())
	_, ok := Lookup(KindNone)
	assert.False(t, ok)
}

func TestRotationCounts(t *testing.T) {
	for _, k := range Kinds() {
		s := MustShape(k)
		want := 4
		if k == KindO {
			want = 1
		}
		assert.Equal(t, want, s.RotationCount(), "kind %s", k)
		for r := 0; r < s.RotationCount(); r++ {
			assert.Len(t, s.Offsets(r), 4, "kind %s rotation %d", k, r)
		}
	}
}

func TestFullTurnReturnsToSpawnOrientation(t *testing.T) {
	for _, def := range shapeDefs {
		if !def.rotatable {
			continue
		}
		cur := def.base
		for range 4 {
			cur = rotateCW(cur, def.pivot)
		}
		assert.True(t, sameBlocks(cur, def.base), "kind %s drifted: %v", def.kind, cur)
	}
}

func TestRotationStatesAreDistinct(t *testing.T) {
	for _, k := range Kinds() {
		s := MustShape(k)
		for a := 0; a < s.RotationCount(); a++ {
			for b := a + 1; b < s.RotationCount(); b++ {
				assert.False(t, sameBlocks(s.Offsets(a), s.Offsets(b)), "kind %s states %d and %d", k, a, b)
			}
		}
	}
}

func TestTRotatesClockwise(t *testing.T) {
	s := MustShape(KindT)
	// Spawn: flat with the nub up. One clockwise turn puts the nub on the right.
	assert.ElementsMatch(t, []Offset{{0, 1}, {0, 0}, {0, -1}, {1, 0}}, s.Offsets(1))
}

func TestOffsetsReturnsCopy(t *testing.T) {
	s := MustShape(KindL)
	o := s.Offsets(0)
	o[0] = Offset{99, 99}
	assert.NotEqual(t, Offset{99, 99}, s.Offsets(0)[0])
}

func TestOffsetsWrap(t *testing.T) {
	s := MustShape(KindJ)
	assert.Equal(t, s.Offsets(0), s.Offsets(4))
	assert.Equal(t, s.Offsets(3), s.Offsets(-1))
}

func TestMustShapePanicsOnUnknownKind(t *testing.T) {
	require.Panics(t, func() { MustShape(Kind(42)) })
}
