package generate

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvlgen/level"
	"github.com/katalvlaran/lvlgen/rng"
	"github.com/katalvlaran/lvlgen/verify"
)

// RefineSuite exercises the subtractive refiners on a placed arena.
type RefineSuite struct {
	suite.Suite
	l *level.Level
}

// SetupTest builds a walled arena with player, key, exit and some gold.
func (s *RefineSuite) SetupTest() {
	s.l = EmptyBordered()
	s.l.Set(level.Point{X: 2, Y: 2}, level.Tiles(level.Floor, level.Player))
	s.l.Set(level.Point{X: 10, Y: 10}, level.Tiles(level.Floor, level.Key))
	s.l.Set(level.Point{X: 19, Y: 19}, level.Tiles(level.Floor, level.Exit, level.Lock))
	s.l.Set(level.Point{X: 5, Y: 15}, level.Tiles(level.Floor, level.Gold))
	s.l.Set(level.Point{X: 15, Y: 5}, level.Tiles(level.Floor, level.Enemy))
	require.NoError(s.T(), verify.Check(s.l))
}

// TestVerifiedScatter keeps the level valid and completable.
func (s *RefineSuite) TestVerifiedScatter() {
	n, err := ReverseVerifiedScatter(s.l, rng.New(1, 1))
	require.NoError(s.T(), err)
	require.Positive(s.T(), n)
	require.Equal(s.T(), (level.Size-2)*(level.Size-2)-n, s.l.Count(level.Floor))
	require.NoError(s.T(), verify.Check(s.l))
	require.NoError(s.T(), s.l.ValidateBorder())
}

// TestVerifiedScatter_Monotonic checks completability after every wall.
func (s *RefineSuite) TestVerifiedScatter_Monotonic() {
	r := rng.New(2, 3)
	total := 0
	for i := 0; i < 200; i++ {
		n, err := ReverseVerifiedScatter(s.l, r, WithWallPortion(1.5/level.Area))
		require.NoError(s.T(), err)
		require.LessOrEqual(s.T(), n, 1)
		require.True(s.T(), verify.IsCompletable(s.l), "after insertion %d", i)
		total += n
	}
	require.Positive(s.T(), total)
}

// TestVerifiedScatter_RejectsUncompletable leaves a broken level untouched.
func (s *RefineSuite) TestVerifiedScatter_RejectsUncompletable() {
	s.l.Set(level.Point{X: 10, Y: 10}, level.Bit(level.Floor))
	before := *s.l
	n, err := ReverseVerifiedScatter(s.l, rng.New(1, 1))
	require.ErrorIs(s.T(), err, verify.ErrNotCompletable)
	require.Zero(s.T(), n)
	require.Equal(s.T(), before, *s.l)
}

// TestVerifiedScatter_Deterministic reproduces a refinement from its seed.
func (s *RefineSuite) TestVerifiedScatter_Deterministic() {
	other := s.l.Clone()
	_, err := ReverseVerifiedScatter(s.l, rng.New(9, 9))
	require.NoError(s.T(), err)
	_, err = ReverseVerifiedScatter(other, rng.New(9, 9))
	require.NoError(s.T(), err)
	require.Equal(s.T(), *s.l, *other)
}

// insertLiteral is the plain insertion loop: skip the player, OR in a wall,
// keep it collapsed when accept holds, otherwise XOR it back out.
func insertLiteral(l *level.Level, r rng.Random, walls, attempts int, accept func() bool) {
	for i := 0; i < walls; i++ {
		for a := 0; a < attempts; a++ {
			t := l.Ptr(RandomInterior(r))
			if t.Has(level.Player) {
				continue
			}
			*t |= level.Bit(level.Wall)
			if accept() {
				*t = level.Bit(level.Wall)
				break
			}
			*t ^= level.Bit(level.Wall)
		}
	}
}

// TestScatter_WallDrawsUseInsertions checks that a draw landing on an
// existing wall spends its insertion, so both refiners match the plain loop
// tile for tile and count only new walls.
func (s *RefineSuite) TestScatter_WallDrawsUseInsertions() {
	for _, portion := range []float64{DefaultPreservingWallPortion, 1.5} {
		for seed := uint64(1); seed <= 3; seed++ {
			got, want := s.l.Clone(), s.l.Clone()
			n, err := ReverseVerifiedScatter(got, rng.New(seed, seed), WithWallPortion(portion))
			require.NoError(s.T(), err)
			insertLiteral(want, rng.New(seed, seed), int(portion*level.Area), DefaultOptions().Attempts,
				func() bool { return verify.IsCompletable(want) })
			require.Equal(s.T(), *want, *got, "portion %v seed %d", portion, seed)
			require.Equal(s.T(), got.Count(level.Wall)-s.l.Count(level.Wall), n)

			got, want = s.l.Clone(), s.l.Clone()
			total := verify.CountEntities(want)
			n, err = ReverseEntityPreservingScatter(got, rng.New(seed, seed), WithWallPortion(portion))
			require.NoError(s.T(), err)
			insertLiteral(want, rng.New(seed, seed), int(portion*level.Area), DefaultOptions().Attempts,
				func() bool { c, _ := verify.ReachableEntities(want); return c == total })
			require.Equal(s.T(), *want, *got, "portion %v seed %d", portion, seed)
			require.Equal(s.T(), got.Count(level.Wall)-s.l.Count(level.Wall), n)
		}
	}
}

// TestScatter_SaturatedInterior makes no change when only walls and the
// entities' own cells remain.
func (s *RefineSuite) TestScatter_SaturatedInterior() {
	l := level.New()
	l.Fill(level.Wall)
	l.Set(level.Point{X: 1, Y: 1}, level.Tiles(level.Floor, level.Player))
	l.Set(level.Point{X: 2, Y: 1}, level.Tiles(level.Floor, level.Key))
	l.Set(level.Point{X: 3, Y: 1}, level.Tiles(level.Floor, level.Exit, level.Lock))
	before := *l
	n, err := ReverseVerifiedScatter(l, rng.New(5, 5), WithWallPortion(1))
	require.NoError(s.T(), err)
	require.Zero(s.T(), n)
	require.Equal(s.T(), before, *l)
}

// TestEntityPreserving keeps every entity reachable.
func (s *RefineSuite) TestEntityPreserving() {
	total := verify.CountEntities(s.l)
	n, err := ReverseEntityPreservingScatter(s.l, rng.New(4, 4))
	require.NoError(s.T(), err)
	require.Positive(s.T(), n)
	reach, ok := verify.ReachableEntities(s.l)
	require.True(s.T(), ok)
	require.Equal(s.T(), total, reach)
	require.Equal(s.T(), total, verify.CountEntities(s.l))
	require.NoError(s.T(), verify.Check(s.l))
}

// TestEntityPreserving_NoPlayer fails fast.
func (s *RefineSuite) TestEntityPreserving_NoPlayer() {
	s.l.Set(level.Point{X: 2, Y: 2}, level.Bit(level.Floor))
	_, err := ReverseEntityPreservingScatter(s.l, rng.New(1, 1))
	require.ErrorIs(s.T(), err, ErrNoPlayer)
}

// TestEntityPreserving_AlreadyUnreachable accepts nothing and restores tiles.
func (s *RefineSuite) TestEntityPreserving_AlreadyUnreachable() {
	// Gold sealed behind spikes.
	s.l.StampRect(level.Spikes, level.Rect{X: 16, Y: 1, W: 1, H: 3}, level.StampArea)
	s.l.StampRect(level.Spikes, level.Rect{X: 17, Y: 3, W: 4, H: 1}, level.StampArea)
	s.l.Set(level.Point{X: 19, Y: 1}, level.Tiles(level.Floor, level.Gold))
	before := *s.l

	n, err := ReverseEntityPreservingScatter(s.l, rng.New(1, 1))
	require.NoError(s.T(), err)
	require.Zero(s.T(), n)
	require.Equal(s.T(), before, *s.l)
}

// TestVerifiedFill is completable and maximal.
func (s *RefineSuite) TestVerifiedFill() {
	n, err := ReverseVerifiedFill(s.l)
	require.NoError(s.T(), err)
	require.Positive(s.T(), n)
	require.NoError(s.T(), verify.Check(s.l))

	again, err := ReverseVerifiedFill(s.l)
	require.NoError(s.T(), err)
	require.Zero(s.T(), again)
}

// TestVerifiedFill_RejectsUncompletable reports the precondition.
func (s *RefineSuite) TestVerifiedFill_RejectsUncompletable() {
	s.l.Set(level.Point{X: 2, Y: 2}, level.Bit(level.Floor))
	_, err := ReverseVerifiedFill(s.l)
	require.ErrorIs(s.T(), err, verify.ErrNotCompletable)
}

// TestBadOption propagates option errors.
func (s *RefineSuite) TestBadOption() {
	_, err := ReverseVerifiedScatter(s.l, rng.New(1, 1), WithAttempts(0))
	require.ErrorIs(s.T(), err, ErrOptionViolation)
	_, err = ReverseEntityPreservingScatter(s.l, rng.New(1, 1), WithWallPortion(-1))
	require.ErrorIs(s.T(), err, ErrOptionViolation)
}

func TestRefineSuite(t *testing.T) {
	suite.Run(t, new(RefineSuite))
}
