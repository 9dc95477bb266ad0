package maze_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazeflood/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Initialise
//----------------------------------------------------------------------------//

// TestInitialise_Boundary verifies every perimeter cell has its outward wall.
func TestInitialise_Boundary(t *testing.T) {
	var w maze.WallMap
	w.Initialise()

	for i := 0; i < maze.Width; i++ {
		west, _ := maze.At(i, 0)
		east, _ := maze.At(i, 15)
		south, _ := maze.At(0, i)
		north, _ := maze.At(15, i)
		assert.True(t, w.IsWall(west, maze.West), "west edge %s", west)
		assert.True(t, w.IsWall(east, maze.East), "east edge %s", east)
		assert.True(t, w.IsWall(south, maze.South), "south edge %s", south)
		assert.True(t, w.IsWall(north, maze.North), "north edge %s", north)
	}
	require.NoError(t, w.Symmetric())
}

// TestInitialise_StartCell checks the start box: east closed, north open.
func TestInitialise_StartCell(t *testing.T) {
	var w maze.WallMap
	w.Initialise()

	assert.True(t, w.IsWall(maze.Start, maze.East))
	assert.True(t, w.IsExit(maze.Start, maze.North))
	assert.True(t, w.IsWall(maze.Start, maze.South))
	assert.True(t, w.IsWall(maze.Start, maze.West))
	// mirrored on the neighbour
	assert.True(t, w.IsWall(maze.Cell(0x10), maze.West))
}

// TestInitialise_InteriorOpen verifies no interior walls are placed.
func TestInitialise_InteriorOpen(t *testing.T) {
	var w maze.WallMap
	w.Initialise()

	c, _ := maze.At(7, 7)
	for _, d := range maze.Directions {
		assert.True(t, w.IsExit(c, d), "side %s", d)
	}
	assert.False(t, w.Visited(c))
}

// TestInitialise_Clears verifies a second Initialise removes earlier state.
func TestInitialise_Clears(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	c, _ := maze.At(5, 5)
	require.NoError(t, w.SetWallPresent(c, maze.North))
	w.MarkVisited(c)

	w.Initialise()
	assert.False(t, w.IsWall(c, maze.North))
	assert.False(t, w.Visited(c))
}

//----------------------------------------------------------------------------//
// Wall mutation
//----------------------------------------------------------------------------//

// TestSetWall_Mirrors checks both sides of a boundary are written together.
func TestSetWall_Mirrors(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	c, _ := maze.At(4, 6)

	for _, d := range maze.Directions {
		require.NoError(t, w.SetWallPresent(c, d))
		assert.True(t, w.IsWall(c, d))
		assert.True(t, w.IsWall(c.Next(d), d.Opposite()))

		require.NoError(t, w.SetWallAbsent(c, d))
		assert.True(t, w.IsExit(c, d))
		assert.True(t, w.IsExit(c.Next(d), d.Opposite()))
	}
}

// TestSetWall_SymmetryUnderRandomEdits applies many random edits and checks
// the two-sided invariant for every cell and side afterwards.
func TestSetWall_SymmetryUnderRandomEdits(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 5000; i++ {
		c := maze.Cell(rng.Intn(maze.Cells))
		d := maze.Direction(rng.Intn(4))
		if rng.Intn(2) == 0 {
			require.NoError(t, w.SetWallPresent(c, d))
		} else {
			require.NoError(t, w.SetWallAbsent(c, d))
		}
	}

	require.NoError(t, w.Symmetric())
	for i := 0; i < maze.Cells; i++ {
		c := maze.Cell(i)
		for _, d := range maze.Directions {
			require.Equal(t, w.IsWall(c, d), w.IsWall(c.Next(d), d.Opposite()), "cell %s side %s", c, d)
		}
	}
}

// TestSetWall_InvalidDirection verifies bad directions are rejected untouched.
func TestSetWall_InvalidDirection(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	before := rawBytes(&w)

	c, _ := maze.At(3, 3)
	assert.ErrorIs(t, w.SetWallPresent(c, maze.Direction(4)), maze.ErrInvalidDirection)
	assert.ErrorIs(t, w.SetWallAbsent(c, maze.Direction(200)), maze.ErrInvalidDirection)
	assert.Equal(t, before, rawBytes(&w))

	assert.True(t, w.IsWall(c, maze.Direction(4)))
	assert.False(t, w.IsExit(c, maze.Direction(4)))
}

// TestSetWallAbsent_Idempotent verifies clearing twice equals clearing once.
func TestSetWallAbsent_Idempotent(t *testing.T) {
	var once, twice maze.WallMap
	once.Initialise()
	twice.Initialise()
	c, _ := maze.At(9, 2)
	for _, w := range []*maze.WallMap{&once, &twice} {
		require.NoError(t, w.SetWallPresent(c, maze.East))
	}

	require.NoError(t, once.SetWallAbsent(c, maze.East))
	require.NoError(t, twice.SetWallAbsent(c, maze.East))
	require.NoError(t, twice.SetWallAbsent(c, maze.East))

	assert.Equal(t, rawBytes(&once), rawBytes(&twice))
}

// TestSetWallPresent_Idempotent verifies setting twice equals setting once.
func TestSetWallPresent_Idempotent(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	c, _ := maze.At(9, 2)
	require.NoError(t, w.SetWallPresent(c, maze.South))
	first := rawBytes(&w)
	require.NoError(t, w.SetWallPresent(c, maze.South))
	assert.Equal(t, first, rawBytes(&w))
}

//----------------------------------------------------------------------------//
// Visited flag
//----------------------------------------------------------------------------//

// TestVisited_IndependentOfWalls verifies the flag never disturbs wall bits.
func TestVisited_IndependentOfWalls(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	c := maze.Start
	wallsBefore := w.Raw(c)

	assert.False(t, w.Visited(c))
	w.MarkVisited(c)
	assert.True(t, w.Visited(c))
	assert.Equal(t, wallsBefore|maze.VisitedMask, w.Raw(c))
	assert.True(t, w.IsWall(c, maze.East))
	assert.True(t, w.IsExit(c, maze.North))

	require.NoError(t, w.SetWallPresent(c, maze.North))
	assert.True(t, w.Visited(c))
}

func rawBytes(w *maze.WallMap) []uint8 {
	out := make([]uint8, maze.Cells)
	for i := range out {
		out[i] = w.Raw(maze.Cell(i))
	}
	return out
}

//----------------------------------------------------------------------------//
// Load / Bounded
//----------------------------------------------------------------------------//

func TestBounded(t *testing.T) {
	var w maze.WallMap
	assert.ErrorIs(t, w.Bounded(), maze.ErrOpenBoundary, "zero map has no walls")

	w.Initialise()
	require.NoError(t, w.Bounded())

	corner, _ := maze.At(15, 15)
	require.NoError(t, w.SetWallAbsent(corner, maze.North))
	assert.ErrorIs(t, w.Bounded(), maze.ErrOpenBoundary)
}

func TestLoad_RoundTripsBytes(t *testing.T) {
	var src maze.WallMap
	src.Initialise()
	require.NoError(t, src.SetWallPresent(0x44, maze.North))
	require.NoError(t, src.SetWallAbsent(maze.Start, maze.East))
	src.MarkVisited(0x12)

	var dst maze.WallMap
	require.NoError(t, dst.Load(src.Bytes()))
	assert.Equal(t, src.Bytes(), dst.Bytes())
	assert.True(t, dst.Visited(0x12))
}

func TestLoad_RejectsBadBytes(t *testing.T) {
	var w maze.WallMap
	w.Initialise()
	before := w.Bytes()

	raw := before
	raw[0x55] |= maze.East.Mask()
	assert.ErrorIs(t, w.Load(raw), maze.ErrAsymmetricWall)
	assert.Equal(t, before, w.Bytes(), "map unchanged")

	raw = before
	// symmetric but open: north of 0x0F wraps to the south of 0x10
	raw[0x0F] &^= maze.North.Mask()
	raw[0x10] &^= maze.South.Mask()
	assert.ErrorIs(t, w.Load(raw), maze.ErrOpenBoundary)
	assert.Equal(t, before, w.Bytes())
}

func TestMaze_LoadWallsInvalidatesCosts(t *testing.T) {
	m := maze.New()
	m.Costs().Seal(m.Goal())

	var w maze.WallMap
	w.Initialise()
	require.NoError(t, w.SetWallPresent(0x33, maze.West))
	require.NoError(t, m.LoadWalls(w.Bytes()))

	_, fresh := m.Costs().Target()
	assert.False(t, fresh)
	assert.True(t, m.IsWall(0x23, maze.East))
}
