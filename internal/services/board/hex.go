package board

import "github.com/mcoot/reversi-go/internal/model"

// hexDirections run clockwise starting from north
var hexDirections = []model.Coordinate{
	{Col: 0, Row: -1},
	{Col: 1, Row: -1},
	{Col: 1, Row: 0},
	{Col: 0, Row: 1},
	{Col: -1, Row: 1},
	{Col: -1, Row: 0},
}

// Hex is a hexagonal board stored in a (2*side-1)-square array. Rows are
// offset so that only array positions whose column+row sum falls inside a
// band are part of the hexagon.
//
// Coordinate system for side 4:
//
//	   3 4 5 6     row 0
//	  2 _ _ _ _    row 1
//	 1 _ X O _ _   row 2
//	0 _ O _ X _ 6  row 3
//	 _ _ X O _ 5   row 4
//	  _ _ _ _ 4    row 5
//	   0 1 2 3     row 6
type Hex struct {
	side    int
	size    int
	corners []model.Coordinate
}

var _ model.Geometry = (*Hex)(nil)

// NewHex creates a hexagonal geometry with the given edge length
func NewHex(sideLength int) (*Hex, error) {
	if err := checkSideLength(model.BoardKindHex, sideLength); err != nil {
		return nil, err
	}
	size := 2*sideLength - 1
	last := size - 1
	mid := sideLength - 1
	return &Hex{
		side: sideLength,
		size: size,
		corners: []model.Coordinate{
			{Col: mid, Row: 0},    // top left
			{Col: last, Row: 0},   // top right
			{Col: 0, Row: mid},    // mid left
			{Col: last, Row: mid}, // mid right
			{Col: 0, Row: last},   // bottom left
			{Col: mid, Row: last}, // bottom right
		},
	}, nil
}

func (h *Hex) Kind() model.BoardKind {
	return model.BoardKindHex
}

func (h *Hex) SideLength() int {
	return h.side
}

func (h *Hex) Size() int {
	return h.size
}

// InBounds returns true if c is inside the array and inside the hexagon
func (h *Hex) InBounds(c model.Coordinate) bool {
	if c.Col < 0 || c.Col >= h.size || c.Row < 0 || c.Row >= h.size {
		return false
	}
	sum := c.Col + c.Row
	last := h.size - 1
	return sum >= last/2 && sum <= last*3/2
}

func (h *Hex) Directions() []model.Coordinate {
	return cloneCoordinates(hexDirections)
}

func (h *Hex) Corners() []model.Coordinate {
	return cloneCoordinates(h.corners)
}

// Seed rings the empty center tile, alternating colours starting with black
// on the north neighbour
func (h *Hex) Seed() []model.Placement {
	center := model.Coordinate{Col: h.size / 2, Row: h.size / 2}
	seed := make([]model.Placement, 0, len(hexDirections))
	owner := model.Black
	for _, d := range hexDirections {
		seed = append(seed, model.Placement{At: center.Add(d), Player: owner})
		owner = owner.Opponent()
	}
	return seed
}
