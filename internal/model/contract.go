package model

// TurnListener is called with the player to move after every successful
// move or pass, and once when the game is started.
type TurnListener func(next Player)

// ReadOnlyGame is the read capability of a game. Strategies and views only
// ever see this surface.
type ReadOnlyGame interface {
	Geometry() Geometry
	Size() int
	InBounds(c Coordinate) bool
	// TileAt returns the owner of a tile, None if empty
	TileAt(c Coordinate) (Player, error)
	Turn() Player
	IsGameOver() bool
	Score() Score
	BlackScore() int
	WhiteScore() int
	IsLegal(c Coordinate) bool
	AnyValidMoves() bool
	// LegalMoves lists every legal move for the mover, top-then-left
	LegalMoves() []Coordinate
	Corners() []Coordinate
	Directions() []Coordinate
	// PotentialScore is the number of opponent tiles a move at c would capture
	PotentialScore(c Coordinate) (int, error)
}

// Game is the mutate capability. Only the match controller holds it.
type Game interface {
	ReadOnlyGame
	Move(c Coordinate) error
	Pass() error
	AddListener(l TurnListener)
	// Start emits the initial turn notification
	Start()
}

// Snapshot is a detached copy of a game's state
type Snapshot struct {
	Kind       BoardKind  `json:"kind"`
	SideLength int        `json:"side_length"`
	Tiles      [][]Player `json:"tiles"` // Tiles[col][row]
	Turn       Player     `json:"turn"`
	Passed     bool       `json:"passed"`
	Over       bool       `json:"over"`
}
