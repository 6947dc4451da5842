package model

// Player is the owner of a tile. None marks an empty tile.
type Player int

const (
	None  Player = iota
	Black        // moves first
	White
)

// Opponent returns the other player. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return None
	}
}

func (p Player) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Symbol returns the single character used to draw a tile
func (p Player) Symbol() string {
	switch p {
	case Black:
		return "X"
	case White:
		return "O"
	default:
		return "_"
	}
}

// Score holds both players' tile counts
type Score struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Total returns the number of placed tiles
func (s Score) Total() int {
	return s.Black + s.White
}

// Leader returns the player with more tiles, or None on a tie
func (s Score) Leader() Player {
	switch {
	case s.Black > s.White:
		return Black
	case s.White > s.Black:
		return White
	default:
		return None
	}
}

// MarshalText encodes a player by name
func (p Player) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a player name written by MarshalText
func (p *Player) UnmarshalText(text []byte) error {
	switch string(text) {
	case "black":
		*p = Black
	case "white":
		*p = White
	default:
		*p = None
	}
	return nil
}
