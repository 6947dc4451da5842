package match

import (
	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/bot"
)

// Seat is one side of the board: a human moving through the front end, or
// a machine moving through a strategy
type Seat struct {
	Name     string
	strategy bot.CommittedStrategy
}

// HumanSeat creates a seat whose moves arrive through RequestMove/RequestPass
func HumanSeat() Seat {
	return Seat{Name: model.StrategyHuman}
}

// MachineSeat creates a seat that moves on its own whenever it is its turn
func MachineSeat(name string, strategy bot.CommittedStrategy) Seat {
	return Seat{Name: name, strategy: strategy}
}

// IsMachine returns true if the seat plays through a strategy
func (s Seat) IsMachine() bool {
	return s.strategy != nil
}
