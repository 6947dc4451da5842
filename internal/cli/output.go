package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/view"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.errOut, string(data))
	} else {
		fmt.Fprintf(o.errOut, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.MatchSummary:
		o.printSummary(v)
	case SimulationReport:
		o.printSimulationReport(v)
	case HintResult:
		o.printHintResult(v)
	case []StrategyInfo:
		o.printStrategies(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// SimulationReport is the result of a run of machine-only matches
type SimulationReport struct {
	Board      model.BoardKind      `json:"board"`
	SideLength int                  `json:"side_length"`
	Black      string               `json:"black"`
	White      string               `json:"white"`
	Seed       *uint64              `json:"seed,omitempty"`
	BlackWins  int                  `json:"black_wins"`
	WhiteWins  int                  `json:"white_wins"`
	Ties       int                  `json:"ties"`
	Games      []model.MatchSummary `json:"games"`
}

// Record adds a finished match to the report
func (r *SimulationReport) Record(summary model.MatchSummary) {
	switch summary.Winner {
	case model.Black:
		r.BlackWins++
	case model.White:
		r.WhiteWins++
	default:
		r.Ties++
	}
	r.Games = append(r.Games, summary)
}

// HintResult is a strategy's advice for the player to move
type HintResult struct {
	Board      model.BoardKind    `json:"board"`
	SideLength int                `json:"side_length"`
	Turn       model.Player       `json:"turn"`
	GameOver   bool               `json:"game_over"`
	Score      model.Score        `json:"score"`
	Strategy   string             `json:"strategy"`
	Move       *model.Coordinate  `json:"move"`
	Ranking    []model.Coordinate `json:"ranking,omitempty"`
	LegalMoves []model.Coordinate `json:"legal_moves"`
	Rendered   string             `json:"rendered"`
}

// StrategyInfo describes one selectable seat strategy
type StrategyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Machine     bool   `json:"machine"`
}

func (o *Output) printSummary(s model.MatchSummary) {
	fmt.Fprintf(o.out, "Board: %s (side %d)\n", s.Board, s.SideLength)
	fmt.Fprintf(o.out, "Black: %s\n", s.Black)
	fmt.Fprintf(o.out, "White: %s\n", s.White)
	fmt.Fprintf(o.out, "Score: %s\n", view.FormatScore(s.Score))
	fmt.Fprintf(o.out, "Moves: %d, passes: %d\n", s.Moves, s.Passes)
	if !s.Finished {
		fmt.Fprintln(o.out, "Result: unfinished")
		return
	}
	fmt.Fprintf(o.out, "Result: %s\n", resultText(s.Winner))
	fmt.Fprintf(o.out, "Duration: %s\n", s.Duration.Round(time.Millisecond))
}

func (o *Output) printSimulationReport(r SimulationReport) {
	fmt.Fprintf(o.out, "Board: %s (side %d)\n", r.Board, r.SideLength)
	fmt.Fprintf(o.out, "Black: %s vs White: %s\n", r.Black, r.White)
	if r.Seed != nil {
		fmt.Fprintf(o.out, "Seed: %d\n", *r.Seed)
	}
	fmt.Fprintf(o.out, "Games (%d):\n", len(r.Games))
	for i, g := range r.Games {
		fmt.Fprintf(o.out, "  %d. %s - %s\n", i+1, view.FormatScore(g.Score), resultText(g.Winner))
	}
	fmt.Fprintf(o.out, "Black wins: %d, white wins: %d, ties: %d\n", r.BlackWins, r.WhiteWins, r.Ties)
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Fprint(o.out, h.Rendered)
	fmt.Fprintf(o.out, "Score: %s\n", view.FormatScore(h.Score))
	if h.GameOver {
		fmt.Fprintln(o.out, "Game over")
		return
	}
	fmt.Fprintf(o.out, "To move: %s\n", h.Turn)
	fmt.Fprintf(o.out, "Legal moves: %s\n", view.FormatMoves(h.LegalMoves))
	if len(h.Ranking) > 0 {
		fmt.Fprintf(o.out, "Ranking (%s): %s\n", h.Strategy, view.FormatMoves(h.Ranking))
	}
	if h.Move == nil {
		fmt.Fprintf(o.out, "Suggestion (%s): pass\n", h.Strategy)
		return
	}
	fmt.Fprintf(o.out, "Suggestion (%s): %s\n", h.Strategy, h.Move)
}

func (o *Output) printStrategies(strategies []StrategyInfo) {
	width := 0
	for _, s := range strategies {
		width = max(width, len(s.Name))
	}
	for _, s := range strategies {
		fmt.Fprintf(o.out, "%s  %s\n", s.Name+strings.Repeat(" ", width-len(s.Name)), s.Description)
	}
}

func resultText(winner model.Player) string {
	if winner == model.None {
		return "tie"
	}
	return winner.String() + " wins"
}
