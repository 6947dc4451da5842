package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/reversi-go/internal/dependencies/random"
	"github.com/mcoot/reversi-go/internal/factory"
	"github.com/mcoot/reversi-go/internal/model"
	"github.com/mcoot/reversi-go/internal/services/bot"
	"github.com/mcoot/reversi-go/internal/view"
)

const playHelp = `Commands:
  move <col>,<row>   place a tile (or just <col>,<row>)
  pass               pass the turn
  hint [strategy]    ask a strategy for a move
  board              show the board again
  help               show this help
  quit               leave the game`

func newPlayCmd() *cobra.Command {
	var (
		black string
		white string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game in the terminal",
		Long: `play starts an interactive game. Each seat is "human" or a machine
strategy; human moves are read from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			factoryCfg, err := cfg.FactoryConfig(black, white, logger)
			if err != nil {
				return err
			}
			text := view.NewText(cmd.OutOrStdout())
			factoryCfg.View = text

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}
			if err := app.Controller.Start(); err != nil {
				return err
			}

			session := newPlaySession(app, text, cmd.OutOrStdout())
			if err := session.run(cmd.InOrStdin()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout(), cmd.ErrOrStderr())
			out.Print(app.Controller.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&black, "black", model.StrategyHuman, "Black seat: human or a machine strategy")
	cmd.Flags().StringVar(&white, "white", model.StrategyAdvanced, "White seat: human or a machine strategy")

	return cmd
}

// playSession reads human commands until the game ends or input runs out
type playSession struct {
	app  *factory.App
	text *view.Text
	out  io.Writer
	// hintRandom is kept apart from the seats' source so hints never shift machine choices
	hintRandom random.Random
}

func newPlaySession(app *factory.App, text *view.Text, out io.Writer) *playSession {
	return &playSession{app: app, text: text, out: out, hintRandom: random.New()}
}

func (p *playSession) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for !p.app.Controller.IsFinished() {
		fmt.Fprint(p.out, "> ")
		if !scanner.Scan() {
			break
		}

		quit, err := p.handle(strings.Fields(scanner.Text()))
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	return scanner.Err()
}

// handle runs one command. Input mistakes are reported and play continues;
// only a failing machine seat ends the session with an error.
func (p *playSession) handle(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	controller := p.app.Controller
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true, nil
	case "help":
		fmt.Fprintln(p.out, playHelp)
	case "board":
		p.text.Render(p.app.Game)
	case "pass":
		p.report(controller.RequestPass())
	case "hint":
		p.hint(fields[1:])
	case "move":
		p.move(strings.Join(fields[1:], " "))
	default:
		p.move(strings.Join(fields, " "))
	}
	return false, controller.Err()
}

func (p *playSession) move(input string) {
	at, err := model.ParseCoordinate(input)
	if err != nil {
		fmt.Fprintf(p.out, "Could not read move %q, type help for commands\n", input)
		return
	}
	p.report(p.app.Controller.RequestMove(at))
}

func (p *playSession) hint(args []string) {
	name := model.StrategyAdvanced
	if len(args) > 0 {
		name = args[0]
	}
	strategy, err := bot.Build(name, p.hintRandom)
	if err != nil {
		fmt.Fprintf(p.out, "%s\n", err)
		return
	}
	move, ok := strategy.ChooseMove(p.app.Game)
	if !ok {
		fmt.Fprintf(p.out, "Suggestion (%s): pass\n", name)
		return
	}
	fmt.Fprintf(p.out, "Suggestion (%s): %s\n", name, move)
}

// report prints errors the view does not already show
func (p *playSession) report(err error) {
	switch {
	case err == nil:
	case errors.Is(err, model.ErrIllegalMove),
		errors.Is(err, model.ErrOutOfBounds),
		errors.Is(err, model.ErrNotPlayerTurn):
	default:
		fmt.Fprintf(p.out, "%s\n", err)
	}
}
