package console

import (
	"fmt"
	"io"
	"strings"

	mb "github.com/saeidalz13/battleships/models/battleship"
)

const (
	ownGridName      = "Your grid"
	opponentGridName = "Opponent"
)

// UserPlayer is a human at the terminal. Every prompt and message goes
// to out, every answer comes from in.
type UserPlayer struct {
	number int
	in     LineReader
	out    io.Writer
}

var _ mb.Player = (*UserPlayer)(nil)
var _ mb.Notifier = (*UserPlayer)(nil)
var _ mb.Observer = (*UserPlayer)(nil)
var _ mb.RematchVoter = (*UserPlayer)(nil)

func NewUserPlayer(number int, in LineReader, out io.Writer) *UserPlayer {
	return &UserPlayer{number: number, in: in, out: out}
}

func (p *UserPlayer) Number() int {
	return p.number
}

func (p *UserPlayer) NextShot() (mb.Coordinates, error) {
	coords, err := p.ask("Please enter a coordinate to shoot:", 1)
	if err != nil {
		return mb.Coordinates{}, err
	}
	return coords[0], nil
}

func (p *UserPlayer) NextShipEndpoints(kind mb.ShipKind) (mb.Coordinates, mb.Coordinates, error) {
	display := fmt.Sprintf("Please enter two coordinates for a %s. The length should be %d:", kind.Name(), kind.Length())
	coords, err := p.ask(display, 2)
	if err != nil {
		return mb.Coordinates{}, mb.Coordinates{}, err
	}
	return coords[0], coords[1], nil
}

func (p *UserPlayer) Notify(msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *UserPlayer) Observe(game *mb.Game, final bool) {
	own, err := game.Grid(p.number)
	if err != nil {
		return
	}
	opponent, err := game.Grid(mb.Opponent(p.number))
	if err != nil {
		return
	}

	if final {
		PrintEndGrid(p.out, opponent, opponentGridName)
		PrintEndGrid(p.out, own, ownGridName)
		return
	}
	PrintGrid(p.out, opponent, opponentGridName)
	PrintGrid(p.out, own, ownGridName)
}

func (p *UserPlayer) WantsRematch() (bool, error) {
	fmt.Fprintln(p.out, "Play again? (y/n)")
	for {
		line, err := p.in.Readline()
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Please answer with y or n")
	}
}

// ask shows display and reads lines until one holds at least n coordinates.
func (p *UserPlayer) ask(display string, n int) ([]mb.Coordinates, error) {
	fmt.Fprintln(p.out, display)
	for {
		line, err := p.in.Readline()
		if err != nil {
			return nil, err
		}

		coords := parseCoordinates(line)
		if len(coords) >= n {
			return coords[:n], nil
		}
		fmt.Fprintln(p.out, wrongFormatMsg)
	}
}
