package battleship

const (
	PlayerOne int = iota
	PlayerTwo
)

// Player is a move source. Errors returned from it are input failures
// (closed input, interrupt), never rule violations: a source may hand
// back any coordinates and the game rejects the illegal ones.
type Player interface {
	Number() int
	NextShot() (Coordinates, error)
	NextShipEndpoints(kind ShipKind) (Coordinates, Coordinates, error)
}

// Notifier is implemented by players that want to hear why a move was
// rejected and how shots turned out.
type Notifier interface {
	Notify(msg string)
}

// Observer is implemented by players that look at the grids before
// their turn and once more when the match is over.
type Observer interface {
	Observe(game *Game, final bool)
}

type RematchVoter interface {
	WantsRematch() (bool, error)
}

func Opponent(playerNumber int) int {
	return 1 - playerNumber
}

func isValidPlayerNumber(playerNumber int) bool {
	return playerNumber == PlayerOne || playerNumber == PlayerTwo
}

func notify(p Player, msg string) {
	if n, ok := p.(Notifier); ok {
		n.Notify(msg)
	}
}
