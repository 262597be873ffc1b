package error

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds           = errors.New("coordinates out of game grid bound")
	ErrShipShape             = errors.New("incorrect ship size or orientation")
	ErrShipCollision         = errors.New("ship intersects or is too close to another ship")
	ErrAlreadyShot           = errors.New("position already shot")
	ErrNotShipCell           = errors.New("position is not part of a ship")
	ErrGameNotExists         = errors.New("game does not exist")
	ErrInvalidGameDifficulty = errors.New("invalid game difficulty")
	ErrInvalidGridSize       = errors.New("invalid grid size")
	ErrInvalidPlayerNumber   = errors.New("invalid player number")
	ErrGridsAlreadyPopulated = errors.New("grids are already populated")
	ErrGameOver              = errors.New("game is already over")
)

func ErrGameNotExistsUuid(gameUuid string) error {
	return fmt.Errorf("%w, uuid: %s", ErrGameNotExists, gameUuid)
}

func ErrXorYOutOfGridBound(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrOutOfBounds, x, y)
}

func ErrAttackPositionAlreadyFilled(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrAlreadyShot, x, y)
}

func ErrPositionNotShip(x, y int) error {
	return fmt.Errorf("%w\tx: %d\ty: %d", ErrNotShipCell, x, y)
}

func ErrShipNotStraight(shipName string) error {
	return fmt.Errorf("%w: %s endpoints must share a row or a column", ErrShipShape, shipName)
}

func ErrShipLength(shipName string, expected, got int) error {
	return fmt.Errorf("%w: %s must be %d long, got %d", ErrShipShape, shipName, expected, got)
}

func ErrShipCollides(shipName string) error {
	return fmt.Errorf("%w: %s", ErrShipCollision, shipName)
}

func ErrDifficulty(difficulty uint8) error {
	return fmt.Errorf("%w: %d", ErrInvalidGameDifficulty, difficulty)
}

func ErrGridSize(size, min, max int) error {
	return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidGridSize, size, min, max)
}

func ErrPlayerNumber(playerNumber int) error {
	return fmt.Errorf("%w: %d", ErrInvalidPlayerNumber, playerNumber)
}
