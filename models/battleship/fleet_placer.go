package battleship

import (
	cerr "github.com/saeidalz13/battleships/internal/error"
)

// FleetPlacer fills one grid with the full fleet of one player.
type FleetPlacer struct {
	grid   *Grid
	player Player
}

func NewFleetPlacer(grid *Grid, player Player) FleetPlacer {
	return FleetPlacer{grid: grid, player: player}
}

// PlaceFleet asks the player for every ship of the fleet in catalog
// order and keeps asking until each one is legally placed. There is no
// bound on attempts. Shape and collision errors go back to the player
// as feedback; the only error returned is a failure of the player itself.
func (fp FleetPlacer) PlaceFleet() error {
	for _, kind := range Fleet() {
		for i := 0; i < kind.Count(); i++ {
			if err := fp.placeShip(kind); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fp FleetPlacer) placeShip(kind ShipKind) error {
	for {
		from, to, err := fp.player.NextShipEndpoints(kind)
		if err != nil {
			return err
		}

		if err := fp.validateShape(from, to, kind); err != nil {
			notify(fp.player, err.Error())
			continue
		}

		if err := fp.grid.PlaceShip(from, to, kind); err != nil {
			notify(fp.player, err.Error())
			continue
		}
		return nil
	}
}

func (fp FleetPlacer) validateShape(from, to Coordinates, kind ShipKind) error {
	if !fp.grid.InBounds(from) {
		return cerr.ErrXorYOutOfGridBound(from.X, from.Y)
	}
	if !fp.grid.InBounds(to) {
		return cerr.ErrXorYOutOfGridBound(to.X, to.Y)
	}
	if !from.IsCollinear(to) {
		return cerr.ErrShipNotStraight(kind.Name())
	}
	if length := from.Distance(to) + 1; length != kind.Length() {
		return cerr.ErrShipLength(kind.Name(), kind.Length(), length)
	}
	return nil
}
