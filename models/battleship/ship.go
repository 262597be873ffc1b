package battleship

// ShipKind is the occupant of a grid cell. ShipKindWater is the
// sentinel for "no ship" and is never placed or counted.
type ShipKind uint8

const (
	ShipKindWater ShipKind = iota
	ShipKindCruiser
	ShipKindBattleship
	ShipKindSubmarine
	ShipKindPatrolBoat
)

// Number of non-water cells on a fully populated grid:
// 1 cruiser(6) + 2 battleships(4) + 3 submarines(3) + 4 patrol boats(2)
const TotalShipCells = 1*6 + 2*4 + 3*3 + 4*2

type shipSpec struct {
	symbol rune
	length int
	count  int
	name   string
}

var shipSpecs = map[ShipKind]shipSpec{
	ShipKindWater:      {symbol: ' ', length: -1, count: -1, name: "water"},
	ShipKindCruiser:    {symbol: 'C', length: 6, count: 1, name: "cruiser"},
	ShipKindBattleship: {symbol: 'B', length: 4, count: 2, name: "battleship"},
	ShipKindSubmarine:  {symbol: 'S', length: 3, count: 3, name: "submarine"},
	ShipKindPatrolBoat: {symbol: 'P', length: 2, count: 4, name: "patrol boat"},
}

// Fleet returns the placeable kinds in the order they are requested
// during the placement phase.
func Fleet() []ShipKind {
	return []ShipKind{ShipKindCruiser, ShipKindBattleship, ShipKindSubmarine, ShipKindPatrolBoat}
}

func (k ShipKind) IsWater() bool {
	return k == ShipKindWater
}

func (k ShipKind) IsValid() bool {
	_, prs := shipSpecs[k]
	return prs
}

func (k ShipKind) Symbol() rune {
	return shipSpecs[k].symbol
}

func (k ShipKind) Length() int {
	return shipSpecs[k].length
}

// Count is the number of copies of this kind in one fleet.
func (k ShipKind) Count() int {
	return shipSpecs[k].count
}

func (k ShipKind) Name() string {
	if !k.IsValid() {
		return "unknown"
	}
	return shipSpecs[k].name
}

func (k ShipKind) String() string {
	return k.Name()
}

// FleetCellCount sums length*count over every placeable kind.
func FleetCellCount() int {
	total := 0
	for _, kind := range Fleet() {
		total += kind.Length() * kind.Count()
	}
	return total
}
