package collision

import (
	"fmt"
	"strings"

	"github.com/samdwyer/tilewalk/internal/world"
)

// Solidity decides whether an in-bounds cell blocks movement.
// Cells outside the grid are always solid regardless of the rule.
type Solidity func(c world.Cell) bool

// PassableOnly makes every cell solid except those holding exactly passable.
func PassableOnly(passable world.Cell) Solidity {
	return func(c world.Cell) bool {
		return c != passable
	}
}

// BlockedOnly makes only cells holding exactly blocked solid. With world.Water
// this is the island rule: land is walkable, open water is not.
func BlockedOnly(blocked world.Cell) Solidity {
	return func(c world.Cell) bool {
		return c == blocked
	}
}

// DefaultSolidity treats everything but empty water as solid.
func DefaultSolidity() Solidity {
	return PassableOnly(world.Water)
}

// ParseSolidity builds a rule from a mode ("passable" or "blocked") and a cell type name.
func ParseSolidity(mode, cell string) (Solidity, error) {
	c, err := world.ParseCell(cell)
	if err != nil {
		return nil, fmt.Errorf("solidity cell: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "passable", "":
		return PassableOnly(c), nil
	case "blocked":
		return BlockedOnly(c), nil
	default:
		return nil, fmt.Errorf("unknown solidity mode %q", mode)
	}
}

// solidAt applies the rule with out-of-bounds treated as solid.
func (s Solidity) solidAt(g *world.Grid, row, col int) bool {
	c, ok := g.Get(row, col)
	if !ok {
		return true
	}
	return s(c)
}
