package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor converts a colour to a tcell.Color. It accepts "#RRGGBB", "RRGGBB",
// the short "#RGB" form and tcell colour names such as "navy".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}

	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return tcell.NewHexColor(int32(v)), nil
		}
	}

	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("invalid color %q", s)
}

// MustParseColor converts a colour string to tcell.Color, panicking on error.
func MustParseColor(s string) tcell.Color {
	color, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return color
}
