package rank

// ItemKind identifies a consumable item.
type ItemKind string

const (
	// ItemDouble doubles the magnitude of a match result, win or loss.
	ItemDouble ItemKind = "double"
	// ItemShield zeroes out a loss.
	ItemShield ItemKind = "shield"
)

// ItemPrices is the coin cost per unit for buying and selling.
var ItemPrices = map[ItemKind]int{
	ItemDouble: 5,
	ItemShield: 5,
}

// ParseItemKind validates user input naming an item.
func ParseItemKind(s string) (ItemKind, error) {
	kind := ItemKind(s)
	if _, ok := ItemPrices[kind]; !ok {
		return "", ErrInvalidItem
	}
	return kind, nil
}

// ItemFlags marks which items a player activated during a match. Each
// flag can be set at most once per match.
type ItemFlags struct {
	Double bool `json:"double"`
	Shield bool `json:"shield"`
}

// Delta computes the realized point change for a base result under the
// player's item flags. Shield alone zeroes a loss; double doubles the
// result in whichever direction it points, so double alone on a loss
// doubles the penalty; shield wins over double on a loss.
func Delta(base int, flags ItemFlags) int {
	delta := base
	if base < 0 && flags.Shield {
		delta = 0
	}
	if flags.Double {
		if base > 0 {
			delta = base * 2
		} else if base < 0 {
			if flags.Shield {
				delta = 0
			} else {
				delta = base * 2
			}
		}
	}
	return delta
}
