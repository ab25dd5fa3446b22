// internal/instruction/types.go
package instruction

import "fmt"

// Action is what an instruction does to every cell inside its disc.
type Action int

const (
	// Mow cuts every cell of the disc. It is the action of unprefixed tokens.
	Mow Action = iota
	// Plant restores the crop on every cell of the disc.
	Plant
	// PlantMow toggles every cell of the disc.
	PlantMow
)

// String returns the token prefix for the action. Mow has no prefix in the
// token grammar but is still named here for logs.
func (a Action) String() string {
	switch a {
	case Mow:
		return "MOW"
	case Plant:
		return "PLANT"
	case PlantMow:
		return "PLANTMOW"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// prefix is the literal that introduces the action in a token.
func (a Action) prefix() string {
	if a == Mow {
		return ""
	}
	return a.String()
}

// Instruction is a single parsed token: an action applied to the disc of the
// given diameter centered on (Row, Col).
type Instruction struct {
	Action   Action
	Row      int // 0..24, from the second letter.
	Col      int // 0..18, from the first letter.
	Diameter int // 1..99
}

// String serializes the instruction back into its canonical token form.
func (in Instruction) String() string {
	return fmt.Sprintf("%s%c%c%d", in.Action.prefix(), rune('a'+in.Col), rune('a'+in.Row), in.Diameter)
}

// Radius returns half the diameter. Odd diameters give a fractional radius.
func (in Instruction) Radius() float64 {
	return float64(in.Diameter) / 2.0
}
