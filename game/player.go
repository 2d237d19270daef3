package game

// MaxWhammies is the whammy-out threshold: four whammies and you're out.
const MaxWhammies = 4

// Player holds one player's score, spin counts, and whammy count. Earned
// spins are the player's own; passed spins were transferred to them by an
// opponent's pass.
type Player struct {
	Score    uint16
	Earned   uint8
	Passed   uint8
	Whammies uint8
}

func (p Player) Spins() int { return int(p.Earned) + int(p.Passed) }

// TakeSpins consumes count spins, drawing from passed spins first.
func (p *Player) TakeSpins(count int) {
	passed := int(p.Passed)
	switch {
	case passed >= count:
		p.Passed = uint8(passed - count)
	default:
		p.Earned -= uint8(count - passed)
		p.Passed = 0
	}
}

// CanPass reports whether the player may pass: they must have earned spins
// and no spins already passed to them.
func (p Player) CanPass() bool { return p.Earned > 0 && p.Passed == 0 }

func (p Player) Out() bool { return p.Whammies >= MaxWhammies }
