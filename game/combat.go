package game

import "sort"

// Combat bookkeeping is pure pip arithmetic over target assignments; no shape
// math happens here. Everything is derived from the board on demand and never
// stored, so it cannot drift from the pieces themselves.

// OverIceEntry describes one iced defender: the excess attack pips beyond its
// own value and the attackers besieging it, sorted ascending by pip value
// (board order among equals).
type OverIceEntry struct {
	DefenderID string
	Excess     int
	Attackers  []Piece
}

// attackersOn collects the pointing pieces currently targeting a defender, in
// board order.
func (g *Game) attackersOn(defenderID string) []Piece {
	var out []Piece
	for _, p := range g.Board {
		if p.Orient == Pointing && p.TargetID == defenderID {
			out = append(out, p)
		}
	}
	return out
}

func (g *Game) attackPips(defenderID string) int {
	total := 0
	for _, p := range g.attackersOn(defenderID) {
		total += g.Cfg.Pips(p.Size)
	}
	return total
}

// IsIced reports whether a standing piece's incoming pips strictly exceed its
// own value. Equal pips is a stalemate, not an ice.
func (g *Game) IsIced(p Piece) bool {
	if p.Orient != Standing {
		return false
	}
	return g.attackPips(p.ID) > g.Cfg.Pips(p.Size)
}

// IcedPieces returns every iced defender on the board, in board order.
func (g *Game) IcedPieces() []Piece {
	var out []Piece
	for _, p := range g.Board {
		if g.IsIced(p) {
			out = append(out, p)
		}
	}
	return out
}

// OverIce computes the over-ice record for every iced defender. An iced
// defender always carries at least one pip of excess, since icing requires
// strictly exceeding its value.
func (g *Game) OverIce() map[string]OverIceEntry {
	out := make(map[string]OverIceEntry)
	for _, def := range g.IcedPieces() {
		attackers := g.attackersOn(def.ID)
		sort.SliceStable(attackers, func(i, j int) bool {
			return g.Cfg.Pips(attackers[i].Size) < g.Cfg.Pips(attackers[j].Size)
		})
		out[def.ID] = OverIceEntry{
			DefenderID: def.ID,
			Excess:     g.attackPips(def.ID) - g.Cfg.Pips(def.Size),
			Attackers:  attackers,
		}
	}
	return out
}

// CapturableAttackers filters an entry down to attackers whose own pip value
// fits within the excess. Each attacker is judged independently against the
// full excess; the excess is a property of the defender's total state and is
// re-derived fresh after every mutation, so no greedy consumption happens
// within one query.
func (g *Game) CapturableAttackers(entry OverIceEntry) []Piece {
	var out []Piece
	for _, p := range entry.Attackers {
		if g.Cfg.Pips(p.Size) <= entry.Excess {
			out = append(out, p)
		}
	}
	return out
}
