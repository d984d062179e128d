package game

import "math"

// Targeting derives what a pointing piece is attacking from the current board
// snapshot. All of it is recomputed fresh after every mutation; nothing here
// is tracked incrementally, because adding or removing any piece can change
// any other attacker's closest target.

// PotentialTargets are opposing standing pieces crossed by the attacker's
// ray, regardless of distance. Board order is preserved.
func (g *Game) PotentialTargets(att Piece) []Piece {
	var out []Piece
	for _, p := range g.Board {
		if p.ID == att.ID || p.Owner == att.Owner || p.Orient != Standing {
			continue
		}
		if g.Cfg.InFrontOf(att, p) {
			out = append(out, p)
		}
	}
	return out
}

// ValidTargets are potential targets that are also within attack reach.
func (g *Game) ValidTargets(att Piece) []Piece {
	var out []Piece
	for _, p := range g.PotentialTargets(att) {
		if g.Cfg.WithinRange(att, p) {
			out = append(out, p)
		}
	}
	return out
}

// ClosestValidTarget picks the valid target nearest by center distance.
// Equidistant candidates resolve to the first in board order, which keeps the
// choice deterministic across re-derivations.
func (g *Game) ClosestValidTarget(att Piece) (Piece, bool) {
	best := Piece{}
	bestDist := math.Inf(1)
	found := false
	for _, p := range g.ValidTargets(att) {
		d := centerDistance(att, p)
		if d < bestDist {
			best = p
			bestDist = d
			found = true
		}
	}
	return best, found
}

// ClearLineOfSight reports whether no third piece cuts the ray between the
// attacker's tip and the target's near edge. Attacker and target are excluded
// by identity; the attacker's own pieces do occlude.
func (g *Game) ClearLineOfSight(att, tgt Piece) bool {
	sin, cos := math.Sincos(att.Angle)
	tip := g.Cfg.Tip(att)
	dir := Point{X: cos, Y: sin}
	tTarget, ok := rayPolygon(tip, dir, g.Cfg.Vertices(tgt))
	if !ok {
		return true
	}
	for _, p := range g.Board {
		if p.ID == att.ID || p.ID == tgt.ID {
			continue
		}
		if t, hit := rayPolygon(tip, dir, g.Cfg.Vertices(p)); hit && t < tTarget-geomEps {
			return false
		}
	}
	return true
}

// HasBlockedTarget reports the "blocked" condition: a valid target exists but
// the closest one is occluded. This is distinct from having no target at all
// and from every target being out of range.
func (g *Game) HasBlockedTarget(att Piece) bool {
	tgt, ok := g.ClosestValidTarget(att)
	if !ok {
		return false
	}
	return !g.ClearLineOfSight(att, tgt)
}

// refreshAllTargets re-derives every pointing piece's target against the
// current board. Deliberately a full O(n²) pass per mutation: target
// correctness depends on global board state, not local deltas, and the pass
// is idempotent.
func (g *Game) refreshAllTargets() {
	for i := range g.Board {
		if g.Board[i].Orient != Pointing {
			continue
		}
		if tgt, ok := g.ClosestValidTarget(g.Board[i]); ok {
			g.Board[i].TargetID = tgt.ID
		} else {
			g.Board[i].TargetID = ""
		}
	}
}

// RefreshAllTargets returns a snapshot with every target re-derived. The
// receiver is not modified.
func (g *Game) RefreshAllTargets() *Game {
	next := g.clone()
	next.refreshAllTargets()
	return next
}
