package game

import "time"

// Icehouse status and scoring, derived per snapshot.

// InIcehouse reports whether a player has placed at least the minimum number
// of pieces, still has a defender on the board, and every one of their
// standing pieces is iced.
func (g *Game) InIcehouse(player string) bool {
	stash := g.Stashes[player]
	if stash == nil || stash.Placed < g.Cfg.IcehouseMinPieces {
		return false
	}
	hasDefender := false
	for _, p := range g.Board {
		if p.Owner != player || p.Orient != Standing {
			continue
		}
		hasDefender = true
		if !g.IsIced(p) {
			return false
		}
	}
	return hasDefender
}

// IcehousePlayers is the set of icehoused players, empty when the rule
// option is disabled.
func (g *Game) IcehousePlayers() []string {
	if !g.Cfg.IcehouseRule {
		return nil
	}
	var out []string
	for _, pl := range g.Players {
		if g.InIcehouse(pl.ID) {
			out = append(out, pl.ID)
		}
	}
	return out
}

// Score sums a player's surviving defenders (standing, not iced) and
// successful attackers (pointing with an iced target). Icehoused players
// score zero regardless of the board.
func (g *Game) Score(player string) int {
	if g.Cfg.IcehouseRule && g.InIcehouse(player) {
		return 0
	}
	total := 0
	for _, p := range g.Board {
		if p.Owner != player {
			continue
		}
		switch p.Orient {
		case Standing:
			if !g.IsIced(p) {
				total += g.Cfg.Pips(p.Size)
			}
		case Pointing:
			if tgt := g.PieceByID(p.TargetID); tgt != nil && g.IsIced(*tgt) {
				total += g.Cfg.Pips(p.Size)
			}
		}
	}
	return total
}

// Scores returns the per-player score map.
func (g *Game) Scores() map[string]int {
	out := make(map[string]int, len(g.Players))
	for _, pl := range g.Players {
		out[pl.ID] = g.Score(pl.ID)
	}
	return out
}

// Winner is the highest-scoring player, first in player order on ties.
func (g *Game) Winner() string {
	winner := ""
	best := -1
	for _, pl := range g.Players {
		if s := g.Score(pl.ID); s > best {
			best = s
			winner = pl.ID
		}
	}
	return winner
}

// GameOver reports whether the game has reached a terminal condition: every
// player has signaled finished, the configured timer has elapsed, or every
// player outside the icehouse has exhausted their regular stash.
func (g *Game) GameOver(now time.Time) bool {
	if g.allFinished() {
		return true
	}
	if g.timeUp(now) {
		return true
	}
	return g.allActiveStashesEmpty()
}

func (g *Game) allFinished() bool {
	for _, pl := range g.Players {
		if !g.Finished[pl.ID] {
			return false
		}
	}
	return len(g.Players) > 0
}

func (g *Game) timeUp(now time.Time) bool {
	return g.Cfg.TimeLimit > 0 && now.Sub(g.StartedAt) >= g.Cfg.TimeLimit
}

func (g *Game) allActiveStashesEmpty() bool {
	icehoused := make(map[string]bool)
	for _, id := range g.IcehousePlayers() {
		icehoused[id] = true
	}
	for _, pl := range g.Players {
		if icehoused[pl.ID] {
			continue
		}
		s := g.Stashes[pl.ID]
		if s == nil {
			continue
		}
		for _, n := range s.Remaining {
			if n > 0 {
				return false
			}
		}
	}
	return true
}
