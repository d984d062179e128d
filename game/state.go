package game

// Internal truth authoritative game state. A *Game is treated as an immutable
// snapshot: mutations clone it, transform the clone and re-validate before
// the caller swaps it in. Nothing in this package blocks or does I/O.

import "time"

type PlayerInfo struct {
	ID    string
	Name  string
	Color string
}

// Move is one applied mutation, kept for the terminal-game record.
type Move struct {
	Kind    string // "place", "capture" or "finish"
	Player  string
	PieceID string
	At      time.Time

	X, Y        float64
	Size        Size
	Orient      Orientation
	Angle       float64
	UseCaptured bool
}

type Game struct {
	Cfg     Config
	Players []PlayerInfo

	// Board order is insertion order; it matters for display z-order and for
	// the deterministic first-in-board-order target tiebreak, nothing else.
	Board []Piece

	Stashes  map[string]*Stash
	Finished map[string]bool
	Moves    []Move

	StartedAt time.Time
}

// NewGame seeds a fresh state for the given players.
func NewGame(cfg Config, players []PlayerInfo, now time.Time) (*Game, error) {
	if len(players) < 2 {
		return nil, ErrInternalState
	}
	g := &Game{
		Cfg:       cfg,
		Players:   make([]PlayerInfo, len(players)),
		Stashes:   make(map[string]*Stash, len(players)),
		Finished:  make(map[string]bool),
		StartedAt: now,
	}
	copy(g.Players, players)
	for _, pl := range players {
		if pl.ID == "" {
			return nil, ErrInternalState
		}
		if _, dup := g.Stashes[pl.ID]; dup {
			return nil, ErrInternalState
		}
		g.Stashes[pl.ID] = &Stash{
			Remaining: [3]int{cfg.StashPerSize, cfg.StashPerSize, cfg.StashPerSize},
		}
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) clone() *Game {
	next := &Game{
		Cfg:       g.Cfg,
		Players:   g.Players,
		Board:     make([]Piece, len(g.Board)),
		Stashes:   make(map[string]*Stash, len(g.Stashes)),
		Finished:  make(map[string]bool, len(g.Finished)),
		Moves:     make([]Move, len(g.Moves), len(g.Moves)+1),
		StartedAt: g.StartedAt,
	}
	copy(next.Board, g.Board)
	copy(next.Moves, g.Moves)
	for id, s := range g.Stashes {
		cp := &Stash{Remaining: s.Remaining, Placed: s.Placed}
		if len(s.Captured) > 0 {
			cp.Captured = make([]CapturedPiece, len(s.Captured))
			copy(cp.Captured, s.Captured)
		}
		next.Stashes[id] = cp
	}
	for id, f := range g.Finished {
		next.Finished[id] = f
	}
	return next
}

// PieceByID returns the board piece with the given id, or nil.
func (g *Game) PieceByID(id string) *Piece {
	if id == "" {
		return nil
	}
	for i := range g.Board {
		if g.Board[i].ID == id {
			return &g.Board[i]
		}
	}
	return nil
}

func (g *Game) playerColor(id string) string {
	for _, pl := range g.Players {
		if pl.ID == id {
			return pl.Color
		}
	}
	return ""
}

func (g *Game) removePiece(id string) (Piece, bool) {
	for i := range g.Board {
		if g.Board[i].ID == id {
			p := g.Board[i]
			g.Board = append(g.Board[:i], g.Board[i+1:]...)
			return p, true
		}
	}
	return Piece{}, false
}

// validate checks the data-model invariants a committed snapshot must hold:
// no two footprints overlap, every pointing piece's target matches a fresh
// closest-valid-target derivation, stash counts are non-negative and every
// piece belongs to a known player. A failure means the engine itself is
// broken, so it surfaces as the internal-state violation.
func (g *Game) validate() error {
	for i := range g.Board {
		for j := i + 1; j < len(g.Board); j++ {
			if g.Cfg.Overlap(g.Board[i], g.Board[j]) {
				return ErrInternalState
			}
		}
	}
	for i := range g.Board {
		p := g.Board[i]
		if _, ok := g.Stashes[p.Owner]; !ok {
			return ErrInternalState
		}
		if p.Orient != Pointing {
			continue
		}
		want := ""
		if tgt, ok := g.ClosestValidTarget(p); ok {
			want = tgt.ID
		}
		if p.TargetID != want {
			return ErrInternalState
		}
	}
	for _, s := range g.Stashes {
		for _, n := range s.Remaining {
			if n < 0 {
				return ErrInternalState
			}
		}
	}
	return nil
}
