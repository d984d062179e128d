package game

// Mutations are pure: each takes the current snapshot, validates against it,
// builds a transformed clone, re-derives all targets and re-validates the
// data-model invariants before handing the clone back. The caller (one room
// actor per game) swaps the result in atomically; on any error the previous
// snapshot stays in force.

import (
	"time"

	"github.com/google/uuid"
)

// ApplyPlacement validates and applies one placement, returning the next
// snapshot.
func (g *Game) ApplyPlacement(req PlaceRequest, now time.Time) (*Game, error) {
	if v := g.ValidatePlacement(req); v != nil {
		return nil, v
	}

	next := g.clone()
	stash := next.Stashes[req.Player]

	color := next.playerColor(req.Player)
	if req.UseCaptured {
		// Captured pieces keep their original owner's color on re-placement.
		c, ok := stash.TakeCaptured(req.Size)
		if !ok {
			return nil, ErrInternalState
		}
		color = c
	} else {
		stash.Remaining[req.Size]--
	}

	p := Piece{
		ID:       uuid.NewString(),
		Owner:    req.Player,
		Color:    color,
		X:        req.X,
		Y:        req.Y,
		Size:     req.Size,
		Orient:   req.Orient,
		Angle:    req.Angle,
		TargetID: req.TargetID,
	}
	if p.Orient == Pointing && p.TargetID == "" {
		if tgt, ok := next.ClosestValidTarget(p); ok {
			p.TargetID = tgt.ID
		}
	}

	next.Board = append(next.Board, p)
	stash.Placed++
	next.Moves = append(next.Moves, Move{
		Kind:        "place",
		Player:      req.Player,
		PieceID:     p.ID,
		At:          now,
		X:           req.X,
		Y:           req.Y,
		Size:        req.Size,
		Orient:      req.Orient,
		Angle:       req.Angle,
		UseCaptured: req.UseCaptured,
	})

	next.refreshAllTargets()
	if err := next.validate(); err != nil {
		return nil, err
	}
	return next, nil
}

// ApplyCapture validates and applies one capture: the attacker leaves the
// board and enters the capturing player's pool, keeping its original color.
func (g *Game) ApplyCapture(req CaptureRequest, now time.Time) (*Game, error) {
	if v := g.ValidateCapture(req); v != nil {
		return nil, v
	}

	next := g.clone()
	p, ok := next.removePiece(req.PieceID)
	if !ok {
		return nil, ErrInternalState
	}
	stash := next.Stashes[req.Player]
	stash.Captured = append(stash.Captured, CapturedPiece{Size: p.Size, Color: p.Color})
	next.Moves = append(next.Moves, Move{
		Kind:    "capture",
		Player:  req.Player,
		PieceID: req.PieceID,
		At:      now,
	})

	next.refreshAllTargets()
	if err := next.validate(); err != nil {
		return nil, err
	}
	return next, nil
}

// ApplyFinish marks a player done. Idempotent: finishing twice returns the
// same snapshot unchanged.
func (g *Game) ApplyFinish(player string, now time.Time) (*Game, error) {
	if g.Finished[player] {
		return g, nil
	}
	next := g.clone()
	next.Finished[player] = true
	next.Moves = append(next.Moves, Move{Kind: "finish", Player: player, At: now})
	if err := next.validate(); err != nil {
		return nil, err
	}
	return next, nil
}
