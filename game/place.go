package game

// Placement validation is an ordered chain of independent checks; the first
// failing check wins and its violation is returned unchanged to the player.
// The order is part of the contract: a pointing piece placed as an opening
// move reports the defensive-opening violation even if it also has no target.

type PlaceRequest struct {
	Player      string
	X, Y        float64
	Size        Size
	Orient      Orientation
	Angle       float64
	TargetID    string // optional; auto-derived when empty
	UseCaptured bool
}

// piece builds the candidate piece for geometry checks. It carries no id yet,
// which also keeps it distinct from every board piece in self-exclusion tests.
func (req PlaceRequest) piece() Piece {
	return Piece{
		Owner:  req.Player,
		X:      req.X,
		Y:      req.Y,
		Size:   req.Size,
		Orient: req.Orient,
		Angle:  req.Angle,
	}
}

// ValidatePlacement runs the placement chain against this snapshot and
// returns nil on approval.
func (g *Game) ValidatePlacement(req PlaceRequest) *Violation {
	for _, check := range placementChecks {
		if v := check(g, req); v != nil {
			return v
		}
	}
	return nil
}

type placementCheck func(*Game, PlaceRequest) *Violation

var placementChecks = []placementCheck{
	checkIcehouseLock,
	checkAvailability,
	checkBounds,
	checkOverlap,
	checkDefensiveOpening,
	checkTrajectory,
	checkRange,
	checkLineOfSight,
}

// Icehouse lock: with the rule active, a locked player may not place from the
// stash. Captured pieces stay playable.
func checkIcehouseLock(g *Game, req PlaceRequest) *Violation {
	if !g.Cfg.IcehouseRule || req.UseCaptured {
		return nil
	}
	if g.InIcehouse(req.Player) {
		return ErrPlayerLocked
	}
	return nil
}

func checkAvailability(g *Game, req PlaceRequest) *Violation {
	stash := g.Stashes[req.Player]
	if req.UseCaptured {
		if stash == nil || !stash.HasCaptured(req.Size) {
			return ErrNoCapturedPiecesRemaining
		}
		return nil
	}
	if stash == nil || stash.Remaining[req.Size] <= 0 {
		return ErrNoPiecesRemaining
	}
	return nil
}

func checkBounds(g *Game, req PlaceRequest) *Violation {
	if !g.Cfg.InBounds(req.piece()) {
		return ErrOutOfBounds
	}
	return nil
}

func checkOverlap(g *Game, req PlaceRequest) *Violation {
	p := req.piece()
	for _, other := range g.Board {
		if g.Cfg.Overlap(p, other) {
			return ErrOverlap
		}
	}
	return nil
}

// Defensive opening: pointing pieces only after the first placements, unless
// replaying a captured piece.
func checkDefensiveOpening(g *Game, req PlaceRequest) *Violation {
	if req.Orient != Pointing || req.UseCaptured {
		return nil
	}
	stash := g.Stashes[req.Player]
	if stash != nil && stash.Placed < g.Cfg.FirstMovesDefensive {
		return ErrFirstMovesMustBeDefensive
	}
	return nil
}

func checkTrajectory(g *Game, req PlaceRequest) *Violation {
	if req.Orient != Pointing {
		return nil
	}
	if len(g.PotentialTargets(req.piece())) == 0 {
		return ErrNoTarget
	}
	return nil
}

func checkRange(g *Game, req PlaceRequest) *Violation {
	if req.Orient != Pointing {
		return nil
	}
	if len(g.ValidTargets(req.piece())) == 0 {
		return ErrOutOfRange
	}
	return nil
}

func checkLineOfSight(g *Game, req PlaceRequest) *Violation {
	if req.Orient != Pointing {
		return nil
	}
	if g.HasBlockedTarget(req.piece()) {
		return ErrLineOfSightBlocked
	}
	return nil
}
