package game

// Capture validation: the requester protects one of their own over-iced
// defenders by removing an excess attacker. Ordered checks, first failure
// wins.

type CaptureRequest struct {
	Player  string
	PieceID string
}

// ValidateCapture returns nil when the targeted piece is a capturable
// attacker for this player under the current over-ice bookkeeping.
func (g *Game) ValidateCapture(req CaptureRequest) *Violation {
	p := g.PieceByID(req.PieceID)
	if p == nil {
		return ErrPieceNotFound
	}
	if p.Orient != Pointing {
		return ErrNotAnAttacker
	}
	if p.TargetID == "" {
		return ErrNoTargetAssigned
	}
	entry, ok := g.OverIce()[p.TargetID]
	if !ok {
		return ErrDefenderNotOverIced
	}
	defender := g.PieceByID(p.TargetID)
	if defender == nil || defender.Owner != req.Player {
		return ErrNotYourDefender
	}
	if g.Cfg.Pips(p.Size) > entry.Excess {
		return ErrExceedsCaptureExcess
	}
	return nil
}
