package game

// Violation is a structured rule rejection: a stable machine-readable code,
// a short message and a longer rule explanation, all reported to the
// requesting player verbatim. Every violation except the internal-state one
// is an expected, recoverable outcome that leaves the game unchanged.
type Violation struct {
	Code        string
	Message     string
	Explanation string
}

func (v *Violation) Error() string { return v.Code + ": " + v.Message }

var (
	ErrNoPiecesRemaining = &Violation{
		Code:        "NoPiecesRemaining",
		Message:     "no pieces of that size left in your stash",
		Explanation: "Each player starts with a fixed number of pieces per size. Once a size is exhausted it is never replenished; only captured pieces can still be played.",
	}
	ErrNoCapturedPiecesRemaining = &Violation{
		Code:        "NoCapturedPiecesRemaining",
		Message:     "no captured piece of that size available",
		Explanation: "Captured pieces enter your pool when you capture an over-extended attacker and leave it when re-placed. You can only replay a captured piece of a size you actually hold.",
	}
	ErrOutOfBounds = &Violation{
		Code:        "OutOfBounds",
		Message:     "piece extends outside the play area",
		Explanation: "Every corner of a piece's footprint must lie inside the rectangular board.",
	}
	ErrOverlap = &Violation{
		Code:        "Overlap",
		Message:     "piece overlaps an existing piece",
		Explanation: "Piece footprints may touch edge to edge but never interpenetrate, by any amount.",
	}
	ErrFirstMovesMustBeDefensive = &Violation{
		Code:        "FirstMovesMustBeDefensive",
		Message:     "early placements must be standing pieces",
		Explanation: "A player's opening placements must be defensive. Pointing pieces are allowed only after the defensive opening, except when replaying a captured piece.",
	}
	ErrNoTarget = &Violation{
		Code:        "NoTarget",
		Message:     "not aimed at any opponent defender",
		Explanation: "A pointing piece must be aimed so its attack ray crosses at least one opposing standing piece.",
	}
	ErrOutOfRange = &Violation{
		Code:        "OutOfRange",
		Message:     "no aimed-at defender is within reach",
		Explanation: "An attack reaches twice the tip offset past the tip, roughly the piece's own height. A defender on the ray but beyond that distance cannot be attacked from there.",
	}
	ErrLineOfSightBlocked = &Violation{
		Code:        "LineOfSightBlocked",
		Message:     "another piece blocks the attack",
		Explanation: "The ray from the attacker's tip to its defender must not pass through any other piece first.",
	}
	ErrPlayerLocked = &Violation{
		Code:        "PlayerLocked",
		Message:     "you are in the icehouse",
		Explanation: "With the icehouse rule active, a player whose standing pieces are all iced may not place new pieces from the stash. Captured pieces remain playable.",
	}
	ErrPieceNotFound = &Violation{
		Code:        "PieceNotFound",
		Message:     "no such piece on the board",
		Explanation: "The piece id does not match any piece currently on the board.",
	}
	ErrNotAnAttacker = &Violation{
		Code:        "NotAnAttacker",
		Message:     "only pointing pieces can be captured",
		Explanation: "Standing pieces are never captured; capture applies to attackers that over-iced a defender.",
	}
	ErrNoTargetAssigned = &Violation{
		Code:        "NoTargetAssigned",
		Message:     "piece is not attacking anything",
		Explanation: "A capturable attacker must currently be aimed at a defender.",
	}
	ErrDefenderNotOverIced = &Violation{
		Code:        "DefenderNotOverIced",
		Message:     "its defender is not over-iced",
		Explanation: "Attackers become capturable only once their defender's incoming pips strictly exceed its own value, leaving excess to capture against.",
	}
	ErrNotYourDefender = &Violation{
		Code:        "NotYourDefender",
		Message:     "you do not own the defender",
		Explanation: "Only the owner of the over-iced defender may capture the excess attackers besieging it.",
	}
	ErrExceedsCaptureExcess = &Violation{
		Code:        "ExceedsCaptureExcess",
		Message:     "attacker is worth more than the excess",
		Explanation: "A captured attacker's pip value must fit within the defender's current over-ice excess; removing it may not take the defender below iced.",
	}
	ErrGameNotFound = &Violation{
		Code:        "GameNotFound",
		Message:     "no game in progress",
		Explanation: "The room has no started game for this action.",
	}
	ErrInternalState = &Violation{
		Code:        "InternalStateInvariantViolation",
		Message:     "computed state failed invariant validation",
		Explanation: "The engine produced a next state that violates its own data-model invariants. The mutation was discarded and the previous state kept. This indicates a bug, not a rule rejection.",
	}
)
