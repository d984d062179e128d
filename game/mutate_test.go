package game

import (
	"math"
	"testing"
	"time"
)

func mustPlace(t *testing.T, g *Game, req PlaceRequest) *Game {
	t.Helper()
	next, err := g.ApplyPlacement(req, time.Now())
	if err != nil {
		t.Fatalf("placement by %s at (%.0f,%.0f) failed: %v", req.Player, req.X, req.Y, err)
	}
	return next
}

// playOpening walks both players through a defensive opening and two p2
// attacks on p1's first defender, leaving it over-iced by 2.
func playOpening(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(DefaultConfig(), testPlayers(), time.Now())
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	g = mustPlace(t, g, PlaceRequest{Player: "p1", X: 100, Y: 100, Size: SizeSmall, Orient: Standing})
	g = mustPlace(t, g, PlaceRequest{Player: "p1", X: 300, Y: 300, Size: SizeSmall, Orient: Standing})
	g = mustPlace(t, g, PlaceRequest{Player: "p2", X: 500, Y: 500, Size: SizeSmall, Orient: Standing})
	g = mustPlace(t, g, PlaceRequest{Player: "p2", X: 700, Y: 200, Size: SizeSmall, Orient: Standing})
	g = mustPlace(t, g, PlaceRequest{Player: "p2", X: 150, Y: 100, Size: SizeMedium, Orient: Pointing, Angle: math.Pi})
	g = mustPlace(t, g, PlaceRequest{Player: "p2", X: 100, Y: 150, Size: SizeSmall, Orient: Pointing, Angle: -math.Pi / 2})
	return g
}

func TestApplyPlacementAssignsTargetAndBookkeeps(t *testing.T) {
	g := playOpening(t)

	if len(g.Board) != 6 {
		t.Fatalf("board has %d pieces, want 6", len(g.Board))
	}
	defender := g.Board[0]
	mediumAtt := g.Board[4]
	smallAtt := g.Board[5]

	if mediumAtt.TargetID != defender.ID || smallAtt.TargetID != defender.ID {
		t.Fatalf("attackers target %q and %q, want %q", mediumAtt.TargetID, smallAtt.TargetID, defender.ID)
	}
	if got := g.Stashes["p2"].Remaining; got != [3]int{2, 4, 5} {
		t.Fatalf("p2 remaining = %v, want [2 4 5]", got)
	}
	if g.Stashes["p1"].Placed != 2 || g.Stashes["p2"].Placed != 4 {
		t.Fatalf("placed counts = %d/%d, want 2/4", g.Stashes["p1"].Placed, g.Stashes["p2"].Placed)
	}
	for _, p := range g.Board {
		if p.ID == "" {
			t.Fatalf("board piece without id")
		}
	}

	entry, ok := g.OverIce()[defender.ID]
	if !ok || entry.Excess != 2 {
		t.Fatalf("defender over-ice = %+v ok=%v, want excess 2", entry, ok)
	}
}

func TestApplyCaptureMovesPieceToPoolWithOriginalColor(t *testing.T) {
	g := playOpening(t)
	defender := g.Board[0]
	mediumAtt := g.Board[4]
	smallAtt := g.Board[5]

	g2, err := g.ApplyCapture(CaptureRequest{Player: "p1", PieceID: smallAtt.ID}, time.Now())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if len(g2.Board) != 5 {
		t.Fatalf("board has %d pieces after capture, want 5", len(g2.Board))
	}
	pool := g2.Stashes["p1"].Captured
	if len(pool) != 1 || pool[0].Size != SizeSmall || pool[0].Color != "blue" {
		t.Fatalf("captured pool = %+v, want one small keeping p2's blue", pool)
	}

	// The medium still besieges the defender, but only 1 excess remains,
	// freshly re-derived, so it is no longer capturable.
	if got := g2.PieceByID(mediumAtt.ID).TargetID; got != defender.ID {
		t.Fatalf("medium target after capture = %q, want %q", got, defender.ID)
	}
	if _, err := g2.ApplyCapture(CaptureRequest{Player: "p1", PieceID: mediumAtt.ID}, time.Now()); err != ErrExceedsCaptureExcess {
		t.Fatalf("capturing medium against excess 1 = %v, want ExceedsCaptureExcess", err)
	}

	// The original snapshot is untouched.
	if len(g.Board) != 6 || len(g.Stashes["p1"].Captured) != 0 {
		t.Fatalf("capture mutated the previous snapshot")
	}
}

func TestReplayingCapturedPieceKeepsColor(t *testing.T) {
	g := playOpening(t)
	smallAtt := g.Board[5]
	g, err := g.ApplyCapture(CaptureRequest{Player: "p1", PieceID: smallAtt.ID}, time.Now())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}

	remainingBefore := g.Stashes["p1"].Remaining
	g, err = g.ApplyPlacement(PlaceRequest{
		Player: "p1", X: 800, Y: 500, Size: SizeSmall, Orient: Standing, UseCaptured: true,
	}, time.Now())
	if err != nil {
		t.Fatalf("replay captured: %v", err)
	}

	placed := g.Board[len(g.Board)-1]
	if placed.Owner != "p1" || placed.Color != "blue" {
		t.Fatalf("replayed piece owner=%s color=%s, want p1 keeping blue", placed.Owner, placed.Color)
	}
	if len(g.Stashes["p1"].Captured) != 0 {
		t.Fatalf("captured pool not consumed")
	}
	if g.Stashes["p1"].Remaining != remainingBefore {
		t.Fatalf("regular stash changed by a captured placement")
	}
}

func TestApplyFinishIdempotent(t *testing.T) {
	g := playOpening(t)

	g2, err := g.ApplyFinish("p1", time.Now())
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !g2.Finished["p1"] {
		t.Fatalf("p1 not marked finished")
	}
	g3, err := g2.ApplyFinish("p1", time.Now())
	if err != nil {
		t.Fatalf("second finish: %v", err)
	}
	if g3 != g2 {
		t.Fatalf("second finish produced a new snapshot")
	}
	if len(g3.Moves) != len(g2.Moves) {
		t.Fatalf("second finish appended a move")
	}
}

func TestApplyPlacementRejectionsLeaveStateUntouched(t *testing.T) {
	g := playOpening(t)
	before := len(g.Board)

	_, err := g.ApplyPlacement(PlaceRequest{Player: "p1", X: 100, Y: 100, Size: SizeSmall, Orient: Standing}, time.Now())
	if err != ErrOverlap {
		t.Fatalf("overlapping placement = %v, want Overlap", err)
	}
	if len(g.Board) != before {
		t.Fatalf("rejected placement mutated the board")
	}
}
