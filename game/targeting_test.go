package game

import (
	"math"
	"reflect"
	"testing"
)

func TestPotentialTargetsFiltersOwnerAndOrientation(t *testing.T) {
	att := pointing("a", "p2", 150, 100, math.Pi, SizeSmall, "")
	g := testGame(
		standing("enemy", "p1", 100, 100, SizeSmall),
		standing("mine", "p2", 100, 150, SizeSmall),
		pointing("enemyAtt", "p1", 100, 50, 0, SizeSmall, ""),
		att,
	)
	// Own piece and the enemy attacker sit off the ray anyway; move them on.
	g.Board[1].X, g.Board[1].Y = 60, 100
	g.Board[2].X, g.Board[2].Y = 30, 100

	got := g.PotentialTargets(att)
	if len(got) != 1 || got[0].ID != "enemy" {
		t.Fatalf("potential targets = %v, want just enemy", got)
	}
}

func TestValidTargetsRequireRange(t *testing.T) {
	att := pointing("a", "p2", 200, 100, math.Pi, SizeSmall, "")
	g := testGame(standing("d", "p1", 100, 100, SizeSmall), att)

	if n := len(g.PotentialTargets(att)); n != 1 {
		t.Fatalf("potential targets = %d, want 1", n)
	}
	if n := len(g.ValidTargets(att)); n != 0 {
		t.Fatalf("valid targets = %d, want 0 (out of reach)", n)
	}
}

func TestClosestValidTargetPicksNearest(t *testing.T) {
	att := pointing("a", "p2", 240, 100, math.Pi, SizeLarge, "")
	g := testGame(
		standing("far", "p1", 145, 100, SizeSmall),
		standing("near", "p1", 180, 100, SizeSmall),
		att,
	)
	if n := len(g.ValidTargets(att)); n != 2 {
		t.Fatalf("valid targets = %d, want 2", n)
	}
	tgt, ok := g.ClosestValidTarget(att)
	if !ok || tgt.ID != "near" {
		t.Fatalf("closest valid target = %v ok=%v, want near", tgt.ID, ok)
	}
}

func TestClosestValidTargetTieBreaksByBoardOrder(t *testing.T) {
	// Two defenders at the same center distance from the attacker, both
	// straddling the ray: the first in board order must win, and keep
	// winning on re-derivation.
	att := pointing("a", "p2", 500, 300, 0, SizeSmall, "")
	g := testGame(
		standing("first", "p1", 550, 295, SizeSmall),
		standing("second", "p1", 550, 305, SizeSmall),
		att,
	)
	for i := 0; i < 3; i++ {
		tgt, ok := g.ClosestValidTarget(att)
		if !ok || tgt.ID != "first" {
			t.Fatalf("tiebreak pick = %q ok=%v, want first", tgt.ID, ok)
		}
	}
}

func TestClearLineOfSight(t *testing.T) {
	att := pointing("a", "p2", 200, 100, math.Pi, SizeLarge, "")
	def := standing("d", "p1", 100, 100, SizeSmall)

	open := testGame(def, att)
	if !open.ClearLineOfSight(att, def) {
		t.Fatalf("unobstructed ray reported blocked")
	}

	// A piece of the attacker's own color still occludes.
	blocked := testGame(def, standing("wall", "p2", 135, 100, SizeSmall), att)
	if blocked.ClearLineOfSight(att, def) {
		t.Fatalf("occluded ray reported clear")
	}
	if !blocked.HasBlockedTarget(att) {
		t.Fatalf("blocked attacker not flagged")
	}
}

func TestHasBlockedTargetFalseWithoutValidTarget(t *testing.T) {
	att := pointing("a", "p2", 200, 100, math.Pi, SizeSmall, "")
	g := testGame(standing("d", "p1", 100, 100, SizeSmall), att) // out of reach
	if g.HasBlockedTarget(att) {
		t.Fatalf("attacker with no valid target reported blocked")
	}
}

func TestRefreshAllTargetsAssignsAndClears(t *testing.T) {
	att := pointing("a", "p2", 150, 100, math.Pi, SizeSmall, "")
	g := testGame(standing("d", "p1", 100, 100, SizeSmall), att)

	g1 := g.RefreshAllTargets()
	if got := g1.PieceByID("a").TargetID; got != "d" {
		t.Fatalf("target after refresh = %q, want d", got)
	}

	// Remove the defender: the stale target must clear on the next refresh.
	g1.Board = g1.Board[1:]
	g2 := g1.RefreshAllTargets()
	if got := g2.PieceByID("a").TargetID; got != "" {
		t.Fatalf("target after defender removed = %q, want empty", got)
	}
}

func TestRefreshAllTargetsIdempotent(t *testing.T) {
	g := testGame(
		standing("d1", "p1", 100, 100, SizeSmall),
		standing("d2", "p1", 300, 300, SizeMedium),
		pointing("a1", "p2", 150, 100, math.Pi, SizeSmall, ""),
		pointing("a2", "p2", 300, 360, -math.Pi/2, SizeMedium, ""),
	)
	once := g.RefreshAllTargets()
	twice := once.RefreshAllTargets()
	if !reflect.DeepEqual(once.Board, twice.Board) {
		t.Fatalf("refresh not idempotent:\n once: %v\ntwice: %v", once.Board, twice.Board)
	}
}
