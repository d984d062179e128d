package game

import "testing"

// Combat arithmetic only reads sizes and target assignments, so these boards
// skip the shape math and wire targets directly.

func TestEqualPipsDoesNotIce(t *testing.T) {
	g := testGame(
		standing("d", "p1", 100, 100, SizeSmall),
		pointing("a", "p2", 400, 400, 0, SizeSmall, "d"),
	)
	if g.IsIced(*g.PieceByID("d")) {
		t.Fatalf("1 pip attacking 1 pip iced the defender; equal must not ice")
	}
	if len(g.OverIce()) != 0 {
		t.Fatalf("over-ice entries for a defender that is not iced")
	}
}

func TestExceedingPipsIces(t *testing.T) {
	g := testGame(
		standing("d", "p1", 100, 100, SizeSmall),
		pointing("a", "p2", 400, 400, 0, SizeMedium, "d"),
	)
	if !g.IsIced(*g.PieceByID("d")) {
		t.Fatalf("2 pips attacking 1 pip did not ice")
	}
	entry, ok := g.OverIce()["d"]
	if !ok {
		t.Fatalf("iced defender missing from over-ice record")
	}
	if entry.Excess != 1 {
		t.Fatalf("excess = %d, want 1", entry.Excess)
	}
}

func TestIcingRequiresStrictExcessAcrossAttackers(t *testing.T) {
	g := testGame(
		standing("d", "p1", 100, 100, SizeMedium),
		pointing("a1", "p2", 400, 100, 0, SizeSmall, "d"),
		pointing("a2", "p2", 400, 200, 0, SizeSmall, "d"),
	)
	// 1+1 = 2 pips vs 2 pips: not iced.
	if g.IsIced(*g.PieceByID("d")) {
		t.Fatalf("defender iced at exactly matching pips")
	}

	g.Board = append(g.Board, pointing("a3", "p2", 400, 300, 0, SizeSmall, "d"))
	if !g.IsIced(*g.PieceByID("d")) {
		t.Fatalf("defender not iced at 3 pips vs 2")
	}
	if got := g.OverIce()["d"].Excess; got != 1 {
		t.Fatalf("excess = %d, want 1", got)
	}
}

func TestOverIceAttackersSortedAscendingByPips(t *testing.T) {
	g := testGame(
		standing("d", "p1", 100, 100, SizeSmall),
		pointing("big", "p2", 400, 100, 0, SizeLarge, "d"),
		pointing("small", "p2", 400, 200, 0, SizeSmall, "d"),
	)
	entry := g.OverIce()["d"]
	if len(entry.Attackers) != 2 {
		t.Fatalf("attackers = %d, want 2", len(entry.Attackers))
	}
	if entry.Attackers[0].ID != "small" || entry.Attackers[1].ID != "big" {
		t.Fatalf("attackers not sorted ascending by pips: %v, %v",
			entry.Attackers[0].ID, entry.Attackers[1].ID)
	}
}

func TestCapturableAttackersIndependentOfEachOther(t *testing.T) {
	// Small defender (1 pip) under small + medium (3 pips): excess 2, so the
	// small and the medium are each capturable against the full excess.
	g := testGame(
		standing("d", "p1", 100, 100, SizeSmall),
		pointing("s", "p2", 400, 100, 0, SizeSmall, "d"),
		pointing("m", "p2", 400, 200, 0, SizeMedium, "d"),
	)
	entry := g.OverIce()["d"]
	if entry.Excess != 2 {
		t.Fatalf("excess = %d, want 2", entry.Excess)
	}
	caps := g.CapturableAttackers(entry)
	if len(caps) != 2 {
		t.Fatalf("capturable = %d, want both attackers", len(caps))
	}

	// Large + small (4 pips) vs small: excess 3 admits the small but the
	// large (3 pips) as well; shrink to large alone and only excess 2 is
	// left, which the large no longer fits.
	g2 := testGame(
		standing("d", "p1", 100, 100, SizeSmall),
		pointing("big", "p2", 400, 100, 0, SizeLarge, "d"),
	)
	entry2 := g2.OverIce()["d"]
	if entry2.Excess != 2 {
		t.Fatalf("excess = %d, want 2", entry2.Excess)
	}
	if caps := g2.CapturableAttackers(entry2); len(caps) != 0 {
		t.Fatalf("large attacker capturable against excess 2")
	}
}
