package game

// Shared test fixtures. Boards built directly here bypass the mutation
// engine, which is fine for exercising the pure derivations.

func testPlayers() []PlayerInfo {
	return []PlayerInfo{
		{ID: "p1", Name: "Alice", Color: "red"},
		{ID: "p2", Name: "Bob", Color: "blue"},
	}
}

func testGame(pieces ...Piece) *Game {
	return &Game{
		Cfg:     DefaultConfig(),
		Players: testPlayers(),
		Stashes: map[string]*Stash{
			"p1": {Remaining: [3]int{5, 5, 5}},
			"p2": {Remaining: [3]int{5, 5, 5}},
		},
		Finished: make(map[string]bool),
		Board:    pieces,
	}
}

func standing(id, owner string, x, y float64, size Size) Piece {
	return Piece{ID: id, Owner: owner, X: x, Y: y, Size: size, Orient: Standing}
}

func pointing(id, owner string, x, y, angle float64, size Size, target string) Piece {
	return Piece{ID: id, Owner: owner, X: x, Y: y, Size: size, Orient: Pointing, Angle: angle, TargetID: target}
}
