package room

import "icehouse/game"

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	PlayerID string
	Color    string
}

// Start: begin the game with everyone currently joined
type Start struct {
	PlayerID string
}

// Place: one placement attempt, validated against the current snapshot
type Place struct {
	PlayerID string
	Req      game.PlaceRequest
}

// Capture: remove an over-extended attacker into the player's pool
type Capture struct {
	PlayerID string
	PieceID  string
}

// Finish: player signals they are done placing
type Finish struct {
	PlayerID string
}

// Leave: issued on disconnect
type Leave struct {
	PlayerID string
}
