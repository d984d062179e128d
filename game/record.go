package game

// Persistence boundary: a terminal snapshot is reduced to a self-contained
// record and encoded compactly. No I/O happens here; an external storage
// component decides where the bytes go.

import (
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

type PieceRecord struct {
	ID       string  `msgpack:"id"`
	Owner    string  `msgpack:"owner"`
	Color    string  `msgpack:"color"`
	X        float64 `msgpack:"x"`
	Y        float64 `msgpack:"y"`
	Size     string  `msgpack:"size"`
	Orient   string  `msgpack:"orient"`
	Angle    float64 `msgpack:"angle,omitempty"`
	TargetID string  `msgpack:"target,omitempty"`
}

type MoveRecord struct {
	Kind        string    `msgpack:"kind"`
	Player      string    `msgpack:"player"`
	PieceID     string    `msgpack:"piece,omitempty"`
	At          time.Time `msgpack:"at"`
	X           float64   `msgpack:"x,omitempty"`
	Y           float64   `msgpack:"y,omitempty"`
	Size        string    `msgpack:"size,omitempty"`
	Orient      string    `msgpack:"orient,omitempty"`
	Angle       float64   `msgpack:"angle,omitempty"`
	UseCaptured bool      `msgpack:"captured,omitempty"`
}

type GameRecord struct {
	Players   []PlayerInfo   `msgpack:"players"`
	Board     []PieceRecord  `msgpack:"board"`
	Moves     []MoveRecord   `msgpack:"moves"`
	Scores    map[string]int `msgpack:"scores"`
	Winner    string         `msgpack:"winner"`
	Icehoused []string       `msgpack:"icehoused,omitempty"`
	StartedAt time.Time      `msgpack:"startedAt"`
	EndedAt   time.Time      `msgpack:"endedAt"`
}

// Record reduces a terminal game to its archival form.
func (g *Game) Record(endedAt time.Time) GameRecord {
	rec := GameRecord{
		Players:   append([]PlayerInfo(nil), g.Players...),
		Board:     make([]PieceRecord, 0, len(g.Board)),
		Moves:     make([]MoveRecord, 0, len(g.Moves)),
		Scores:    g.Scores(),
		Winner:    g.Winner(),
		Icehoused: g.IcehousePlayers(),
		StartedAt: g.StartedAt,
		EndedAt:   endedAt,
	}
	for _, p := range g.Board {
		pr := PieceRecord{
			ID:       p.ID,
			Owner:    p.Owner,
			Color:    p.Color,
			X:        p.X,
			Y:        p.Y,
			Size:     p.Size.String(),
			Orient:   p.Orient.String(),
			TargetID: p.TargetID,
		}
		if p.Orient == Pointing {
			pr.Angle = p.Angle
		}
		rec.Board = append(rec.Board, pr)
	}
	for _, m := range g.Moves {
		mr := MoveRecord{
			Kind:        m.Kind,
			Player:      m.Player,
			PieceID:     m.PieceID,
			At:          m.At,
			UseCaptured: m.UseCaptured,
		}
		if m.Kind == "place" {
			mr.X = m.X
			mr.Y = m.Y
			mr.Size = m.Size.String()
			mr.Orient = m.Orient.String()
			mr.Angle = m.Angle
		}
		rec.Moves = append(rec.Moves, mr)
	}
	return rec
}

// EncodeRecord serializes a game record to msgpack bytes.
func EncodeRecord(rec GameRecord) ([]byte, error) {
	return msgpack.Marshal(rec)
}

// DecodeRecord restores a game record from msgpack bytes.
func DecodeRecord(b []byte) (GameRecord, error) {
	var rec GameRecord
	err := msgpack.Unmarshal(b, &rec)
	return rec, err
}
