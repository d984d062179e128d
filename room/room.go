package room

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"icehouse/game"
	"icehouse/protocol"
)

// palette assigned to players by join order
var colors = []string{"red", "blue", "green", "yellow", "purple", "orange", "cyan", "magenta"}

// Room is the actor owning one game. All commands funnel through Inbox and
// are handled by the single Run goroutine, so every mutation is validated
// against exactly the snapshot it replaces and swapped in atomically; two
// conflicting placements can never both commit.
type Room struct {
	Inbox chan any

	log     zerolog.Logger
	rules   game.Config
	clients map[string]Conn
	ncli    atomic.Int32
	players []game.PlayerInfo
	g       *game.Game // nil until started
	over    bool
	nextID  int
	quit    chan struct{}

	Code     string                        // room code (e.g. "ABC123")
	OnEmpty  func(code string)             // called when last player leaves
	OnRecord func(code string, rec []byte) // called once with the terminal record
}

func New(rules game.Config, log zerolog.Logger) *Room {
	return &Room{
		Inbox:   make(chan any, 256),
		log:     log,
		rules:   rules,
		clients: make(map[string]Conn),
		nextID:  1,
		quit:    make(chan struct{}),
	}
}

func (r *Room) Stop() {
	close(r.quit)
}

// NumPlayers returns the current number of connected clients. Read from
// outside the actor goroutine by the manager's room list.
func (r *Room) NumPlayers() int {
	return int(r.ncli.Load())
}

func (r *Room) Run() {
	// The board has no physics tick; the slow ticker only watches the game
	// timer so time-up games terminate without waiting for a command.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-r.quit:
			return
		case cmd := <-r.Inbox:
			r.handleCommand(cmd)
		case <-ticker.C:
			r.checkGameOver()
		}
	}
}

func (r *Room) handleCommand(cmd any) {
	switch c := cmd.(type) {
	case Join:
		r.handleJoin(c)
	case Start:
		r.handleStart(c)
	case Place:
		r.applyMutation(c.PlayerID, func(g *game.Game, now time.Time) (*game.Game, error) {
			c.Req.Player = c.PlayerID
			return g.ApplyPlacement(c.Req, now)
		})
	case Capture:
		r.applyMutation(c.PlayerID, func(g *game.Game, now time.Time) (*game.Game, error) {
			return g.ApplyCapture(game.CaptureRequest{Player: c.PlayerID, PieceID: c.PieceID}, now)
		})
	case Finish:
		r.applyMutation(c.PlayerID, func(g *game.Game, now time.Time) (*game.Game, error) {
			return g.ApplyFinish(c.PlayerID, now)
		})
	case Leave:
		r.handleLeave(c.PlayerID)
	}
}

func (r *Room) handleJoin(c Join) {
	idNum := r.nextID
	playerID := fmt.Sprintf("p%d", idNum)
	r.nextID++
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Player %d", idNum)
	}
	color := colors[(idNum-1)%len(colors)]
	r.clients[playerID] = c.Conn
	r.ncli.Store(int32(len(r.clients)))
	r.players = append(r.players, game.PlayerInfo{ID: playerID, Name: name, Color: color})
	c.Reply <- JoinResult{PlayerID: playerID, Color: color}
	r.sendStateTo(c.Conn)
}

func (r *Room) handleStart(c Start) {
	if r.g != nil {
		r.sendStateTo(r.clients[c.PlayerID])
		return
	}
	g, err := game.NewGame(r.rules, r.players, time.Now())
	if err != nil {
		r.sendError(c.PlayerID, err)
		return
	}
	r.g = g
	r.log.Info().Str("room", r.Code).Int("players", len(r.players)).Msg("game started")
	r.broadcastState()
}

// applyMutation runs one pure mutation against the current snapshot and
// commits the result only on success. Rule violations go back to the issuer;
// an internal invariant failure is logged as a bug and the old state kept.
func (r *Room) applyMutation(playerID string, fn func(*game.Game, time.Time) (*game.Game, error)) {
	if r.g == nil {
		r.sendError(playerID, game.ErrGameNotFound)
		return
	}
	next, err := fn(r.g, time.Now())
	if err != nil {
		if errors.Is(err, game.ErrInternalState) {
			r.log.Error().Str("room", r.Code).Str("player", playerID).
				Msg("mutation produced invalid state, keeping previous snapshot")
		}
		r.sendError(playerID, err)
		return
	}
	r.g = next
	r.broadcastState()
	r.checkGameOver()
}

func (r *Room) checkGameOver() {
	if r.g == nil || r.over || !r.g.GameOver(time.Now()) {
		return
	}
	r.over = true
	endedAt := time.Now()
	r.log.Info().Str("room", r.Code).Str("winner", r.g.Winner()).Msg("game over")
	r.broadcastState()
	if r.OnRecord != nil {
		b, err := game.EncodeRecord(r.g.Record(endedAt))
		if err != nil {
			r.log.Error().Err(err).Str("room", r.Code).Msg("encode game record")
			return
		}
		r.OnRecord(r.Code, b)
	}
}

func (r *Room) handleLeave(playerID string) {
	c, ok := r.clients[playerID]
	if ok {
		r.sendStateTo(c)
		_ = c.Close()
		delete(r.clients, playerID)
		r.ncli.Store(int32(len(r.clients)))
	}
	if len(r.clients) == 0 && r.OnEmpty != nil && r.Code != "" {
		r.OnEmpty(r.Code)
	}
}

func (r *Room) removeClient(playerID string) {
	if c, ok := r.clients[playerID]; ok {
		_ = c.Close()
	}
	delete(r.clients, playerID)
	r.ncli.Store(int32(len(r.clients)))
}

func (r *Room) sendError(playerID string, err error) {
	c, ok := r.clients[playerID]
	if !ok {
		return
	}
	var v *game.Violation
	if !errors.As(err, &v) {
		v = &game.Violation{Code: "Internal", Message: err.Error()}
	}
	b, err := protocol.Encode(protocol.MsgError, protocol.Error{
		Code:            v.Code,
		Message:         v.Message,
		RuleExplanation: v.Explanation,
	})
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) broadcastState() {
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}

	var failed []string
	for id, c := range r.clients {
		if err := c.Send(b); err != nil {
			failed = append(failed, id)
		}
	}
	for _, id := range failed {
		r.removeClient(id)
	}
}

func (r *Room) sendStateTo(c Conn) {
	if c == nil {
		return
	}
	b, err := protocol.Encode(protocol.MsgState, r.buildSnapshot())
	if err != nil {
		return
	}
	_ = c.Send(b)
}

func (r *Room) buildSnapshot() protocol.State {
	snapshot := protocol.State{
		Started: r.g != nil,
		Over:    r.over,
		Players: make([]protocol.PlayerSnapshot, 0, len(r.players)),
	}
	for _, pl := range r.players {
		snapshot.Players = append(snapshot.Players, protocol.PlayerSnapshot{
			ID:    pl.ID,
			Name:  pl.Name,
			Color: pl.Color,
		})
	}
	if r.g == nil {
		return snapshot
	}

	g := r.g
	snapshot.Pieces = make([]protocol.PieceSnapshot, 0, len(g.Board))
	for _, p := range g.Board {
		ps := protocol.PieceSnapshot{
			ID:          p.ID,
			Owner:       p.Owner,
			Color:       p.Color,
			X:           p.X,
			Y:           p.Y,
			Size:        p.Size.String(),
			Orientation: p.Orient.String(),
			TargetID:    p.TargetID,
			Iced:        g.IsIced(p),
		}
		if p.Orient == game.Pointing {
			ps.A = p.Angle
		}
		snapshot.Pieces = append(snapshot.Pieces, ps)
	}
	for _, pl := range g.Players {
		s := g.Stashes[pl.ID]
		if s == nil {
			continue
		}
		ss := protocol.StashSnapshot{
			Player: pl.ID,
			Remaining: map[string]int{
				game.SizeSmall.String():  s.Remaining[game.SizeSmall],
				game.SizeMedium.String(): s.Remaining[game.SizeMedium],
				game.SizeLarge.String():  s.Remaining[game.SizeLarge],
			},
			Placed: s.Placed,
		}
		for _, cp := range s.Captured {
			ss.Captured = append(ss.Captured, protocol.CapturedSummary{
				Size:  cp.Size.String(),
				Color: cp.Color,
			})
		}
		snapshot.Stashes = append(snapshot.Stashes, ss)
	}
	snapshot.Scores = g.Scores()
	snapshot.Icehoused = g.IcehousePlayers()
	for _, pl := range g.Players {
		if g.Finished[pl.ID] {
			snapshot.Finished = append(snapshot.Finished, pl.ID)
		}
	}
	if r.over {
		snapshot.Winner = g.Winner()
	}
	return snapshot
}
