package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"icehouse/game"
	"icehouse/protocol"
	"icehouse/room"
)

var upgrader = websocket.Upgrader{
	// For dev, allow all origins. Lock this down in prod.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades websocket connections and pumps decoded envelopes into the
// room actor for the requested code.
type Handler struct {
	Rooms *room.Manager
	Log   zerolog.Logger
}

// wsConn adapts a websocket connection to the room.Conn interface. Writes can
// come from the room goroutine and the ping loop, hence the mutex.
type wsConn struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *wsConn) Send(b []byte) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.conn.WriteMessage(websocket.TextMessage, b)
}

func (w *wsConn) ping() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return w.conn.WriteMessage(websocket.PingMessage, nil)
}

func (w *wsConn) Close() error {
	return w.conn.Close()
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("room")
	rm := h.Rooms.GetOrCreateRoom(code)
	if rm == nil {
		http.Error(rw, "missing room code", http.StatusBadRequest)
		return
	}

	// Upgrade HTTP -> WebSocket
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		h.Log.Warn().Err(err).Msg("upgrade")
		return
	}
	wc := &wsConn{conn: conn}
	defer wc.Close()

	// Basic timeouts + pong handling (keeps connections healthy)
	conn.SetReadLimit(1 << 20) // 1MB
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(25 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := wc.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	playerID, err := h.join(rm, wc)
	if err != nil {
		h.Log.Warn().Err(err).Str("room", code).Msg("join")
		return
	}
	defer func() {
		rm.Inbox <- room.Leave{PlayerID: playerID}
	}()

	log := h.Log.With().Str("room", code).Str("player", playerID).Logger()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			log.Debug().Err(err).Msg("read")
			return
		}
		env, err := protocol.DecodeEnvelope(msg)
		if err != nil {
			log.Debug().Err(err).Msg("bad envelope")
			continue
		}
		h.dispatch(rm, wc, playerID, env, log)
	}
}

// join waits for the client's hello and registers it with the room.
func (h *Handler) join(rm *room.Room, wc *wsConn) (string, error) {
	_, msg, err := wc.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	env, err := protocol.DecodeEnvelope(msg)
	if err != nil {
		return "", err
	}
	var hello protocol.Hello
	if env.T == protocol.MsgHello {
		hello, _ = protocol.DecodePayload[protocol.Hello](env)
	}

	reply := make(chan room.JoinResult, 1)
	rm.Inbox <- room.Join{Conn: wc, Name: protocol.CanonicalPlayerID(hello.Name), Reply: reply}
	res := <-reply

	b, err := protocol.Encode(protocol.MsgWelcome, protocol.Welcome{
		PlayerID: res.PlayerID,
		Color:    res.Color,
		RoomCode: rm.Code,
	})
	if err != nil {
		return res.PlayerID, err
	}
	return res.PlayerID, wc.Send(b)
}

func (h *Handler) dispatch(rm *room.Room, wc *wsConn, playerID string, env protocol.Envelope, log zerolog.Logger) {
	switch env.T {
	case protocol.MsgStart:
		rm.Inbox <- room.Start{PlayerID: playerID}
	case protocol.MsgPlace:
		p, err := protocol.DecodePayload[protocol.Place](env)
		if err != nil {
			log.Debug().Err(err).Msg("bad place payload")
			return
		}
		size, okSize := game.ParseSize(p.Size)
		orient, okOrient := game.ParseOrientation(p.Orientation)
		if !okSize || !okOrient {
			h.sendError(wc, "BadRequest", "unknown size or orientation")
			return
		}
		rm.Inbox <- room.Place{
			PlayerID: playerID,
			Req: game.PlaceRequest{
				X:           p.X,
				Y:           p.Y,
				Size:        size,
				Orient:      orient,
				Angle:       p.Angle,
				TargetID:    p.TargetID,
				UseCaptured: p.UseCaptured,
			},
		}
	case protocol.MsgCapture:
		p, err := protocol.DecodePayload[protocol.Capture](env)
		if err != nil {
			log.Debug().Err(err).Msg("bad capture payload")
			return
		}
		rm.Inbox <- room.Capture{PlayerID: playerID, PieceID: p.PieceID}
	case protocol.MsgFinish:
		rm.Inbox <- room.Finish{PlayerID: playerID}
	default:
		log.Debug().Str("type", env.T).Msg("unknown message type")
	}
}

func (h *Handler) sendError(wc *wsConn, code, msg string) {
	b, err := protocol.Encode(protocol.MsgError, protocol.Error{Code: code, Message: msg})
	if err != nil {
		return
	}
	_ = wc.Send(b)
}
