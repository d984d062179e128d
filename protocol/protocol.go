package protocol

import (
	"encoding/json"
	"strings"
)

const (
	MsgHello   = "hello"
	MsgWelcome = "welcome"
	MsgStart   = "start"
	MsgPlace   = "place"
	MsgCapture = "capture"
	MsgFinish  = "finish"
	MsgState   = "state"
	MsgError   = "error"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}

// CanonicalPlayerID normalizes the identifier forms clients send, plain
// strings and leading-colon symbol spellings, into the one canonical form
// used everywhere inside the engine. Normalization happens only here at the
// boundary; internal comparisons are plain equality.
func CanonicalPlayerID(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), ":")
}
