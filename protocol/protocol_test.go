package protocol

import "testing"

func TestMessageConstants(t *testing.T) {
	want := map[string]string{
		MsgHello:   "hello",
		MsgWelcome: "welcome",
		MsgStart:   "start",
		MsgPlace:   "place",
		MsgCapture: "capture",
		MsgFinish:  "finish",
		MsgState:   "state",
		MsgError:   "error",
	}
	for got, expect := range want {
		if got != expect {
			t.Fatalf("message constant = %q, want %q", got, expect)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	b, err := Encode(MsgPlace, Place{X: 100, Y: 200, Size: "small", Orientation: "pointing", Angle: 1.5})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.T != MsgPlace {
		t.Fatalf("envelope type = %q, want %q", env.T, MsgPlace)
	}
	p, err := DecodePayload[Place](env)
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if p.X != 100 || p.Y != 200 || p.Size != "small" || p.Orientation != "pointing" || p.Angle != 1.5 {
		t.Fatalf("payload round trip mismatch: %+v", p)
	}
}

func TestEncodeRejectsEmptyInputs(t *testing.T) {
	if _, err := Encode("", Hello{}); err == nil {
		t.Fatalf("expected error encoding empty type")
	}
	if _, err := Encode(MsgHello, nil); err == nil {
		t.Fatalf("expected error encoding nil payload")
	}
	if _, err := DecodeEnvelope(nil); err == nil {
		t.Fatalf("expected error decoding empty envelope")
	}
	if _, err := DecodePayload[Hello](Envelope{T: MsgHello}); err == nil {
		t.Fatalf("expected error decoding empty payload")
	}
}

func TestCanonicalPlayerID(t *testing.T) {
	cases := map[string]string{
		"alice":    "alice",
		":alice":   "alice",
		"  p1  ":   "p1",
		" :p1 ":    "p1",
		"":         "",
	}
	for in, want := range cases {
		if got := CanonicalPlayerID(in); got != want {
			t.Fatalf("CanonicalPlayerID(%q) = %q, want %q", in, got, want)
		}
	}
	if CanonicalPlayerID(":alice") != CanonicalPlayerID("alice") {
		t.Fatalf("symbol and string forms must compare equal after normalization")
	}
}
