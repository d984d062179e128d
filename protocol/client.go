package protocol

// Request payloads coming in from clients.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional display name
}

// Start begins the game with everyone currently joined.
type Start struct{}

type Place struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Size        string  `json:"size"`        // "small" | "medium" | "large"
	Orientation string  `json:"orientation"` // "standing" | "pointing"
	Angle       float64 `json:"angle,omitempty"`
	TargetID    string  `json:"targetId,omitempty"`
	UseCaptured bool    `json:"useCaptured,omitempty"`
}

type Capture struct {
	PieceID string `json:"pieceId"`
}

type Finish struct{}
