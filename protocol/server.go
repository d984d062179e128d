package protocol

type Welcome struct {
	PlayerID string `json:"playerId"`
	Color    string `json:"color"`
	RoomCode string `json:"roomCode,omitempty"`
}

// Error carries a rule violation back to the requester.
type Error struct {
	Code            string `json:"code"`
	Message         string `json:"message"`
	RuleExplanation string `json:"ruleExplanation"`
}

type State struct {
	Started   bool             `json:"started"`
	Over      bool             `json:"over"`
	Players   []PlayerSnapshot `json:"players"`
	Pieces    []PieceSnapshot  `json:"pieces"`
	Stashes   []StashSnapshot  `json:"stashes,omitempty"`
	Scores    map[string]int   `json:"scores,omitempty"`
	Icehoused []string         `json:"icehoused,omitempty"`
	Finished  []string         `json:"finished,omitempty"`
	Winner    string           `json:"winner,omitempty"`
}

type PlayerSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type PieceSnapshot struct {
	ID          string  `json:"id"`
	Owner       string  `json:"owner"`
	Color       string  `json:"color"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Size        string  `json:"size"`
	Orientation string  `json:"orientation"`
	A           float64 `json:"a,omitempty"` // facing angle, pointing only
	TargetID    string  `json:"targetId,omitempty"`
	Iced        bool    `json:"iced,omitempty"`
}

type StashSnapshot struct {
	Player    string            `json:"player"`
	Remaining map[string]int    `json:"remaining"`
	Captured  []CapturedSummary `json:"captured,omitempty"`
	Placed    int               `json:"placed"`
}

type CapturedSummary struct {
	Size  string `json:"size"`
	Color string `json:"color"`
}
