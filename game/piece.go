package game

// Size is the ordinal tier of a pyramid. Base width and pip value are looked
// up through Config so nothing about a piece's strength is baked in here.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

func (s Size) Valid() bool { return s >= SizeSmall && s <= SizeLarge }

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return "unknown"
}

func ParseSize(s string) (Size, bool) {
	switch s {
	case "small":
		return SizeSmall, true
	case "medium":
		return SizeMedium, true
	case "large":
		return SizeLarge, true
	}
	return 0, false
}

type Orientation uint8

const (
	Standing Orientation = iota // defensive, square footprint
	Pointing                    // offensive, triangular footprint
)

func (o Orientation) String() string {
	if o == Pointing {
		return "pointing"
	}
	return "standing"
}

func ParseOrientation(s string) (Orientation, bool) {
	switch s {
	case "standing":
		return Standing, true
	case "pointing":
		return Pointing, true
	}
	return 0, false
}

// Piece is immutable once placed: position, size, orientation and angle never
// change afterwards. TargetID is the one derived field, overwritten by every
// full-board target refresh ("" when the piece is not aimed at anything).
type Piece struct {
	ID    string
	Owner string
	Color string

	X, Y float64

	Size   Size
	Orient Orientation

	// Angle in radians, 0 = facing +x. Only meaningful when pointing.
	Angle float64

	TargetID string
}

// CapturedPiece sits in a player's captured pool. It keeps the size and the
// original owner's color, and is replayable as the capturing player's move.
type CapturedPiece struct {
	Size  Size
	Color string
}

// Stash tracks a player's unplaced pieces. Remaining only ever decreases;
// Captured gains entries via capture and loses them via re-placement. Placed
// is the lifetime placement count, captured placements included.
type Stash struct {
	Remaining [3]int
	Captured  []CapturedPiece
	Placed    int
}

// TakeCaptured removes the first captured piece of the given size and returns
// its original color. Callers must have checked availability first.
func (s *Stash) TakeCaptured(size Size) (string, bool) {
	for i, cp := range s.Captured {
		if cp.Size == size {
			color := cp.Color
			s.Captured = append(s.Captured[:i], s.Captured[i+1:]...)
			return color, true
		}
	}
	return "", false
}

// HasCaptured reports whether the pool holds a piece of the given size.
func (s *Stash) HasCaptured(size Size) bool {
	for _, cp := range s.Captured {
		if cp.Size == size {
			return true
		}
	}
	return false
}
