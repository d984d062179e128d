package game

import "time"

const (
	BoardWidth  = 1000.0
	BoardHeight = 700.0

	SmallWidth  = 25.0
	MediumWidth = 35.0
	LargeWidth  = 45.0

	SmallPips  = 1
	MediumPips = 2
	LargePips  = 3

	TipOffsetRatio = 0.75 // tip sits this × base width ahead of center

	StashPerSize        = 5
	FirstMovesDefensive = 2 // placements before pointing pieces are allowed
	IcehouseMinPieces   = 8 // placements before a player can be icehoused
)

// Config carries every rules constant so nothing is hardcoded inside the
// engine logic. Zero value is not usable; start from DefaultConfig.
type Config struct {
	BoardWidth  float64
	BoardHeight float64

	BaseWidths [3]float64
	PipValues  [3]int

	TipOffsetRatio float64

	StashPerSize        int
	FirstMovesDefensive int
	IcehouseMinPieces   int

	IcehouseRule bool
	TimeLimit    time.Duration // 0 disables the timer
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:          BoardWidth,
		BoardHeight:         BoardHeight,
		BaseWidths:          [3]float64{SmallWidth, MediumWidth, LargeWidth},
		PipValues:           [3]int{SmallPips, MediumPips, LargePips},
		TipOffsetRatio:      TipOffsetRatio,
		StashPerSize:        StashPerSize,
		FirstMovesDefensive: FirstMovesDefensive,
		IcehouseMinPieces:   IcehouseMinPieces,
		IcehouseRule:        true,
		TimeLimit:           0,
	}
}

// Width returns the base width for a size.
func (c Config) Width(s Size) float64 { return c.BaseWidths[s] }

// Pips returns the attack/defense strength for a size.
func (c Config) Pips(s Size) int { return c.PipValues[s] }

// Reach is how far an attack projects past the tip: twice the tip offset,
// roughly the piece's own height.
func (c Config) Reach(s Size) float64 { return 2 * c.TipOffsetRatio * c.BaseWidths[s] }
