package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"icehouse/game"
)

// Server holds everything the binary needs at startup: where to listen, where
// terminal game records go, and the full rules configuration.
type Server struct {
	Addr      string
	RecordDir string
	Rules     game.Config
}

// Load reads .env (if present) plus the environment and applies overrides on
// top of the rules defaults. Constants stay configuration, not literals.
func Load(log zerolog.Logger) Server {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment as-is")
	}

	rules := game.DefaultConfig()
	rules.BoardWidth = envFloat("ICEHOUSE_BOARD_WIDTH", rules.BoardWidth)
	rules.BoardHeight = envFloat("ICEHOUSE_BOARD_HEIGHT", rules.BoardHeight)
	rules.StashPerSize = envInt("ICEHOUSE_STASH_PER_SIZE", rules.StashPerSize)
	rules.FirstMovesDefensive = envInt("ICEHOUSE_DEFENSIVE_MOVES", rules.FirstMovesDefensive)
	rules.IcehouseMinPieces = envInt("ICEHOUSE_MIN_PIECES", rules.IcehouseMinPieces)
	rules.IcehouseRule = envBool("ICEHOUSE_RULE", rules.IcehouseRule)
	if secs := envInt("ICEHOUSE_TIME_LIMIT_SECONDS", 0); secs > 0 {
		rules.TimeLimit = time.Duration(secs) * time.Second
	}

	return Server{
		Addr:      envString("ICEHOUSE_ADDR", ":8080"),
		RecordDir: envString("ICEHOUSE_RECORD_DIR", ""),
		Rules:     rules,
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
