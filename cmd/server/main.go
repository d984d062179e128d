package main

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"icehouse/config"
	"icehouse/network"
	"icehouse/room"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg := config.Load(log)

	onRecord := func(code string, rec []byte) {
		if cfg.RecordDir == "" {
			return
		}
		path := filepath.Join(cfg.RecordDir, code+".ihr")
		if err := os.WriteFile(path, rec, 0o644); err != nil {
			log.Error().Err(err).Str("path", path).Msg("write game record")
			return
		}
		log.Info().Str("path", path).Int("bytes", len(rec)).Msg("game record saved")
	}

	rooms := room.NewManager(cfg.Rules, log, onRecord)
	ws := &network.Handler{Rooms: rooms, Log: log}

	mux := http.NewServeMux()
	mux.Handle("/ws", ws)
	mux.HandleFunc("/rooms", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPost:
			_ = json.NewEncoder(w).Encode(map[string]string{"code": rooms.CreateRoom()})
		default:
			_ = json.NewEncoder(w).Encode(rooms.ListRooms())
		}
	})

	log.Info().Str("addr", cfg.Addr).Msg("listening (ws endpoint: /ws)")
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
