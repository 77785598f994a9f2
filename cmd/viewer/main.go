package main

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"

	"messenger-lab/internal"
)

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// Note: BypassLockGuard allows opening while another process holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Start the inspector only; nothing else runs in viewer mode
	emptyStats := func() map[string]any {
		return map[string]any{
			"Status": "Viewer Mode (Read-Only)",
			"Time":   time.Now().Format(time.RFC822),
		}
	}

	fmt.Printf("Viewer started at http://localhost:%d/inspect\n", config.DebugPort)
	internal.StartDebugServer(db, config.DebugPort, "/inspect", MessageMapper, emptyStats)
	select {}
}

// MessageMapper enriches the default key parsing with the decoded
// message body for "msg:" rows.
func MessageMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	if row.Type != "MESSAGE" {
		return row
	}

	var body struct {
		SenderName string `json:"sender_name"`
		Kind       string `json:"kind"`
		Payload    string `json:"payload"`
	}
	if err := json.Unmarshal(val, &body); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = "MESSAGE/" + body.Kind
	row.Detail = fmt.Sprintf("%s: %s", body.SenderName, body.Payload)
	return row
}
