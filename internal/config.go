package internal

import "time"

type Config struct {
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath     string        `env:"BLUGE_FILEPATH,required=true"`
	BlobDir           string        `env:"BLOB_DIR,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	SearchLimit       int           `env:"SEARCH_LIMIT,required=true"`
	DebugPort         int           `env:"DEBUG_PORT,default=8081"`
}
