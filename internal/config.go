package internal

import "time"

type Config struct {
	BadgerFilepath      string        `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath       string        `env:"BLUGE_FILEPATH,required=true"`
	LogLevel            string        `env:"LOG_LEVEL,required=true"`
	LimitMessages       *int          `env:"LIMIT_MESSAGES"`
	EmbeddingDim        int           `env:"EMBEDDING_DIM,default=128"`
	SegmentCount        int           `env:"SEGMENT_COUNT,default=3"`
	SegmentInterval     time.Duration `env:"SEGMENT_INTERVAL,default=10m"`
	SyncInterval        time.Duration `env:"SYNC_INTERVAL,default=1m"`
	SyncMaxAttempts     int           `env:"SYNC_MAX_ATTEMPTS,default=3"`
	SyncBaseDelay       time.Duration `env:"SYNC_BASE_DELAY,default=500ms"`
	MonitorInterval     time.Duration `env:"MONITOR_INTERVAL,default=5s"`
	TranscriptSearchTop int           `env:"TRANSCRIPT_SEARCH_TOP,default=10"`
}
