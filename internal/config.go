package internal

import (
	"fmt"
	"time"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,required=true"`
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`

	HealthPort     int           `env:"HEALTH_PORT,required=true"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL,default=1s"`
	DebugPort      int           `env:"DEBUG_PORT,default=8081"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LimitMessages  *int   `env:"LIMIT_MESSAGES"`

	AuthSecret        string        `env:"AUTH_SECRET,required=true"`
	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`
	AdminEmail        string        `env:"ADMIN_EMAIL"`

	NumberOfWorkers      int           `env:"NUMBER_OF_WORKERS,required=true"`
	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	MaxDeliveryFailures  int           `env:"MAX_DELIVERY_FAILURES,default=3"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`
	DiagnosticsInterval  time.Duration `env:"DIAGNOSTICS_INTERVAL,default=30s"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`

	CharReplacement string `env:"CHARACTER_REPLACEMENT,required=true"`
	MaxMediaBytes   int    `env:"MAX_MEDIA_BYTES,default=5242880"`
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
