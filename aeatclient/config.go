package aeatclient

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the transport settings of AEAT web services
type Config struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

func init() {
	viper.SetDefault("aeat.timeout", 60*time.Second)
	viper.SetDefault("aeat.retry_max", 2)
	viper.SetDefault("aeat.retry_wait_min", 1*time.Second)
	viper.SetDefault("aeat.retry_wait_max", 10*time.Second)
}

// LoadConfig reads the AEAT transport configuration from the server config.
func LoadConfig() Config {
	return Config{
		Timeout:      viper.GetDuration("aeat.timeout"),
		RetryMax:     viper.GetInt("aeat.retry_max"),
		RetryWaitMin: viper.GetDuration("aeat.retry_wait_min"),
		RetryWaitMax: viper.GetDuration("aeat.retry_wait_max"),
	}
}
