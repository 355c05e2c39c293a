package grayset

import (
	"errors"
	"fmt"
)

const (
	MinPower       = 1
	MaxPower       = 10
	DefaultBuckets = 16
	DefaultPerLine = 4
)

var (
	ErrInvalidPower = errors.New("invalid power range")
)

type Config struct {
	Power    int   `mapstructure:"power"`    // width of every gray code
	Buckets  int   `mapstructure:"buckets"`  // bucket count of generated sets
	Seed     int64 `mapstructure:"seed"`     // 0 means time based
	Multiset bool  `mapstructure:"multiset"` // keep duplicates
	PerLine  int   `mapstructure:"per_line"` // values per output row
	Verbose  bool  `mapstructure:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Power:   2,
		Buckets: DefaultBuckets,
		PerLine: DefaultPerLine,
	}
}

func (c Config) Validate() error {
	if c.Power < MinPower || c.Power > MaxPower {
		return fmt.Errorf("%w: %d not in %d - %d", ErrInvalidPower, c.Power, MinPower, MaxPower)
	}
	if c.Buckets <= 0 {
		return fmt.Errorf("buckets must be greater than 0, got %d", c.Buckets)
	}
	if c.PerLine <= 0 {
		return fmt.Errorf("per_line must be greater than 0, got %d", c.PerLine)
	}
	return nil
}
