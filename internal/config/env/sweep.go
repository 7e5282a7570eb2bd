package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type sweepEnv struct {
	Enabled  bool          `env:"SWEEP_ENABLED" envDefault:"true"`
	Interval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1h"`
}

type sweep struct {
	raw sweepEnv
}

func NewSweepConfig() (*sweep, error) {
	var raw sweepEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &sweep{raw: raw}, nil
}

func (cfg *sweep) Enabled() bool           { return cfg.raw.Enabled }
func (cfg *sweep) Interval() time.Duration { return cfg.raw.Interval }
