package envconfig

import "github.com/caarlos0/env/v11"

type slackEnv struct {
	Enabled bool   `env:"SLACK_ENABLED" envDefault:"false"`
	Token   string `env:"SLACK_BOT_TOKEN"`
	Channel string `env:"SLACK_CHANNEL"`
}

type slack struct {
	raw slackEnv
}

func NewSlackConfig() (*slack, error) {
	var raw slackEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &slack{raw: raw}, nil
}

func (cfg *slack) Enabled() bool   { return cfg.raw.Enabled }
func (cfg *slack) Token() string   { return cfg.raw.Token }
func (cfg *slack) Channel() string { return cfg.raw.Channel }
