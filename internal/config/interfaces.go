package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	PartsCollection() string
	OrdersCollection() string
	SalesCollection() string
	SupplyCollection() string
	SpecsCollection() string
	DSN() string
}

type Slack interface {
	Enabled() bool
	Token() string
	Channel() string
}
