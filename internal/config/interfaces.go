package config

import "time"

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	DatabaseName() string
	BottlesCollection() string
	LocationsCollection() string
	DSN() string
}

type Sweep interface {
	Enabled() bool
	Interval() time.Duration
}
