package server

import "time"

// Config configures a Listener: the network and address to bind, the
// per-connection read/write timeout (10 seconds by default), and the
// worker pool size.
type Config struct {
	Network string // e.g. "tcp"
	Address string // e.g. ":8080"
	Timeout time.Duration
	Workers int // 0 means defaultWorkerCount()
}

// DefaultConfig returns a Config with the documented defaults: 10s
// timeout, an automatically sized worker pool.
func DefaultConfig(address string) Config {
	return Config{
		Network: "tcp",
		Address: address,
		Timeout: 10 * time.Second,
	}
}
