package http

import "fmt"

// DefaultPort matches what hosting platforms probe by default.
const DefaultPort = 8080

// Config holds web server configuration.
type Config struct {
	Port int `json:"port"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{Port: DefaultPort}
}

func (c Config) listen() string {
	port := c.Port
	if port <= 0 {
		port = DefaultPort
	}
	return fmt.Sprintf(":%d", port)
}
