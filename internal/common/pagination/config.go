// Package pagination provides a reusable offset-based pagination framework
// with 0-based page numbering.
package pagination

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage int // Default page number (0-based, typically 0)
	DefaultSize int // Default items per page (typically 10)
	MaxSize     int // Maximum allowed items per page (typically 100)
}

// DefaultConfig returns the default pagination configuration.
// Default values: page=0, size=10, max=100
func DefaultConfig() Config {
	return Config{
		DefaultPage: 0,
		DefaultSize: 10,
		MaxSize:     100,
	}
}
