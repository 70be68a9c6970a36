package graph

// Config holds configuration options for inspectors
type Config struct {
	IncludePrivate bool // Include names with a leading underscore
	SkipTests      bool // Skip test_*.py / *_test.py files during package inspection
}

func DefaultConfig() *Config {
	return &Config{
		IncludePrivate: true,
		SkipTests:      false,
	}
}
