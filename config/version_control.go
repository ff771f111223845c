package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v0.2.0"

	// Modular tools
	Benchmark    = "v1.1.0"
	PA_Stats     = "v0.2.0"
	Sanity_check = "v1.0.0"
)
