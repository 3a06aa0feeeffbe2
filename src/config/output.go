package config

// Color modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `yaml:"color"` // auto (default), always, never
}

// DefaultOutputConfig returns auto-detected color output.
func DefaultOutputConfig() OutputConfig {
	return OutputConfig{Color: ColorAuto}
}
