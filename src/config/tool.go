package config

// ToolConfig identifies the external package-management tool and the
// manifest file it owns.
type ToolConfig struct {
	Binary   string `yaml:"binary"`   // executable name or path (default: cargo)
	Manifest string `yaml:"manifest"` // manifest file name inside the project root (default: Cargo.toml)
}

// DefaultToolConfig returns the cargo defaults.
func DefaultToolConfig() ToolConfig {
	return ToolConfig{
		Binary:   "cargo",
		Manifest: "Cargo.toml",
	}
}

// AuditConfig holds settings for the security audit step of analyze.
type AuditConfig struct {
	// Helper is the installable subcommand crate, probed with
	// "<binary> audit --version" and installed with "<binary> install <helper>".
	Helper string `yaml:"helper"`
}

// DefaultAuditConfig returns the cargo-audit defaults.
func DefaultAuditConfig() AuditConfig {
	return AuditConfig{Helper: "cargo-audit"}
}
