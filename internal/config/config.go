// Package config provides configuration management for the Gridline engine.
package config

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Engine     EngineConfig     `mapstructure:"engine" validate:"required"`
	Settlement SettlementConfig `mapstructure:"settlement" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// EngineConfig holds the analysis pipeline tunables
type EngineConfig struct {
	// Acceptable American odds band, inclusive
	OddsBandMin int `mapstructure:"odds_band_min" validate:"required"`
	OddsBandMax int `mapstructure:"odds_band_max" validate:"required,gtfield=OddsBandMin"`

	// Shrink applied to every model probability before EV
	ConservativeFactor float64 `mapstructure:"conservative_factor" validate:"required,gt=0,lte=1"`

	// Minimum EV percentage for a scored opportunity to survive
	MinEVPercent float64 `mapstructure:"min_ev_percent"`

	// Number of recommendations returned per analysis
	TopN int `mapstructure:"top_n" validate:"required,gt=0"`

	// Keep only the best prop per player in recommendations
	DedupPlayers bool `mapstructure:"dedup_players"`

	// Cap on receiver props per team in recommendations; 0 disables the cap
	MaxReceiversPerTeam int `mapstructure:"max_receivers_per_team" validate:"gte=0"`
}

// SettlementConfig holds the bet grading tunables
type SettlementConfig struct {
	// Minimum name similarity for a box-score match
	MatchThreshold float64 `mapstructure:"match_threshold" validate:"required,gt=0,lte=1"`

	// Flat stake assumed per settled bet
	StakeUnits float64 `mapstructure:"stake_units" validate:"required,gt=0"`
}

// MetricsConfig represents metrics exposure configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// IsProduction reports whether the application runs in production
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// IsDevelopment reports whether the application runs in development
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}
