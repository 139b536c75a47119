package config

// RulesConfig holds optional rule behaviour.
type RulesConfig struct {
	// DetectInsufficientMaterial ends the game when neither side can mate.
	// Off by default: play continues until checkmate or stalemate.
	DetectInsufficientMaterial bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
