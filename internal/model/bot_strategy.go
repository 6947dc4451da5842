package model

// Strategy name constants, selectable per seat
const (
	StrategyHuman        = "human"
	StrategySimple       = "simple"
	StrategyIntermediate = "intermediate"
	StrategyAdvanced     = "advanced"
	StrategyRandom       = "random"
)

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(strategy string) string {
	switch strategy {
	case StrategyHuman:
		return "Human"
	case StrategySimple:
		return "Maximize captures"
	case StrategyIntermediate:
		return "Avoid corner neighbors"
	case StrategyAdvanced:
		return "Corners, then avoid corner neighbors"
	case StrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidStrategies returns all valid seat strategy names
func ValidStrategies() []string {
	return []string{StrategyHuman, StrategySimple, StrategyIntermediate, StrategyAdvanced, StrategyRandom}
}

// ValidMachineStrategies returns the strategies a machine player can use
func ValidMachineStrategies() []string {
	return []string{StrategySimple, StrategyIntermediate, StrategyAdvanced, StrategyRandom}
}
