package types

import "github.com/m-mizutani/goerr/v2"

// Level is a severity level derived from a numeric score
type Level string

const (
	LevelCritical Level = "CRITICAL"
	LevelHigh     Level = "HIGH"
	LevelMedium   Level = "MEDIUM"
	LevelLow      Level = "LOW"
	LevelMinimal  Level = "MINIMAL"

	// LevelUnknown is returned for values outside the known vocabulary so that
	// they can be rendered as unknown instead of silently mis-categorized.
	LevelUnknown Level = "UNKNOWN"
)

// AllLevels returns all known severity levels, most severe first
func AllLevels() []Level {
	return []Level{
		LevelCritical,
		LevelHigh,
		LevelMedium,
		LevelLow,
		LevelMinimal,
	}
}

// IsValid checks if the level is a known severity level
func (l Level) IsValid() bool {
	switch l {
	case LevelCritical,
		LevelHigh,
		LevelMedium,
		LevelLow,
		LevelMinimal:
		return true
	default:
		return false
	}
}

// Rank orders levels by severity. Unknown levels rank 0.
func (l Level) Rank() int {
	switch l {
	case LevelCritical:
		return 5
	case LevelHigh:
		return 4
	case LevelMedium:
		return 3
	case LevelLow:
		return 2
	case LevelMinimal:
		return 1
	default:
		return 0
	}
}

// String returns the string representation of the level
func (l Level) String() string {
	return string(l)
}

// ParseLevel parses a string into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(Normalize(s))
	if !level.IsValid() {
		return "", goerr.New("invalid severity level", goerr.V("level", s))
	}
	return level, nil
}
