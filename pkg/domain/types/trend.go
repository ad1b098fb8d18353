package types

// Trend is the direction of a score relative to its previous value.
// It carries no valence: for risk UP is worse, for compliance UP is better.
type Trend string

const (
	TrendUp   Trend = "UP"
	TrendDown Trend = "DOWN"
	TrendNone Trend = "NONE"
)

// String returns the string representation of the trend
func (t Trend) String() string {
	return string(t)
}
