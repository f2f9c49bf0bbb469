package adjust

import "fmt"

// Property names a playback parameter that adjustments can scale.
type Property int

const (
	// Volume scales amplitude. Aggregated by product.
	Volume Property = iota
	// Balance pans left (-1) to right (+1). Aggregated by sum.
	Balance
	// Frequency scales playback rate, changing pitch and speed together.
	// Aggregated by product.
	Frequency
	// Tempo scales playback speed without changing pitch.
	// Aggregated by product.
	Tempo
)

// String returns the lowercase property name.
func (p Property) String() string {
	switch p {
	case Volume:
		return "volume"
	case Balance:
		return "balance"
	case Frequency:
		return "frequency"
	case Tempo:
		return "tempo"
	default:
		return fmt.Sprintf("property(%d)", int(p))
	}
}

// identity returns the neutral aggregate for p.
func (p Property) identity() float64 {
	if p == Balance {
		return 0
	}
	return 1
}
