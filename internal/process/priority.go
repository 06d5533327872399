package process

// Named priority levels for pipeline stages. Any float64 is a valid
// priority; these anchor the conventional bands.
const (
	PriorityVeryHigh float64 = 10000
	PriorityHigh     float64 = 100
	PriorityNormal   float64 = 0
	PriorityLow      float64 = -100
	PriorityVeryLow  float64 = -10000
)
