package core

// Area represents an axis-aligned rectangle in arena units
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions
}

// Intent is the held-key state consumed by one simulation tick
type Intent struct {
	Left  bool
	Right bool
	Quit  bool
}
