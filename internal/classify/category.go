package classify

// Category labels a pixel by its dominant hue family.
//
// Exactly one category applies per pixel. None marks pixels that match no
// configured hue range or whose hue is undefined.
type Category uint8

const (
	None Category = iota
	Red
	Blue
)

// String returns the lowercase name of the category.
func (c Category) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "none"
	}
}
