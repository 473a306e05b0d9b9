package render

// Box-drawing pieces shared by the box and table renderers.
const (
	boxH  = "─"
	boxV  = "│"
	boxTL = "┌"
	boxTR = "┐"
	boxBL = "└"
	boxBR = "┘"
	boxLT = "├"
	boxRT = "┤"
	boxTT = "┬"
	boxBT = "┴"
	boxX  = "┼"

	matchDot      = "·"
	mismatchCaret = "^"

	barFilled = "█"
	barEmpty  = "░"
)

// Arrow points from a value to what it maps to.
const Arrow = "→"

// indent is the left margin shared by every block renderer.
const indent = "    "
