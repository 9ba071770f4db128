package game

// HasFinished reports whether every piece of color stands on a finish slot.
func HasFinished(p Pieces, color int) bool {
	if !ValidColor(color) {
		return false
	}
	first := FinishField(color, 0)
	for n := 0; n < PiecesPerColor; n++ {
		field, ok := p[(color-1)*PiecesPerColor+n+1]
		if !ok || field < first || field >= first+PiecesPerColor {
			return false
		}
	}
	return true
}

// Finished lists, ascending, the colors whose pieces all stand on their finish slots.
func Finished(p Pieces) []int {
	var out []int
	for color := 1; color <= NumColors; color++ {
		if HasFinished(p, color) {
			out = append(out, color)
		}
	}
	return out
}
