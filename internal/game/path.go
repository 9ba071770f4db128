package game

// entryField returns the track cell where a color enters the shared ring.
func entryField(color int) int {
	return FirstTrackField + (color-1)*(TrackLength/NumColors)
}

// ValidColor reports whether color is one of the four seats.
func ValidColor(color int) bool {
	return color >= 1 && color <= NumColors
}

// HomeField returns the n-th (0-based) home slot of a color.
func HomeField(color, n int) int {
	return FirstHomeField + (color-1)*PiecesPerColor + n
}

// FinishField returns the n-th (0-based) finish slot of a color.
func FinishField(color, n int) int {
	return FirstFinishField + (color-1)*PiecesPerColor + n
}

// Path returns the 48 field ids a color's pieces traverse: four home slots,
// the forty track cells starting at the color's entry, then four finish slots.
// It is rebuilt on every call. An invalid color yields an empty path.
func Path(color int) []int {
	if !ValidColor(color) {
		return []int{}
	}

	path := make([]int, 0, PathLength)
	for n := 0; n < PiecesPerColor; n++ {
		path = append(path, HomeField(color, n))
	}

	offset := entryField(color) - FirstTrackField
	for k := 1; k <= TrackLength; k++ {
		path = append(path, FirstTrackField+(offset+k-1)%TrackLength)
	}

	for n := 0; n < PiecesPerColor; n++ {
		path = append(path, FinishField(color, n))
	}
	return path
}

// PathIndex returns the first index of field on the color's path, or -1.
func PathIndex(color, field int) int {
	for i, f := range Path(color) {
		if f == field {
			return i
		}
	}
	return -1
}
