// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Span is the position and extent of an element along one axis.
type Span struct {
	Pos, Size float32
}

// FlexChild is the descriptor for an element laid out by Flex.
type FlexChild struct {
	// Size is the measured extent along the main axis.
	Size float32
	// Gap is the space between the child and its predecessor. The
	// gap of the first child is ignored.
	Gap float32
	// Rigid children keep their measured size in Fill mode.
	Rigid bool
}

// Flex lays out children one after another along a single axis,
// in order, within the span [start; start+extent].
//
// Start packs the children from start, Middle centers the packed
// children and End packs them against the far edge. Fill packs from
// start and lets the last flexible child absorb the remaining space;
// when every child is rigid, the last child absorbs it instead.
//
// A block of children larger than extent overflows at the far edge.
func Flex(align Alignment, start, extent float32, children ...FlexChild) []Span {
	if len(children) == 0 {
		return nil
	}
	spans := make([]Span, len(children))
	var total float32
	for i, c := range children {
		if i > 0 {
			total += c.Gap
		}
		spans[i].Size = c.Size
		total += c.Size
	}
	pos := start
	switch align {
	case Middle:
		pos += max((extent-total)/2, 0)
	case End:
		pos += max(extent-total, 0)
	case Fill:
		absorb := len(children) - 1
		for i := len(children) - 1; i >= 0; i-- {
			if !children[i].Rigid {
				absorb = i
				break
			}
		}
		sz := &spans[absorb].Size
		*sz = max(*sz+extent-total, 0)
	}
	for i, c := range children {
		if i > 0 {
			pos += c.Gap
		}
		spans[i].Pos = pos
		pos += spans[i].Size
	}
	return spans
}
