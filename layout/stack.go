// SPDX-License-Identifier: Unlicense OR MIT

package layout

// Stack aligns elements in parallel across a single axis, within the
// span [start; start+extent]. The sizes are the elements' extents
// across the axis.
//
// Start and End align the elements against the near or far edge of
// an envelope as large as the largest element, and center every
// element within that envelope. Middle centers each element in the
// full extent. Fill stretches each element over the full extent.
func Stack(align Alignment, start, extent float32, sizes ...float32) []Span {
	if len(sizes) == 0 {
		return nil
	}
	var env float32
	for _, sz := range sizes {
		env = max(env, sz)
	}
	spans := make([]Span, len(sizes))
	for i, sz := range sizes {
		s := Span{Size: sz}
		switch align {
		case Start:
			s.Pos = start + (env-sz)/2
		case End:
			s.Pos = start + max(extent-env, 0) + (env-sz)/2
		case Middle:
			s.Pos = start + max((extent-sz)/2, 0)
		case Fill:
			s.Pos = start
			s.Size = max(extent, 0)
		}
		spans[i] = s
	}
	return spans
}
