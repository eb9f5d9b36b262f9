// SPDX-License-Identifier: Unlicense OR MIT

package raster

// boxBlur blurs an image of w×h pixels with channels interleaved
// 8-bit channels per pixel. Three box blurs in each direction
// approximate a gaussian blur of the given radius. Pixels beyond the
// edges repeat the edge pixels.
func boxBlur(pix []uint8, w, h, stride, channels, radius int) {
	if radius <= 0 || w <= 0 || h <= 0 {
		return
	}
	r := max(radius/2, 1)
	sums := make([]int, max(w, h))
	for range 3 {
		for y := 0; y < h; y++ {
			blur1(pix, y*stride, w, channels, channels, r, sums)
		}
		for x := 0; x < w; x++ {
			blur1(pix, x*channels, h, stride, channels, r, sums)
		}
	}
}

// blur1 box blurs n pixels step bytes apart, starting at off.
func blur1(pix []uint8, off, n, step, channels, r int, sums []int) {
	d := 2*r + 1
	for c := range channels {
		at := func(i int) int {
			i = min(max(i, 0), n-1)
			return int(pix[off+i*step+c])
		}
		sum := 0
		for i := -r; i <= r; i++ {
			sum += at(i)
		}
		for i := range n {
			sums[i] = sum
			sum += at(i+r+1) - at(i-r)
		}
		for i := range n {
			pix[off+i*step+c] = uint8((sums[i] + d/2) / d)
		}
	}
}
