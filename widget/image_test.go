// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"gioui.org/x/configbutton/f32"
)

func TestPictureScale(t *testing.T) {
	imgSize := image.Pt(10, 10)
	img := image.NewNRGBA(image.Rectangle{Max: imgSize})

	// Ensure the default scales correctly.
	got := (&Picture{Src: img}).Size()
	want := f32.Pt(10*defaultScale, 10*defaultScale)
	if got != want {
		t.Fatalf("default scale image is wrong size, expected %v, got %v", want, got)
	}

	// Ensure scaling the image via the Scale field works.
	got = (&Picture{Src: img, Scale: .5}).Size()
	if want := f32.Pt(5, 5); got != want {
		t.Fatalf(".5 scale image is wrong size, expected %v, got %v", want, got)
	}
}

func TestNewPicture(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 4, 2))); err != nil {
		t.Fatal(err)
	}
	p, err := NewPicture(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Src.Bounds().Size(); got != image.Pt(4, 2) {
		t.Errorf("decoded size %v", got)
	}
	if _, err := NewPicture(bytes.NewReader([]byte("garbage"))); err == nil {
		t.Error("decoding garbage succeeded")
	}
}
