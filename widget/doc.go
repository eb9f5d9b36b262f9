// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements a button driven by a declarative
// Configuration.
//
// A Configuration describes the image, title, subtitle and background
// of a button. Content measures and arranges the image and text,
// Compose lists the background layers, and Button ties both to the
// interaction state of a control and to the Host view tree it draws
// into. Rendering is left to the host; package raster paints a
// preview.
package widget
