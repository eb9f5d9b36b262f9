// SPDX-License-Identifier: Unlicense OR MIT

//go:build !debug

package widget

const debugAssertions = false
