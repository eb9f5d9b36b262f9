// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"fmt"

	"gioui.org/x/configbutton/layout"
)

func ExampleFlex() {
	// An icon followed by a title, 6dp apart, centered in 100dp.
	spans := layout.Flex(layout.Middle, 0, 100,
		layout.FlexChild{Size: 24, Rigid: true},
		layout.FlexChild{Size: 60, Gap: 6},
	)
	fmt.Println(spans)

	// Output:
	// [{5 24} {35 60}]
}

func ExampleStack() {
	// Two rows sharing a 60dp envelope at the start of 200dp.
	spans := layout.Stack(layout.Start, 0, 200, 60, 30)
	fmt.Println(spans)

	// Output:
	// [{0 60} {15 30}]
}
