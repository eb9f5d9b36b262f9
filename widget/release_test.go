// SPDX-License-Identifier: Unlicense OR MIT

//go:build !debug

package widget

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"gioui.org/x/configbutton/f32"
)

func TestWillRemoveViewLogs(t *testing.T) {
	var buf bytes.Buffer
	b := Backdrop{Logger: log.New(&buf)}
	b.Update(&Background{CustomView: 5}, f32.Rect(0, 0, 10, 10), blue)
	b.WillRemoveView(5)
	if !strings.Contains(buf.String(), "custom view removed while in use") {
		t.Errorf("removing the active view logged %q", buf.String())
	}
	if b.View() != 5 {
		t.Errorf("view %v, want 5", b.View())
	}
}
