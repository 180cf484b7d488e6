package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_AppendAndFind(t *testing.T) {
	root := NewTree()
	box := root.Append("box", Style{Width: 40, Height: 10})
	inner := box.Append("inner", Style{Position: PositionAbsolute})
	root.Append("box", Style{Width: 20})

	require.Len(t, root.Children(), 2)
	assert.Equal(t, 3, root.Count())

	found := root.Find("inner")
	require.NotNil(t, found)
	assert.Same(t, inner.(*Node), found)
	assert.Equal(t, "box", found.Parent().Class())

	assert.Len(t, root.FindAll("box"), 2)
	assert.Nil(t, root.Find("missing"))
	assert.Empty(t, root.FindAll("missing"))
}

func TestNode_SetText(t *testing.T) {
	root := NewTree()
	label := root.Append("label", Style{})

	label.SetText("42%")
	assert.Equal(t, "42%", root.Find("label").Text())

	label.SetText("")
	assert.Empty(t, root.Find("label").Text())
}

func TestNode_AnimateWidthWithoutAnimator(t *testing.T) {
	root := NewTree()
	bar := root.Append("bar", Style{Width: 0})

	bar.AnimateWidth(75)

	n := root.Find("bar")
	assert.Equal(t, 75.0, n.Width())
	assert.Equal(t, 75.0, n.Target())
}

func TestNode_Markers(t *testing.T) {
	root := NewTree()

	_, ok := root.Marker("widget")
	assert.False(t, ok)

	root.SetMarker("widget", 7)
	v, ok := root.Marker("widget")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestNode_ImplementsHost(t *testing.T) {
	var _ Host = NewTree()
	var _ Region = (*Node)(nil)
}

func TestBorder(t *testing.T) {
	tests := []struct {
		name     string
		border   Border
		wantZero bool
		wantCSS  string
	}{
		{"solid", Border{Width: 1, Type: LineSolid, Color: "#000"}, false, "1px solid #000"},
		{"fractional width", Border{Width: 1.5, Type: LineDashed, Color: "#f00"}, false, "1.5px dashed #f00"},
		{"zero width", Border{Width: 0, Type: LineSolid, Color: "#000"}, true, "none"},
		{"none type", Border{Width: 2, Type: LineNone, Color: "#000"}, true, "none"},
		{"empty", Border{}, true, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantZero, tt.border.IsZero())
			assert.Equal(t, tt.wantCSS, tt.border.String())
		})
	}
}
