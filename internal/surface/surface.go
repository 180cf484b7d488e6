// Package surface is the host a gauge draws on.
//
// A surface is a tree of regions. Each region is appended once with a
// declarative Style and afterwards only its text and width change. Node is
// the in-memory implementation; Animator drives width transitions with a
// spring; Renderer lays the tree out in terminal cells and paints it with
// Lip Gloss.
//
//	root := surface.NewTree()
//	box := root.Append("box", surface.Style{Width: 100, Height: 20})
//	box.SetText("hello")
//	fmt.Println(surface.NewRenderer().Render(root))
package surface

// Region is a visual area that can hold nested regions.
type Region interface {
	// Append creates a child region styled by style and returns it.
	Append(class string, style Style) Region
	// SetText replaces the region's text content.
	SetText(text string)
	// AnimateWidth transitions the region's width toward target. A call made
	// while a transition is in flight redirects it.
	AnimateWidth(target float64)
}

// Host is the element a widget attaches to. Markers let a widget detect that
// it is already attached.
type Host interface {
	Region
	Marker(key string) (any, bool)
	SetMarker(key string, value any)
}
