package layout

// ResolveOrientation decides the page orientation for a template.
//
// An explicit Portrait or Landscape on the template wins unconditionally.
// Otherwise the grid shape decides: more columns than rows reads as
// landscape, more rows than columns as portrait. Square grids resolve to
// portrait, a deliberate tie-break so that 1x1 and other symmetric
// templates print upright by default.
//
// This is a total function: any template yields a concrete orientation.
func ResolveOrientation(t Template) Orientation {
	switch t.Orientation {
	case Portrait, Landscape:
		return t.Orientation
	}
	if t.Grid.Cols > t.Grid.Rows {
		return Landscape
	}
	return Portrait
}
