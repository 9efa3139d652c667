package layout

// Patch is a partial template used to derive a variant from a base
// template. Nil pointer fields leave the base value untouched; a non-nil
// pointer overwrites the field even when it points at a zero value, so an
// explicitly provided empty string, zero ratio, or empty cell list clears
// the base. This replaces the recursive deep merge of earlier designs with
// an explicit, field-by-field rule that is easy to reason about.
type Patch struct {
	Name        *string
	Description *string
	Grid        *Grid
	Cells       *[]Cell
	AspectRatio *float64
	Gap         *float64
	Orientation *Orientation
}

// Merge applies a patch to a base template and returns the result. The
// base id is always kept. Cell slices are replaced wholesale, never
// concatenated or merged element-wise: a patch providing cells fully
// defines the custom layout, and a patch providing an empty (non-nil)
// slice switches the template back to grid mode.
func Merge(base Template, patch Patch) Template {
	out := base
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Description != nil {
		out.Description = *patch.Description
	}
	if patch.Grid != nil {
		out.Grid = *patch.Grid
	}
	if patch.Cells != nil {
		out.Cells = append([]Cell(nil), (*patch.Cells)...)
	} else if base.Cells != nil {
		out.Cells = append([]Cell(nil), base.Cells...)
	}
	if patch.AspectRatio != nil {
		out.AspectRatio = *patch.AspectRatio
	}
	if patch.Gap != nil {
		out.Gap = *patch.Gap
	}
	if patch.Orientation != nil {
		out.Orientation = *patch.Orientation
	}
	return out
}
