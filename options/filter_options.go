package options

// EdgeMode selects how 3x3 neighborhood samples that fall outside the
// raster are treated.
type EdgeMode int

const (
	// EdgeExtend clamps sample coordinates to the nearest in-bounds pixel
	// on each axis independently.
	EdgeExtend EdgeMode = iota

	// EdgeZero contributes zero for any out-of-bounds sample. Edge pixels
	// come out biased toward black; kept for parity with renderers that
	// zero-fill their borders.
	EdgeZero
)

type FilterOptions struct {
	Edge EdgeMode
}

func NewFilterOptions(options *FilterOptions) *FilterOptions {

	opt := &FilterOptions{}
	if options != nil {
		opt.Edge = options.Edge
	}
	return opt
}
