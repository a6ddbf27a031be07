package pointkernel

import "fmt"

// Footprint selects how a kernel gathers its basis points.
type Footprint int

const (
	// FootprintRadius uses every point within the kernel radius, falling
	// back to the single closest point when the radius holds none.
	FootprintRadius Footprint = iota

	// FootprintNClosest uses the N points closest to the query.
	FootprintNClosest
)

func (f Footprint) String() string {
	switch f {
	case FootprintRadius:
		return "Radius"
	case FootprintNClosest:
		return "NClosest"
	default:
		return fmt.Sprintf("Unknown(%d)", int(f))
	}
}
