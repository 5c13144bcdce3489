package model

type Part struct {
	// Natural identifier of the part, e.g. "P340".
	ID string
	// Human-readable part name.
	Name string
	// Part type/category tag.
	Type string
	// Quantity currently on hand.
	Quantity int64
	// Minimum stock threshold below which the part needs reordering.
	MinStock int64
	// Quantity to order when restocking.
	ReorderQuantity int64
	// Interval between scheduled reorders.
	ReorderIntervalDays int64
	// Storage location (warehouse code).
	Location string
	// Weight in kilograms.
	Weight float64
	// Product models that consume this part. A part may feed several
	// models; model ids are not unique across parts.
	UsedInModels []string
	// Blocked parts are excluded from reordering.
	Blocked bool
	// Free-form operator comments.
	Comments string
	// Replacement part id, if this part is being phased out.
	SuccessorPart *string
}

// NeedsReorder reports whether the on-hand quantity fell below the
// minimum stock threshold. Blocked parts never need reordering.
func (p Part) NeedsReorder() bool {
	return p.Quantity < p.MinStock && !p.Blocked
}

type PartsFilter struct {
	IDs   []string
	Types []string
}

func (f PartsFilter) Empty() bool {
	return len(f.IDs) == 0 && len(f.Types) == 0
}
