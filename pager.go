package gridview

// Pagination describes the paging state of a dataset. Pages are zero-based.
//
// Out-of-range values are never rejected: the window arithmetic clamps
// gracefully, since callers may legitimately carry a page number obtained
// before the total was recomputed.
type Pagination struct {
	// Page - current page, zero-based.
	Page int
	// PageCount - total number of pages. Zero means an empty dataset: the
	// window is empty and all navigation is disabled.
	PageCount int
	// PageSize - number of records per page. Consumed by URL creation and by
	// consumers slicing their datasets; the window arithmetic does not read
	// it. Values <= 0 fall back to DefaultPageSize.
	PageSize int
	// MaxButtonCount - maximum number of numbered page buttons. Values < 1
	// fall back to DefaultMaxButtonCount.
	MaxButtonCount int
}

// Window computes the inclusive slice [begin, end] of page indices rendered
// as numbered buttons. The window is centered on Page first, then slid left
// when it overruns the tail, so it never exceeds PageCount pages and stays as
// centered as the boundaries allow. Near the boundaries it degrades to a
// leading or trailing run of exactly min(MaxButtonCount, PageCount) pages.
// For PageCount == 0 the window is empty (end < begin).
func (p Pagination) Window() (begin, end int) {
	if p.PageCount <= 0 {
		return 0, -1
	}

	buttonCount := NormalizeMaxButtonCount(p.MaxButtonCount)

	begin = max(0, p.Page-buttonCount/2)
	end = begin + buttonCount - 1
	if end >= p.PageCount {
		end = p.PageCount - 1
		begin = max(0, end-buttonCount+1)
	}

	return begin, end
}

// PrevPage returns the target index of the "previous" boundary control.
func (p Pagination) PrevPage() int {
	return max(0, p.Page-1)
}

// NextPage returns the target index of the "next" boundary control.
func (p Pagination) NextPage() int {
	return min(p.PageCount-1, p.Page+1)
}

// IsFirst reports whether backward navigation is a no-op.
func (p Pagination) IsFirst() bool {
	return p.Page <= 0
}

// IsLast reports whether forward navigation is a no-op.
func (p Pagination) IsLast() bool {
	return p.Page >= p.PageCount-1
}

// NormalizedPageSize returns PageSize clamped to [1, MaxPageSize], with
// DefaultPageSize substituted for unset values.
func (p Pagination) NormalizedPageSize() int {
	return NormalizePageSize(p.PageSize)
}
