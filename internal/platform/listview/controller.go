package listview

import "time"

// Controller owns a fetched collection, the active criteria and the
// current page, and keeps the derived visible subset consistent whenever
// either input changes. It replaces the per-view copies of this logic
// with one implementation parameterized over the Record accessors.
//
// A Controller is not safe for concurrent use; each view (or request)
// owns its own instance.
type Controller[T Record] struct {
	all       []T
	criteria  Criteria
	page      int
	visible   []T
	pageCount int
	seq       uint64
	now       func() time.Time
}

// NewController returns a controller with an empty collection.
func NewController[T Record](c Criteria) *Controller[T] {
	ctrl := &Controller[T]{criteria: c, page: 1, now: time.Now}
	ctrl.recompute()
	return ctrl
}

// SetNow overrides the clock used for date-range filtering. Tests use
// this; production code keeps the default.
func (ctrl *Controller[T]) SetNow(now func() time.Time) {
	ctrl.now = now
	ctrl.recompute()
}

// Begin marks the start of a fetch and returns its sequence number.
// Pair with Commit to drop responses that arrive after a newer fetch
// has started (last request wins).
func (ctrl *Controller[T]) Begin() uint64 {
	ctrl.seq++
	return ctrl.seq
}

// Commit installs a fetched collection if seq still identifies the most
// recent fetch. It reports whether the records were accepted.
func (ctrl *Controller[T]) Commit(seq uint64, records []T) bool {
	if seq != ctrl.seq {
		return false
	}
	ctrl.SetRecords(records)
	return true
}

// SetRecords replaces the whole collection and resets to page 1.
func (ctrl *Controller[T]) SetRecords(records []T) {
	ctrl.all = records
	ctrl.page = 1
	ctrl.recompute()
}

// SetCriteria replaces the filter criteria and resets to page 1.
func (ctrl *Controller[T]) SetCriteria(c Criteria) {
	ctrl.criteria = c
	ctrl.page = 1
	ctrl.recompute()
}

// Criteria returns the active criteria.
func (ctrl *Controller[T]) Criteria() Criteria { return ctrl.criteria }

// Records returns the full collection in its fetched order.
func (ctrl *Controller[T]) Records() []T { return ctrl.all }

// Visible returns the filtered subset, before pagination slicing.
func (ctrl *Controller[T]) Visible() []T { return ctrl.visible }

// VisibleCount returns the size of the filtered subset.
func (ctrl *Controller[T]) VisibleCount() int { return len(ctrl.visible) }

// PageCount returns the number of pages over the visible subset, at
// least 1.
func (ctrl *Controller[T]) PageCount() int { return ctrl.pageCount }

// Page returns the current page, clamped to [1, PageCount]. A page left
// dangling past the end after the visible set shrank is pulled back
// rather than rendered empty.
func (ctrl *Controller[T]) Page() int {
	if ctrl.page > ctrl.pageCount {
		return ctrl.pageCount
	}
	if ctrl.page < 1 {
		return 1
	}
	return ctrl.page
}

// SetPage moves to the given page, clamped to the valid range.
func (ctrl *Controller[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if page > ctrl.pageCount {
		page = ctrl.pageCount
	}
	ctrl.page = page
}

// Next advances one page when possible.
func (ctrl *Controller[T]) Next() { ctrl.SetPage(ctrl.Page() + 1) }

// Prev moves back one page when possible.
func (ctrl *Controller[T]) Prev() { ctrl.SetPage(ctrl.Page() - 1) }

// PageItems returns the records of the current page.
func (ctrl *Controller[T]) PageItems() []T {
	return Slice(ctrl.visible, ctrl.Page(), ctrl.criteria.pageSize())
}

// Append adds a newly created record to the end of the collection and
// resets to page 1, mirroring how the views resynchronize after a
// confirmed create.
func (ctrl *Controller[T]) Append(record T) {
	ctrl.all = append(ctrl.all, record)
	ctrl.page = 1
	ctrl.recompute()
}

// Replace swaps the record with the same id in place, preserving its
// position and the current page. Unknown ids are ignored.
func (ctrl *Controller[T]) Replace(record T) {
	for i, existing := range ctrl.all {
		if existing.RecordID() == record.RecordID() {
			ctrl.all[i] = record
			break
		}
	}
	ctrl.recompute()
}

// Remove splices out the record with the given id, preserving the order
// of the rest, and resets to page 1.
func (ctrl *Controller[T]) Remove(id string) {
	kept := ctrl.all[:0]
	for _, existing := range ctrl.all {
		if existing.RecordID() != id {
			kept = append(kept, existing)
		}
	}
	ctrl.all = kept
	ctrl.page = 1
	ctrl.recompute()
}

// Recompute re-derives the visible subset and page count from the
// current collection and criteria. Calling it again without input
// changes yields the same result.
func (ctrl *Controller[T]) Recompute() { ctrl.recompute() }

func (ctrl *Controller[T]) recompute() {
	now := time.Now()
	if ctrl.now != nil {
		now = ctrl.now()
	}
	ctrl.visible = Visible(ctrl.all, ctrl.criteria, now)
	ctrl.pageCount = PageCount(len(ctrl.visible), ctrl.criteria.pageSize())
}
