package random

// entry is a single labeled weight in a WeightedQueue.
type entry struct {
	label  int
	weight uint32
}

// WeightedQueue selects one integer label with probability proportional to
// its weight. Push order matters: the cumulative-weight boundaries follow
// insertion order, so callers must push in a canonical order to keep results
// reproducible across game instances.
//
// Invariant: entries with weight 0 are retained (they count toward Size)
// but are never selected while any positive weight exists.
type WeightedQueue struct {
	entries []entry
	total   uint32
}

// NewWeightedQueue returns an empty queue. capacity is a size hint only;
// it is never enforced.
func NewWeightedQueue(capacity int) *WeightedQueue {
	if capacity < 0 {
		capacity = 0
	}
	return &WeightedQueue{entries: make([]entry, 0, capacity)}
}

// Push appends a labeled weight to the queue.
func (q *WeightedQueue) Push(label int, weight uint32) {
	q.entries = append(q.entries, entry{label: label, weight: weight})
	q.total += weight
}

// Size returns the number of pushed entries, including zero-weight ones.
func (q *WeightedQueue) Size() int {
	return len(q.entries)
}

// Pick selects one label using src, with probability proportional to weight.
//
// Precondition: Size() > 0; callers must guard with Size before calling.
// Panics with "random: Pick on empty WeightedQueue" otherwise.
// Postcondition: when every weight is zero the first pushed label is
// returned, matching the degenerate behavior of the original engine.
func (q *WeightedQueue) Pick(src Source) int {
	if len(q.entries) == 0 {
		panic("random: Pick on empty WeightedQueue")
	}
	if q.total == 0 {
		return q.entries[0].label
	}

	threshold := uint32(src.Intn(int(q.total)))
	var cumulative uint32
	for _, e := range q.entries {
		cumulative += e.weight
		if threshold < cumulative {
			return e.label
		}
	}
	// unreachable: threshold < total and weights sum to total
	return q.entries[len(q.entries)-1].label
}

// PickWithSeed selects one label deterministically from seed.
//
// Precondition: Size() > 0.
// Postcondition: same seed + same push sequence => same label.
func (q *WeightedQueue) PickWithSeed(seed uint64) int {
	return q.Pick(NewSeededSource(seed))
}

// UniformPickWithSeed draws one label from labels with equal probability,
// deterministically from seed.
//
// Precondition: labels must be non-empty; callers must guard.
func UniformPickWithSeed(labels []int, seed uint64) int {
	if len(labels) == 0 {
		panic("random: UniformPickWithSeed on empty label set")
	}
	return labels[NewSeededSource(seed).Intn(len(labels))]
}
