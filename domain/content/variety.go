package content

import "math/rand"

// VarietyTracker cycles through media kinds so a single response never
// shows the same kind twice in a row. It is created per assembly call
// and never shared across requests, so it needs no locking.
type VarietyTracker struct {
	kinds   []MediaKind
	queue   []MediaKind
	last    MediaKind
	hasLast bool
	rng     *rand.Rand
}

// NewVarietyTracker creates a tracker over the given kinds. An empty
// kinds slice falls back to the full MediaKinds set. rng may be nil, in
// which case the package-level math/rand source is used; tests inject a
// seeded source for determinism.
func NewVarietyTracker(kinds []MediaKind, rng *rand.Rand) *VarietyTracker {
	if len(kinds) == 0 {
		kinds = MediaKinds
	}
	owned := make([]MediaKind, len(kinds))
	copy(owned, kinds)

	queue := make([]MediaKind, len(owned))
	copy(queue, owned)

	return &VarietyTracker{
		kinds: owned,
		queue: queue,
		rng:   rng,
	}
}

// Next returns the next media kind to use. The rotation queue is seeded
// with all kinds in fixed order and reshuffled on exhaustion. When the
// head of the queue matches the previously emitted kind it is rotated
// to the back, up to len(kinds) attempts, so adjacent duplicates only
// occur when a single kind is configured.
func (t *VarietyTracker) Next() MediaKind {
	if len(t.queue) == 0 {
		shuffled := make([]MediaKind, len(t.kinds))
		copy(shuffled, t.kinds)
		t.shuffle(shuffled)
		t.queue = shuffled
	}

	kind := t.pop()

	attempts := 0
	for t.hasLast && kind == t.last && len(t.kinds) > 1 && attempts < len(t.kinds) {
		t.queue = append(t.queue, kind)
		kind = t.pop()
		attempts++
	}

	t.last = kind
	t.hasLast = true
	return kind
}

// Last returns the most recently emitted kind, if any.
func (t *VarietyTracker) Last() (MediaKind, bool) {
	return t.last, t.hasLast
}

func (t *VarietyTracker) pop() MediaKind {
	kind := t.queue[0]
	t.queue = t.queue[1:]
	return kind
}

func (t *VarietyTracker) shuffle(kinds []MediaKind) {
	swap := func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] }
	if t.rng != nil {
		t.rng.Shuffle(len(kinds), swap)
	} else {
		rand.Shuffle(len(kinds), swap)
	}
}
