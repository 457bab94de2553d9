package gridastar

// FrontierEntry is a pending candidate and the score it was enqueued with.
type FrontierEntry struct {
	Score float64
	Coord Coordinate
}

// Frontier holds candidates waiting to be expanded. Entries superseded by a
// better score are not removed, so a coordinate may appear more than once.
type Frontier interface {
	Push(score float64, coord Coordinate)
	// PopFront removes the next entry. ok is false when the frontier is empty.
	PopFront() (entry FrontierEntry, ok bool)
	IsEmpty() bool
	Len() int
}

// FIFOFrontier services entries in insertion order regardless of score.
type FIFOFrontier struct {
	entries []FrontierEntry
	head    int
}

func NewFIFOFrontier() *FIFOFrontier { return &FIFOFrontier{} }

func (q *FIFOFrontier) Push(score float64, coord Coordinate) {
	q.entries = append(q.entries, FrontierEntry{Score: score, Coord: coord})
}

func (q *FIFOFrontier) PopFront() (FrontierEntry, bool) {
	if q.IsEmpty() {
		return FrontierEntry{}, false
	}
	e := q.entries[q.head]
	q.head++
	// reclaim the consumed prefix once it dominates the backing array
	if q.head > 64 && q.head*2 > len(q.entries) {
		n := copy(q.entries, q.entries[q.head:])
		q.entries = q.entries[:n]
		q.head = 0
	}
	return e, true
}

func (q *FIFOFrontier) IsEmpty() bool { return q.head == len(q.entries) }

func (q *FIFOFrontier) Len() int { return len(q.entries) - q.head }
