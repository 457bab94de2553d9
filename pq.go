package gridastar

import "container/heap"

type priorityQueueItem struct {
	entry    FrontierEntry
	sequence uint64
}

type priorityQueue []priorityQueueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].entry.Score != queue[j].entry.Score {
		return queue[i].entry.Score < queue[j].entry.Score
	}
	return queue[i].sequence < queue[j].sequence
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(priorityQueueItem))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}

// BestFirstFrontier services the lowest score first; equal scores come out in
// insertion order. Stale entries stay queued like in FIFOFrontier.
type BestFirstFrontier struct {
	queue    priorityQueue
	sequence uint64
}

func NewBestFirstFrontier() *BestFirstFrontier { return &BestFirstFrontier{} }

func (f *BestFirstFrontier) Push(score float64, coord Coordinate) {
	heap.Push(&f.queue, priorityQueueItem{
		entry:    FrontierEntry{Score: score, Coord: coord},
		sequence: f.sequence,
	})
	f.sequence++
}

func (f *BestFirstFrontier) PopFront() (FrontierEntry, bool) {
	if f.queue.Len() == 0 {
		return FrontierEntry{}, false
	}
	return heap.Pop(&f.queue).(priorityQueueItem).entry, true
}

func (f *BestFirstFrontier) IsEmpty() bool { return f.queue.Len() == 0 }

func (f *BestFirstFrontier) Len() int { return f.queue.Len() }
