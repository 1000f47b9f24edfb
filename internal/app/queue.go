package app

import "wordduel/internal/domain"

// Queue is the FIFO matchmaking queue of clients awaiting a random
// opponent. It is not safe for concurrent use on its own: the hub serializes
// all mutations under its lock so a dequeue and the session creation that
// follows form a single transaction.
type Queue struct {
	entries []*domain.WaitingEntry
}

// NewQueue creates an empty matchmaking queue
func NewQueue() *Queue {
	return &Queue{}
}

// Enqueue appends an entry. An existing entry for the same client is
// replaced in place, never duplicated.
func (q *Queue) Enqueue(entry *domain.WaitingEntry) {
	for i, e := range q.entries {
		if e.ClientID == entry.ClientID {
			q.entries[i] = entry
			return
		}
	}
	q.entries = append(q.entries, entry)
}

// TryMatch pairs the queue head with the first compatible entry behind it.
// Compatibility requires equal game mode and translation sub-mode. Both
// entries are removed as a single mutation; if no pair exists the queue is
// unchanged and ok is false.
func (q *Queue) TryMatch() (first, second *domain.WaitingEntry, ok bool) {
	if len(q.entries) < 2 {
		return nil, nil, false
	}

	head := q.entries[0]
	for i := 1; i < len(q.entries); i++ {
		if head.Compatible(q.entries[i]) {
			second = q.entries[i]
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			q.entries = q.entries[1:]
			return head, second, true
		}
	}
	return nil, nil, false
}

// Remove drops any entry for the client; reports whether one existed
func (q *Queue) Remove(clientID string) bool {
	for i, e := range q.entries {
		if e.ClientID == clientID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Waiting returns the externally visible waiting list, in queue order.
// Internal client ids are never exposed.
func (q *Queue) Waiting() []domain.WaitingPlayer {
	waiting := make([]domain.WaitingPlayer, 0, len(q.entries))
	for _, e := range q.entries {
		waiting = append(waiting, e.ToWaiting())
	}
	return waiting
}

// Len returns the number of queued clients
func (q *Queue) Len() int {
	return len(q.entries)
}
