// Package queue implements the FIFO open list the search engine uses to
// hold states awaiting expansion.
//
// It is a singly-linked queue (head/tail node list, one allocation per
// push) rather than a slice-backed ring buffer or container/list: O(1)
// enqueue/dequeue with no allocation beyond one node per push is exactly
// what a bare linked list gives.
package queue

import "github.com/sokobox/iwsolve/board"

type node struct {
	state *board.State
	next  *node
}

// Queue is a FIFO queue of board.State handles.
type Queue struct {
	head, tail *node
	len        int
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Push enqueues s at the tail of the queue.
func (q *Queue) Push(s *board.State) {
	n := &node{state: s}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.len++
}

// Pop dequeues and returns the state at the head of the queue. Pop on an
// empty queue returns (nil, false).
func (q *Queue) Pop() (*board.State, bool) {
	if q.head == nil {
		return nil, false
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.len--
	return n.state, true
}

// IsEmpty reports whether the queue holds no states.
func (q *Queue) IsEmpty() bool {
	return q.head == nil
}

// Len returns the number of states currently queued.
func (q *Queue) Len() int {
	return q.len
}

// Drain discards every state still held by the queue. Callers must use this
// when abandoning a search early (e.g. after a goal is found mid-level in
// Algorithm 3) so that no held state handle is leaked past the queue's
// lifetime.
func (q *Queue) Drain() {
	for q.head != nil {
		q.head = q.head.next
	}
	q.tail = nil
	q.len = 0
}
