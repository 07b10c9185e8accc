package kernel

import (
	"runtime"
	"sync/atomic"
)

// Message is a fixed-size progress notice.
type Message struct {
	From Unit
	Kind uint8
	Row  uint16
}

const (
	// MsgRowDone reports that Row has been fully written.
	MsgRowDone uint8 = iota + 1
)

const mailboxSlots = 32

// Mailbox is a fixed-size single-producer, single-consumer queue.
// It is designed for bare-metal use: no allocations, busy-wait with Gosched().
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	head  atomic.Uint32
	tail  atomic.Uint32
	slots [mailboxSlots]Message
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	head := mb.head.Load()
	tail := mb.tail.Load()
	if head-tail >= mailboxSlots {
		return false
	}

	// Publish the slot before advancing head so the consumer never reads a
	// stale message.
	mb.slots[head%mailboxSlots] = msg
	mb.head.Store(head + 1)
	return true
}

// Send enqueues a message, blocking until it succeeds.
func (mb *Mailbox) Send(msg Message) {
	for !mb.TrySend(msg) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one message, returning false if empty.
func (mb *Mailbox) TryRecv() (Message, bool) {
	tail := mb.tail.Load()
	head := mb.head.Load()
	if tail == head {
		return Message{}, false
	}

	msg := mb.slots[tail%mailboxSlots]
	mb.tail.Store(tail + 1)
	return msg, true
}

// Drain delivers every queued message to fn and returns how many it saw.
func (mb *Mailbox) Drain(fn func(Message)) int {
	n := 0
	for {
		msg, ok := mb.TryRecv()
		if !ok {
			return n
		}
		fn(msg)
		n++
	}
}
