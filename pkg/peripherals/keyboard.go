// Package peripherals provides input collaborators for drivers that cannot
// block on a read, such as the desktop frontend.
package peripherals

import (
	"sync"

	"gobf/pkg/machine"
)

// Keyboard is a byte queue fed by UI key events and drained by a machine's
// ',' instructions. Read returns machine.ErrNoInput when the queue is
// empty, parking the machine in its Waiting state until more keys arrive.
type Keyboard struct {
	mu   sync.Mutex
	keys []byte
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Push appends a key byte to the queue.
func (k *Keyboard) Push(b byte) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.keys = append(k.keys, b)
}

// Len reports the number of buffered bytes.
func (k *Keyboard) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.keys)
}

// Read pops queued bytes in arrival order.
func (k *Keyboard) Read(p []byte) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if len(k.keys) == 0 {
		return 0, machine.ErrNoInput
	}
	n := copy(p, k.keys)
	k.keys = k.keys[n:]
	return n, nil
}
