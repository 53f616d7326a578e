package shelf

import "sync"

type opKind int

const (
	readOp opKind = iota
	writeOp
)

// locker serializes store operations within the process. Reads may proceed
// concurrently; writes are exclusive. Cross-process arbitration is the
// substrate's concern (see kv/dirkv and kv/boltkv).
type locker struct {
	mu sync.RWMutex
}

func (l *locker) run(kind opKind, fn func() error) error {
	if kind == readOp {
		l.mu.RLock()
		defer l.mu.RUnlock()
	} else {
		l.mu.Lock()
		defer l.mu.Unlock()
	}
	return fn()
}
