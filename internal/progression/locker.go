package progression

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type clientLock struct {
	sem  chan struct{}
	refs int
}

// LocalLocker serializes reward evaluation per client within one process.
// Lock entries are dropped once no goroutine holds or waits for them.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*clientLock
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{
		locks: make(map[uuid.UUID]*clientLock),
	}
}

func (l *LocalLocker) Lock(ctx context.Context, clientID uuid.UUID) (func(), error) {
	l.mu.Lock()
	cl, ok := l.locks[clientID]
	if !ok {
		cl = &clientLock{sem: make(chan struct{}, 1)}
		l.locks[clientID] = cl
	}
	cl.refs++
	l.mu.Unlock()

	select {
	case cl.sem <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-cl.sem
				l.release(clientID, cl)
			})
		}, nil
	case <-ctx.Done():
		l.release(clientID, cl)
		return nil, ctx.Err()
	}
}

func (l *LocalLocker) release(clientID uuid.UUID, cl *clientLock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cl.refs--
	if cl.refs == 0 {
		delete(l.locks, clientID)
	}
}

// Len returns the number of clients currently locked or waited on.
func (l *LocalLocker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
