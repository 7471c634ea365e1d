package domain

import "sync"

// SubscriptionLocks serializes engine mutations per subscription. Cycle
// completion must observe the touch update and the next-cycle
// materialization as one unit; operations on different subscriptions run
// in parallel.
type SubscriptionLocks struct {
	mu sync.Map // subscription ID -> *sync.Mutex
}

// NewSubscriptionLocks creates an empty lock table.
func NewSubscriptionLocks() *SubscriptionLocks {
	return &SubscriptionLocks{}
}

// Lock acquires the mutex for the given subscription and returns its
// release function.
func (l *SubscriptionLocks) Lock(subscriptionID int) func() {
	v, _ := l.mu.LoadOrStore(subscriptionID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
