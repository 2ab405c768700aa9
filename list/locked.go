package list

import "sync"

// Locked guards a List with a read/write mutex so it can be shared between goroutines.
type Locked[T any] struct {
	mu   sync.RWMutex
	list *List[T]
}

// NewLocked wraps l. A nil l is replaced by a new empty list.
func NewLocked[T any](l *List[T]) *Locked[T] {
	if l == nil {
		l = New[T]()
	}
	return &Locked[T]{list: l}
}

func (l *Locked[T]) AddFirst(x T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.AddFirst(x)
}

func (l *Locked[T]) AddLast(x T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.list.AddLast(x)
}

func (l *Locked[T]) GetFirst() (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.list.GetFirst()
}

func (l *Locked[T]) GetLast() (T, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.list.GetLast()
}

func (l *Locked[T]) Size() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.list.Size()
}

func (l *Locked[T]) SizeRecursive() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.list.SizeRecursive()
}

func (l *Locked[T]) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.list.String()
}
