package locker

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrLockTimeout возвращается, когда блокировку не удалось получить до отмены контекста
	ErrLockTimeout = errors.New("locker: failed to acquire lock before deadline")

	// ErrLocker возвращается при ошибках хранилища блокировок
	ErrLocker = errors.New("locker: backend error")
)

// Unlock освобождает блокировку. Повторный вызов безопасен.
type Unlock func()

// EmployeeKey ключ блокировки расписания сотрудника
func EmployeeKey(tenantID, employeeID int64) string {
	return fmt.Sprintf("availability:tenant:%d:employee:%d", tenantID, employeeID)
}

// MemoryLocker блокировки по ключу внутри одного процесса
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch   chan struct{}
	refs int
}

// NewMemoryLocker создает in-process локер
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: make(map[string]*keyLock)}
}

// Lock блокирует key до вызова Unlock или возвращает ErrLockTimeout при отмене ctx
func (l *MemoryLocker) Lock(ctx context.Context, key string) (Unlock, error) {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.ch <- struct{}{}:
		var once sync.Once
		return func() {
			once.Do(func() {
				<-kl.ch
				l.release(key, kl)
			})
		}, nil
	case <-ctx.Done():
		l.release(key, kl)
		return nil, fmt.Errorf("%w: key=%s: %v", ErrLockTimeout, key, ctx.Err())
	}
}

func (l *MemoryLocker) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}
