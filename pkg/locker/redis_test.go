package locker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type warnRecorder struct {
	mu    sync.Mutex
	warns int
}

func (w *warnRecorder) Warn(string, ...interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.warns++
}

func newRedisLocker(t *testing.T, ttl time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisLocker(client, ttl, &warnRecorder{}), mr
}

func TestRedisLocker_MutualExclusion(t *testing.T) {
	l, _ := newRedisLocker(t, time.Minute)
	key := EmployeeKey(1, 2)

	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := l.Lock(context.Background(), key)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			n := atomic.AddInt32(&inside, 1)
			for {
				seen := atomic.LoadInt32(&maxSeen)
				if n <= seen || atomic.CompareAndSwapInt32(&maxSeen, seen, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxSeen)
}

func TestRedisLocker_SetsTTLAndReleases(t *testing.T) {
	l, mr := newRedisLocker(t, 5*time.Second)
	key := EmployeeKey(1, 2)

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 5*time.Second, mr.TTL(key))

	unlock()
	assert.False(t, mr.Exists(key))

	// Повторный вызов безопасен
	unlock()
}

func TestRedisLocker_Timeout(t *testing.T) {
	l, _ := newRedisLocker(t, time.Minute)
	key := EmployeeKey(1, 2)

	unlock, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err = l.Lock(ctx, key)
	require.ErrorIs(t, err, ErrLockTimeout)

	// Другой ключ не блокируется
	other, err := l.Lock(context.Background(), EmployeeKey(1, 3))
	require.NoError(t, err)
	other()
}

func TestRedisLocker_ReleaseKeepsForeignToken(t *testing.T) {
	l, mr := newRedisLocker(t, time.Second)
	key := EmployeeKey(1, 2)

	first, err := l.Lock(context.Background(), key)
	require.NoError(t, err)

	// Блокировка первого владельца истекла, ключ забрал второй
	mr.FastForward(2 * time.Second)
	require.False(t, mr.Exists(key))

	second, err := l.Lock(context.Background(), key)
	require.NoError(t, err)
	held, err := mr.Get(key)
	require.NoError(t, err)

	first()
	require.True(t, mr.Exists(key))
	current, err := mr.Get(key)
	require.NoError(t, err)
	assert.Equal(t, held, current)

	second()
	assert.False(t, mr.Exists(key))
}

func TestRedisLocker_BackendError(t *testing.T) {
	l, mr := newRedisLocker(t, time.Minute)
	mr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := l.Lock(ctx, EmployeeKey(1, 2))
	require.ErrorIs(t, err, ErrLocker)
}
