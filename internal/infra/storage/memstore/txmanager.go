package memstore

import (
	"context"
	"sync"
)

type txKey struct{}

// TxManager менеджер транзакций для хранилища в памяти
type TxManager struct {
	mu sync.Mutex
}

// NewTxManager создает новый экземпляр TxManager
func NewTxManager() *TxManager {
	return &TxManager{}
}

// Do выполняет fn эксклюзивно; вложенные вызовы присоединяются к внешней транзакции
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(context.WithValue(ctx, txKey{}, struct{}{}))
}

// DoSerializable см. Do
func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// DoReadOnly см. Do
func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}
