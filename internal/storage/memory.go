package storage

import "fmt"

// Memory — хранилище в памяти, для тестов и режима без диска
type Memory struct {
	data map[string]string
	// FailWrites заставляет Set возвращать ошибку (имитация отказа хранилища)
	FailWrites bool
	Writes     int
}

// NewMemory создает пустое хранилище
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *Memory) Set(key, value string) error {
	if m.FailWrites {
		return fmt.Errorf("%w: writes disabled", ErrUnavailable)
	}
	m.data[key] = value
	m.Writes++
	return nil
}
