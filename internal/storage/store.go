// Package storage хранит единственное число между сессиями — лучший счет.
// Хранилище может отсутствовать: тогда рекорд равен нулю, а запись молча теряется.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable — хранилище не удалось открыть или оно отказало в записи
var ErrUnavailable = errors.New("storage unavailable")

// Store — строковое хранилище ключ-значение
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Open разбирает строку вида gdata | sqlite:PATH | memory.
// appName нужен только для gdata.
func Open(spec, appName string) (Store, error) {
	switch {
	case spec == "" || spec == "gdata":
		return NewGdataStore(appName)
	case spec == "memory":
		return NewMemory(), nil
	case strings.HasPrefix(spec, "sqlite:"):
		path := strings.TrimPrefix(spec, "sqlite:")
		if path == "" {
			return nil, fmt.Errorf("%w: empty sqlite path", ErrUnavailable)
		}
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("%w: unknown store %q", ErrUnavailable, spec)
}
