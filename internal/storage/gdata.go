package storage

import (
	"fmt"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const gdataObject = "scores"

// GdataStore хранит значения в каталоге данных приложения через gdata
type GdataStore struct {
	manager *gdata.Manager
}

// NewGdataStore открывает каталог данных приложения appName
func NewGdataStore(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("%w: gdata: %v", ErrUnavailable, err)
	}
	return &GdataStore{manager: m}, nil
}

// gdata хранит свойства как файлы, точки в именах заменяем
func propName(key string) string {
	return strings.ReplaceAll(key, ".", "_")
}

func (s *GdataStore) Get(key string) (string, bool) {
	prop := propName(key)
	if !s.manager.ObjectPropExists(gdataObject, prop) {
		return "", false
	}
	data, err := s.manager.LoadObjectProp(gdataObject, prop)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (s *GdataStore) Set(key, value string) error {
	if err := s.manager.SaveObjectProp(gdataObject, propName(key), []byte(value)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
