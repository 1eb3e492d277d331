package storage

import (
	"log"
	"strconv"
	"strings"
)

// BestScore — лучший счет одной мини-игры поверх Store.
// Записанное значение никогда не уменьшается.
type BestScore struct {
	Store Store
	Key   string

	cached bool
	best   int
}

// NewBestScore создает рекорд под ключом key. store может быть nil.
func NewBestScore(store Store, key string) *BestScore {
	return &BestScore{Store: store, Key: key}
}

// Read возвращает рекорд. Отсутствующее, испорченное или отрицательное значение — 0.
func (b *BestScore) Read() int {
	if b == nil {
		return 0
	}
	if b.cached {
		return b.best
	}
	b.best = parseScore(b.load())
	b.cached = true
	return b.best
}

func (b *BestScore) load() string {
	if b.Store == nil {
		return ""
	}
	v, ok := b.Store.Get(b.Key)
	if !ok {
		return ""
	}
	return v
}

func parseScore(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Record сохраняет score, если он больше рекорда. Возвращает текущий рекорд
// и признак того, что он побит. Ошибка записи только логируется.
func (b *BestScore) Record(score int) (int, bool) {
	if b == nil {
		return 0, false
	}
	// Другой экземпляр мог записать рекорд выше, поэтому хранилище перечитывается
	best := max(b.Read(), parseScore(b.load()))
	b.best = best
	if score <= best {
		return best, false
	}
	b.best = score
	if b.Store != nil {
		if err := b.Store.Set(b.Key, strconv.Itoa(score)); err != nil {
			log.Printf("[Storage] Failed to persist best score for %s: %v", b.Key, err)
		}
	}
	return score, true
}
