// internal/entity/pool.go
package entity

import (
	"go-honey-arcade/internal/component"
	"go-honey-arcade/internal/types"
)

// DefaultCapacity — сколько живых сущностей пул держит по умолчанию
const DefaultCapacity = 512

// Pool владеет всеми временными сущностями одной мини-игры.
// Порядок обхода совпадает с порядком появления, поэтому симуляция детерминирована.
type Pool struct {
	NextID   types.EntityID
	items    []*component.Entity
	index    map[types.EntityID]*component.Entity
	live     int
	capacity int
}

// NewPool создает пул с ограничением на число живых сущностей
func NewPool(capacity int) *Pool {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Pool{
		NextID:   1,
		items:    make([]*component.Entity, 0, capacity),
		index:    make(map[types.EntityID]*component.Entity, capacity),
		capacity: capacity,
	}
}

// Spawn добавляет сущность и возвращает ее ID. Если пул полон, вытесняется
// самая старая частица; если частиц нет — сущность не добавляется и возвращается 0.
func (p *Pool) Spawn(e *component.Entity) types.EntityID {
	if e == nil {
		return 0
	}
	if p.live >= p.capacity && !p.evictParticle() {
		return 0
	}
	id := p.NextID
	p.NextID++
	e.ID = id
	e.Dead = false
	p.items = append(p.items, e)
	p.index[id] = e
	p.live++
	return id
}

func (p *Pool) evictParticle() bool {
	for _, e := range p.items {
		if !e.Dead && e.Kind == component.KindParticle {
			e.Dead = true
			p.live--
			return true
		}
	}
	return false
}

// Get возвращает живую сущность по ID
func (p *Pool) Get(id types.EntityID) (*component.Entity, bool) {
	e, ok := p.index[id]
	if !ok || e.Dead {
		return nil, false
	}
	return e, true
}

// Kill помечает сущность удаленной. Возвращает false, если она уже удалена
// или не существует, так что одна сущность «съедается» ровно один раз.
func (p *Pool) Kill(id types.EntityID) bool {
	e, ok := p.index[id]
	if !ok || e.Dead {
		return false
	}
	e.Dead = true
	p.live--
	return true
}

// Each обходит живые сущности. Сущности, добавленные во время обхода,
// в него не попадают; убитые во время обхода пропускаются.
func (p *Pool) Each(fn func(e *component.Entity)) {
	n := len(p.items)
	for i := 0; i < n; i++ {
		if e := p.items[i]; !e.Dead {
			fn(e)
		}
	}
}

// Live возвращает снимок живых сущностей
func (p *Pool) Live() []*component.Entity {
	out := make([]*component.Entity, 0, p.live)
	for _, e := range p.items {
		if !e.Dead {
			out = append(out, e)
		}
	}
	return out
}

// Prune убирает мертвые сущности и возвращает их число
func (p *Pool) Prune() int {
	kept := p.items[:0]
	removed := 0
	for _, e := range p.items {
		if e.Dead {
			delete(p.index, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(p.items); i++ {
		p.items[i] = nil
	}
	p.items = kept
	return removed
}

// Len — число живых сущностей
func (p *Pool) Len() int {
	return p.live
}

// CountKind — число живых сущностей данного варианта
func (p *Pool) CountKind(kind component.Kind) int {
	n := 0
	for _, e := range p.items {
		if !e.Dead && e.Kind == kind {
			n++
		}
	}
	return n
}

// Capacity — ограничение пула
func (p *Pool) Capacity() int {
	return p.capacity
}

// Clear удаляет все сущности и сбрасывает счетчик ID
func (p *Pool) Clear() {
	for i := range p.items {
		p.items[i] = nil
	}
	p.items = p.items[:0]
	p.index = make(map[types.EntityID]*component.Entity, p.capacity)
	p.live = 0
	p.NextID = 1
}
