package entity

import (
	"testing"

	"go-honey-arcade/internal/component"
)

func drop() *component.Entity {
	return component.NewCollectible(component.Position{}, component.Velocity{}, 5, component.Collectible{Value: 10})
}

func spark() *component.Entity {
	return component.NewParticle(component.Position{}, component.Velocity{}, 1, component.Particle{Life: 1, MaxLife: 1})
}

func TestSpawnAssignsSequentialIDs(t *testing.T) {
	p := NewPool(8)
	a := p.Spawn(drop())
	b := p.Spawn(drop())
	if a != 1 || b != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", a, b)
	}
	if p.Len() != 2 {
		t.Errorf("Len = %d, want 2", p.Len())
	}
}

func TestKillIsExactlyOnce(t *testing.T) {
	p := NewPool(8)
	id := p.Spawn(drop())
	if !p.Kill(id) {
		t.Fatal("first Kill should succeed")
	}
	if p.Kill(id) {
		t.Error("second Kill of the same entity must fail")
	}
	if p.Kill(999) {
		t.Error("Kill of unknown id must fail")
	}
	if _, ok := p.Get(id); ok {
		t.Error("dead entity must not be returned by Get")
	}
	if p.Len() != 0 {
		t.Errorf("Len = %d after kill, want 0", p.Len())
	}
}

func TestPruneRemovesDead(t *testing.T) {
	p := NewPool(8)
	for i := 0; i < 3; i++ {
		p.Spawn(drop())
	}
	p.Kill(2)
	if got := p.Prune(); got != 1 {
		t.Errorf("Prune removed %d, want 1", got)
	}
	if got := p.Prune(); got != 0 {
		t.Errorf("second Prune removed %d, want 0", got)
	}
	live := p.Live()
	if len(live) != 2 || live[0].ID != 1 || live[1].ID != 3 {
		t.Errorf("unexpected survivors: %v", live)
	}
}

func TestEachSkipsSpawnedAndKilledDuringIteration(t *testing.T) {
	p := NewPool(8)
	p.Spawn(drop())
	p.Spawn(drop())
	visited := 0
	p.Each(func(e *component.Entity) {
		visited++
		p.Spawn(spark())
		if e.ID == 1 {
			p.Kill(2)
		}
	})
	if visited != 1 {
		t.Errorf("visited %d entities, want 1", visited)
	}
	if p.CountKind(component.KindParticle) != 1 {
		t.Errorf("particles = %d, want 1", p.CountKind(component.KindParticle))
	}
}

func TestCapacityEvictsParticlesFirst(t *testing.T) {
	p := NewPool(2)
	p.Spawn(spark())
	p.Spawn(drop())
	if id := p.Spawn(drop()); id == 0 {
		t.Fatal("spawn should evict the particle")
	}
	if p.CountKind(component.KindParticle) != 0 {
		t.Error("particle should have been evicted")
	}
	if id := p.Spawn(drop()); id != 0 {
		t.Errorf("full pool without particles accepted id %d", id)
	}
	if p.Len() != 2 {
		t.Errorf("Len = %d, want capacity 2", p.Len())
	}
}

func TestClearResetsPool(t *testing.T) {
	p := NewPool(4)
	p.Spawn(drop())
	p.Spawn(drop())
	p.Clear()
	if p.Len() != 0 || len(p.Live()) != 0 {
		t.Error("pool not empty after Clear")
	}
	if id := p.Spawn(drop()); id != 1 {
		t.Errorf("first id after Clear = %d, want 1", id)
	}
}
