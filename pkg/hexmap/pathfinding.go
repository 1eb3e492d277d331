// pkg/hexmap/pathfinding.go
package hexmap

import (
	"container/heap"
)

// AStar находит кратчайший путь от start до goal по проходимым гексам.
// Возвращает nil, если пути нет.
func AStar(start, goal Hex, b *Board) []Hex {
	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &node{hex: start, priority: 0})
	costSoFar := map[Hex]int{start: 0}
	seq := 0
	for pq.Len() > 0 {
		current := heap.Pop(pq).(*node)
		if current.hex == goal {
			return reconstructPath(current)
		}
		for _, neighbor := range current.hex.Neighbors(b) {
			if !b.IsPassable(neighbor) {
				continue
			}
			newCost := costSoFar[current.hex] + 1
			if old, exists := costSoFar[neighbor]; !exists || newCost < old {
				costSoFar[neighbor] = newCost
				seq++
				heap.Push(pq, &node{
					hex:      neighbor,
					priority: newCost + neighbor.Distance(goal),
					seq:      seq,
					parent:   current,
				})
			}
		}
	}
	return nil // Нет пути
}

type node struct {
	hex      Hex
	priority int
	seq      int // порядок вставки, чтобы путь не зависел от реализации кучи
	parent   *node
}

type priorityQueue []*node

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) {
	*pq = append(*pq, x.(*node))
}
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

func reconstructPath(n *node) []Hex {
	path := []Hex{}
	for n != nil {
		path = append([]Hex{n.hex}, path...)
		n = n.parent
	}
	return path
}
