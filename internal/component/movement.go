// internal/component/movement.go
package component

// Position — компонент позиции (центр сущности, пиксели)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости (пиксели в секунду)
type Velocity struct {
	X, Y float64
}
