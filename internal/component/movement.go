// component/movement.go
package component

// Position — компонент позиции (мировые координаты, ось Y вниз)
type Position struct {
	X, Y float64
}

// Velocity — компонент скорости
type Velocity struct {
	Speed  float64 // максимальная скорость, px/s
	DX, DY float64 // текущее направление, нормализованное
}
