// component/movement.go
package component

// Direction — горизонтальное направление патрулирования.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) Flip() Direction {
	return -d
}
