package interpreter

import "fmt"

// Grid is the area of operation. Valid positions satisfy 0 <= x <= M and
// 0 <= y <= N; the bounds never change once parsed.
type Grid struct {
	M, N int
}

func (g Grid) Contains(p Vector) bool {
	return p.X >= 0 && p.X <= g.M && p.Y >= 0 && p.Y <= g.N
}

func (g Grid) String() string {
	return fmt.Sprintf("%d %d", g.M, g.N)
}
