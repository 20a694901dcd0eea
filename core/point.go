package core

import "fmt"

// Point is an integer grid coordinate
type Point struct {
	X, Y int
}

// Add returns p+o
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neg returns -p
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the origin
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Vec2 returns the continuous equivalent of p
func (p Point) Vec2() Vec2 {
	return Vec2{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Vec2 is a continuous planar position
type Vec2 struct {
	X, Y float64
}

// Vec3 is a continuous scene position, Y is the vertical axis
type Vec3 struct {
	X, Y, Z float64
}
