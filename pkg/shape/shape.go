package shape

import "math"

// Shape is anything with a computable area.
type Shape interface {
	Area() float64
}

// Fields exposes numeric attributes by name.
// Missing or non-numeric attributes read as zero.
type Fields interface {
	Float(key string) float64
}

// Rectangle is a two-field value object.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle stores width and height as given.
func NewRectangle(width, height float64) *Rectangle {
	return &Rectangle{Width: width, Height: height}
}

// Area returns Width * Height.
func (r *Rectangle) Area() float64 {
	return rectangleArea(r.Width, r.Height)
}

// Circle is a single-field value object.
type Circle struct {
	Radius float64 `json:"radius"`
}

func NewCircle(radius float64) *Circle {
	return &Circle{Radius: radius}
}

// Area returns π·r².
func (c *Circle) Area() float64 {
	return circleArea(c.Radius)
}

// RectanglePrototype is the behavior set of Rectangle evaluated against
// arbitrary fields named "width" and "height".
type RectanglePrototype struct{}

func (RectanglePrototype) Area(f Fields) float64 {
	return rectangleArea(f.Float("width"), f.Float("height"))
}

// CirclePrototype is the behavior set of Circle evaluated against a field
// named "radius".
type CirclePrototype struct{}

func (CirclePrototype) Area(f Fields) float64 {
	return circleArea(f.Float("radius"))
}

func rectangleArea(width, height float64) float64 {
	return width * height
}

func circleArea(radius float64) float64 {
	return math.Pi * radius * radius
}
