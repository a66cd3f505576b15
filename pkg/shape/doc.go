// Package shape provides small geometric value objects and the behavior sets
// used to compute their area from loosely typed field sources.
//
// Rectangle and Circle are plain structs: fields are exported, stored verbatim
// and may be mutated directly. No range checks are performed, so negative or
// zero dimensions produce whatever the arithmetic yields.
//
// # Behavior Sets
//
// RectanglePrototype and CirclePrototype carry the same area computations but
// read their inputs through the Fields interface instead of struct fields. This
// lets a decoded JSON document borrow the behavior of a shape without being
// converted into one first:
//
//	obj, err := jsonx.Decode(shape.RectanglePrototype{}, `{"width":10,"height":20}`)
//	if err != nil {
//		// handle error
//	}
//	area := obj.Behavior().Area(obj) // 200
//
// # Usage
//
//	r := shape.NewRectangle(10, 20)
//	fmt.Println(r.Width, r.Height, r.Area()) // 10 20 200
package shape
