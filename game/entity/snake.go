package entity

import "snake-classic/game/types"

// Snake holds the body cells, head first.
type Snake struct {
	Body []types.Point
}

// NewSnake builds a snake from body cells, head first.
func NewSnake(body ...types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b}
}

// NewStartSnake returns the horizontal three-cell snake every game begins with.
func NewStartSnake() *Snake {
	return NewSnake(
		types.Point{X: 10, Y: 10},
		types.Point{X: 9, Y: 10},
		types.Point{X: 8, Y: 10},
	)
}

// Move prepends newHead.
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any body cell equals p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body safe to hand to renderers.
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
