package snake

// Segment is one occupied cell of the snake. Index 0 is the head.
type Segment struct {
	Index int
	Pos   Position
}

// Snake is the ordered body of the snake, its heading and pending growth.
type Snake struct {
	body     []Position // Head at index 0
	occupied map[Position]struct{}
	dir      Direction
	growing  bool // If true, don't remove tail on next move
}

// NewSnake creates a snake of the given length with its head at head,
// the body trailing straight behind it.
func NewSnake(head Position, length int, dir Direction) *Snake {
	length = max(length, 1)
	back := dir.Opposite().Vector()

	body := make([]Position, length)
	p := head
	for i := range body {
		body[i] = p
		p = p.Add(back)
	}
	return newSnakeFrom(body, dir)
}

// newSnakeFrom builds a snake from explicit cells, head first.
func newSnakeFrom(body []Position, dir Direction) *Snake {
	s := &Snake{
		body:     append([]Position(nil), body...),
		occupied: make(map[Position]struct{}, len(body)),
		dir:      dir,
	}
	for _, p := range s.body {
		s.occupied[p] = struct{}{}
	}
	return s
}

// Head returns the head cell.
func (s *Snake) Head() Position {
	return s.body[0]
}

// Tail returns the last cell.
func (s *Snake) Tail() Position {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Turn sets a new heading. The exact opposite of the current heading is
// rejected and Turn reports false.
func (s *Snake) Turn(d Direction) bool {
	if d.IsOpposite(s.dir) {
		return false
	}
	s.dir = d
	return true
}

// NextHead returns where the head goes on the next move.
func (s *Snake) NextHead() Position {
	return s.Head().Add(s.dir.Vector())
}

// Occupies reports whether any segment is on p.
func (s *Snake) Occupies(p Position) bool {
	_, ok := s.occupied[p]
	return ok
}

// HitsBody reports whether moving the head to p runs into the body.
// The tail cell is free unless the snake is about to grow, since it is
// vacated by the same move.
func (s *Snake) HitsBody(p Position) bool {
	if !s.Occupies(p) {
		return false
	}
	return s.growing || p != s.Tail()
}

// Grow makes the next Advance keep the tail.
func (s *Snake) Grow() {
	s.growing = true
}

// Advance moves the head to p and drops the tail unless growth is pending.
// Callers check collisions first.
func (s *Snake) Advance(p Position) {
	if s.growing {
		s.growing = false
	} else {
		tail := s.Tail()
		s.body = s.body[:len(s.body)-1]
		delete(s.occupied, tail)
	}

	s.body = append(s.body, Position{})
	copy(s.body[1:], s.body)
	s.body[0] = p
	s.occupied[p] = struct{}{}
}

// Segments returns the body as indexed segments, head first.
func (s *Snake) Segments() []Segment {
	segs := make([]Segment, len(s.body))
	for i, p := range s.body {
		segs[i] = Segment{Index: i, Pos: p}
	}
	return segs
}
