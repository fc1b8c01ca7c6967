package asn1der

// Cursor tracks the position inside the elements of one SEQUENCE while it
// is mapped onto a record or array. Peek never moves the position; only
// Advance and a successful DecodeNull do. A failed attempt therefore leaves
// the element in place for the next attempt.
type Cursor struct {
	elems []Object
	pos   int
}

func NewCursor(elems []Object) *Cursor { return &Cursor{elems: elems} }

func (c *Cursor) Pos() int       { return c.pos }
func (c *Cursor) Len() int       { return len(c.elems) }
func (c *Cursor) Remaining() int { return len(c.elems) - c.pos }
func (c *Cursor) AtEnd() bool    { return c.pos >= len(c.elems) }

// Peek returns the element at the current position without consuming it.
func (c *Cursor) Peek() (Object, error) {
	if c.AtEnd() {
		return Object{}, invalid("sequence has no element left at position %d", c.pos)
	}
	return c.elems[c.pos], nil
}

// Advance consumes the current element.
func (c *Cursor) Advance() {
	if !c.AtEnd() {
		c.pos++
	}
}

// DecodeNull consumes the current element if it is a valid NULL and
// reports whether it did.
func (c *Cursor) DecodeNull() bool {
	o, err := c.Peek()
	if err != nil {
		return false
	}
	if _, err := NullFromObject(o); err != nil {
		return false
	}
	c.Advance()
	return true
}

// decodeNext maps the next element with m. Nullable mappings see an
// explicit NULL as the absent value. The position only moves on success.
func decodeNext[T any](c *Cursor, st *state, m Mapping[T]) (T, error) {
	var zero T
	if m.nullable && c.DecodeNull() {
		return zero, nil
	}
	o, err := c.Peek()
	if err != nil {
		return zero, err
	}
	v, err := m.decode(st, o)
	if err != nil {
		return zero, err
	}
	c.Advance()
	return v, nil
}
