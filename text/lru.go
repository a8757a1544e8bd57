// SPDX-License-Identifier: Unlicense OR MIT

package text

// glyphKey identifies a rendered glyph.
type glyphKey struct {
	size uint32
	r    rune
}

type glyphElem struct {
	next, prev *glyphElem
	key        glyphKey
	char       *Character
}

// glyphLRU maps glyph keys to characters, keeping at most max of the
// most recently used.
type glyphLRU struct {
	max        int
	m          map[glyphKey]*glyphElem
	head, tail *glyphElem
}

const defaultMaxGlyphs = 1000

func (l *glyphLRU) Get(k glyphKey) (*Character, bool) {
	if e, ok := l.m[k]; ok {
		l.remove(e)
		l.insert(e)
		return e.char, true
	}
	return nil, false
}

// Put adds the character for k and returns the character it evicted,
// if any.
func (l *glyphLRU) Put(k glyphKey, c *Character) (evicted *Character) {
	if l.m == nil {
		l.m = make(map[glyphKey]*glyphElem)
		l.head = new(glyphElem)
		l.tail = new(glyphElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	if old, ok := l.m[k]; ok {
		l.remove(old)
		delete(l.m, k)
		evicted = old.char
	}
	val := &glyphElem{key: k, char: c}
	l.m[k] = val
	l.insert(val)
	limit := l.max
	if limit <= 0 {
		limit = defaultMaxGlyphs
	}
	if len(l.m) > limit {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
		evicted = oldest.char
	}
	return evicted
}

// Len returns the number of cached characters.
func (l *glyphLRU) Len() int {
	return len(l.m)
}

// Clear removes every character, calling f for each.
func (l *glyphLRU) Clear(f func(c *Character)) {
	for _, e := range l.m {
		f(e.char)
	}
	l.m = nil
	l.head, l.tail = nil, nil
}

func (l *glyphLRU) remove(e *glyphElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (l *glyphLRU) insert(e *glyphElem) {
	e.next = l.head
	e.prev = l.head.prev
	e.prev.next = e
	e.next.prev = e
}
