package main

// captureStack defers tokens into in-progress blocks while one or more "{"
// are open. Each frame collects the elements of one block; a nested block is
// closed into a Value and appended to its parent frame like any other
// element, so nesting needs no separate parse step.
type captureStack struct {
	frames [][]Value
}

func (cs *captureStack) depth() int { return len(cs.frames) }

func (cs *captureStack) open() {
	cs.frames = append(cs.frames, []Value{})
}

// push appends to the innermost frame; callers must check depth first.
func (cs *captureStack) push(val Value) {
	i := len(cs.frames) - 1
	cs.frames[i] = append(cs.frames[i], val)
}

func (cs *captureStack) close() (Value, error) {
	i := len(cs.frames) - 1
	if i < 0 {
		return Value{}, ErrBlockUnderrun
	}
	elems := cs.frames[i]
	cs.frames[i] = nil
	cs.frames = cs.frames[:i]
	return Block(elems...), nil
}

func (cs *captureStack) reset() {
	for i := range cs.frames {
		cs.frames[i] = nil
	}
	cs.frames = cs.frames[:0]
}
