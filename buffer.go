package displaylist

import "iter"

// Buffer is an append-only, replayable ordered sequence of commands.
// It is owned exclusively by one [Graphics] drawable and mutated only by
// append; the only removal operation is a full [Buffer.Reset].
//
// Order is semantically load-bearing: later commands draw on top of
// earlier ones, and a style command affects every subsequent geometry
// command until superseded.
//
// The buffer performs no validation. A FillPathCommand with no open
// sub-path, or an unbalanced RestoreCommand, is recorded as-is and left
// for the backend to handle at replay time.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	cmds []Command
}

// NewBuffer creates an empty command buffer with pre-allocated capacity.
func NewBuffer() *Buffer {
	return &Buffer{cmds: make([]Command, 0, 256)}
}

// Append records commands at the end of the buffer. It never fails and
// performs no validation; each shape call on [Graphics] expands fully or
// not at all, so no command is ever partially written.
func (b *Buffer) Append(cmds ...Command) {
	b.cmds = append(b.cmds, cmds...)
}

// Reset empties the buffer. Style defaults held by the owning drawable
// are unaffected; [Graphics.Clear] re-records them after resetting.
func (b *Buffer) Reset() {
	b.cmds = b.cmds[:0]
}

// Len returns the number of recorded commands.
func (b *Buffer) Len() int {
	return len(b.cmds)
}

// At returns the command at index i in insertion order.
func (b *Buffer) At(i int) Command {
	return b.cmds[i]
}

// Commands returns the recorded commands in insertion order. The returned
// slice is a read-only view; callers must not modify it.
func (b *Buffer) Commands() []Command {
	return b.cmds
}

// All returns a restartable iterator over the commands in insertion order.
// Each traversal snapshots the buffer length when it starts, so commands
// appended during iteration are not visited and do not invalidate the
// walk.
func (b *Buffer) All() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		cmds := b.cmds
		for _, cmd := range cmds {
			if !yield(cmd) {
				return
			}
		}
	}
}
