package displaylist

import (
	"math"
	"testing"
)

func TestBufferAppend(t *testing.T) {
	buf := NewBuffer()
	if buf.Len() != 0 {
		t.Fatalf("new buffer Len() = %d, want 0", buf.Len())
	}

	buf.Append(BeginPathCommand{})
	buf.Append(MoveToCommand{X: 1, Y: 2}, LineToCommand{X: 3, Y: 4})

	if got := buf.Len(); got != 3 {
		t.Fatalf("Len() = %d, want 3", got)
	}
	if got := buf.At(0).Op(); got != OpBeginPath {
		t.Errorf("At(0).Op() = %v, want %v", got, OpBeginPath)
	}
	if got := buf.At(2).Op(); got != OpLineTo {
		t.Errorf("At(2).Op() = %v, want %v", got, OpLineTo)
	}
}

func TestBufferReset(t *testing.T) {
	buf := NewBuffer()
	buf.Append(BeginPathCommand{}, FillPathCommand{})
	buf.Reset()

	if got := buf.Len(); got != 0 {
		t.Errorf("Len() after Reset = %d, want 0", got)
	}

	// Buffer stays usable after reset.
	buf.Append(SaveCommand{})
	if got := buf.Len(); got != 1 {
		t.Errorf("Len() after append = %d, want 1", got)
	}
}

func TestBufferOrder(t *testing.T) {
	buf := NewBuffer()
	buf.Append(
		FillStyleCommand{Color: 0xff0000, Alpha: 1},
		FillRectCommand{X: 0, Y: 0, Width: 10, Height: 10},
		FillStyleCommand{Color: 0x0000ff, Alpha: 1},
		FillRectCommand{X: 5, Y: 5, Width: 10, Height: 10},
	)

	want := []Op{OpFillStyle, OpFillRect, OpFillStyle, OpFillRect}
	cmds := buf.Commands()
	if len(cmds) != len(want) {
		t.Fatalf("Commands() len = %d, want %d", len(cmds), len(want))
	}
	for i, cmd := range cmds {
		if cmd.Op() != want[i] {
			t.Errorf("Commands()[%d].Op() = %v, want %v", i, cmd.Op(), want[i])
		}
	}
}

// Recorded operands must survive bit-exact, including values that would
// round through a lossy encoding.
func TestBufferOperandFidelity(t *testing.T) {
	arc := ArcCommand{
		X:          math.Pi * 1e9,
		Y:          -0.1,
		Radius:     math.Nextafter(1, 2),
		StartAngle: 1e-300,
		EndAngle:   2 * math.Pi,
	}
	buf := NewBuffer()
	buf.Append(arc)

	got, ok := buf.At(0).(ArcCommand)
	if !ok {
		t.Fatalf("At(0) = %T, want ArcCommand", buf.At(0))
	}
	if got != arc {
		t.Errorf("At(0) = %+v, want %+v", got, arc)
	}
}

func TestBufferAll(t *testing.T) {
	buf := NewBuffer()
	buf.Append(BeginPathCommand{}, MoveToCommand{X: 1}, FillPathCommand{})

	t.Run("visits all in order", func(t *testing.T) {
		var ops []Op
		for cmd := range buf.All() {
			ops = append(ops, cmd.Op())
		}
		want := []Op{OpBeginPath, OpMoveTo, OpFillPath}
		if len(ops) != len(want) {
			t.Fatalf("visited %d commands, want %d", len(ops), len(want))
		}
		for i := range want {
			if ops[i] != want[i] {
				t.Errorf("ops[%d] = %v, want %v", i, ops[i], want[i])
			}
		}
	})

	t.Run("early stop", func(t *testing.T) {
		n := 0
		for range buf.All() {
			n++
			break
		}
		if n != 1 {
			t.Errorf("visited %d commands after break, want 1", n)
		}
	})

	t.Run("restartable", func(t *testing.T) {
		seq := buf.All()
		for range 2 {
			n := 0
			for range seq {
				n++
			}
			if n != 3 {
				t.Errorf("traversal visited %d commands, want 3", n)
			}
		}
	})

	t.Run("snapshots length", func(t *testing.T) {
		b := NewBuffer()
		b.Append(BeginPathCommand{}, FillPathCommand{})
		n := 0
		for range b.All() {
			if n == 0 {
				b.Append(StrokePathCommand{})
			}
			n++
		}
		if n != 2 {
			t.Errorf("visited %d commands, want 2 (append during iteration not visited)", n)
		}
	})
}
