package geom

import "testing"

func TestCanvasPercent(t *testing.T) {
	c := DefaultCanvas()
	left, top := c.Percent(Pt(400, 150))
	if left != 50 || top != 25 {
		t.Errorf("Percent() = (%v, %v), want (50, 25)", left, top)
	}

	var zero Canvas
	left, top = zero.Percent(Pt(10, 10))
	if left != 0 || top != 0 {
		t.Errorf("zero canvas Percent() = (%v, %v), want (0, 0)", left, top)
	}
}

func TestCanvasCell(t *testing.T) {
	c := DefaultCanvas()
	tests := []struct {
		name string
		pt   Point
		col  int
		row  int
	}{
		{"origin", Pt(0, 0), 0, 0},
		{"far corner", Pt(800, 600), 80, 24},
		{"below canvas clamps", Pt(80, 620), 8, 24},
		{"left of canvas clamps", Pt(-50, 300), 0, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := c.Cell(tt.pt, 81, 25)
			if col != tt.col || row != tt.row {
				t.Errorf("Cell(%v) = (%d, %d), want (%d, %d)", tt.pt, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestMidpoint(t *testing.T) {
	got := Pt(80, 620).Midpoint(Pt(500, 180))
	if got != Pt(290, 400) {
		t.Errorf("Midpoint() = %v, want (290, 400)", got)
	}
}
