package views

import "testing"

func TestPaginator_ScrollsWithCursor(t *testing.T) {
	p := NewPaginator(3)
	p.SetTotal(7)

	for i := 0; i < 4; i++ {
		p.CursorDown()
	}

	if p.Cursor() != 4 {
		t.Fatalf("expected cursor 4, got %d", p.Cursor())
	}
	start, end := p.VisibleRange()
	if start != 3 || end != 6 {
		t.Errorf("expected visible range 3-6, got %d-%d", start, end)
	}
	if p.CurrentPage() != 2 || p.TotalPages() != 3 {
		t.Errorf("expected page 2/3, got %d/%d", p.CurrentPage(), p.TotalPages())
	}
}

func TestPaginator_ShrinkingTotalClampsCursor(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(5)
	p.SetCursor(4)

	p.SetTotal(2)
	if p.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", p.Cursor())
	}

	p.SetTotal(0)
	if p.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", p.Cursor())
	}
}

func TestPaginator_SetPageSize(t *testing.T) {
	p := NewPaginator(10)
	p.SetTotal(30)
	p.SetCursor(25)

	p.SetPageSize(5)
	start, end := p.VisibleRange()
	if start != 25 || end != 30 {
		t.Errorf("expected visible range 25-30, got %d-%d", start, end)
	}

	p.SetPageSize(0)
	if _, end := p.VisibleRange(); end != 30 {
		t.Errorf("zero page size should be ignored, got end %d", end)
	}
}
