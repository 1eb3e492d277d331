package timer

import "testing"

func TestDueReturnsInOrder(t *testing.T) {
	s := NewScheduler()
	s.After(0, 2, BannerEnd, nil)
	s.After(0, 1, ShakeEnd, "a")
	s.After(0, 1, ComboDecay, "b")

	if due := s.Due(0.5); len(due) != 0 {
		t.Fatalf("nothing should be due at 0.5, got %v", due)
	}
	due := s.Due(1)
	if len(due) != 2 {
		t.Fatalf("got %d due events at 1.0, want 2", len(due))
	}
	if due[0].Kind != ShakeEnd || due[1].Kind != ComboDecay {
		t.Errorf("equal times must keep insertion order, got %v, %v", due[0].Kind, due[1].Kind)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestCancel(t *testing.T) {
	s := NewScheduler()
	h := s.After(0, 1, ShakeEnd, nil)
	if !s.Cancel(h) {
		t.Fatal("Cancel should find the record")
	}
	if s.Cancel(h) {
		t.Error("second Cancel must report nothing to cancel")
	}
	s.After(0, 1, ComboDecay, nil)
	s.After(0, 2, ComboDecay, nil)
	s.After(0, 3, BannerEnd, nil)
	if n := s.CancelKind(ComboDecay); n != 2 {
		t.Errorf("CancelKind removed %d, want 2", n)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Error("Clear left records behind")
	}
}

func TestActive(t *testing.T) {
	s := NewScheduler()
	s.After(10, 0.3, ShakeEnd, nil)
	if !s.Active(ShakeEnd, 10.1) {
		t.Error("shake should be active before it ends")
	}
	left, ok := s.Remaining(ShakeEnd, 10.1)
	if !ok || left < 0.19 || left > 0.21 {
		t.Errorf("Remaining = %v, %v; want about 0.2", left, ok)
	}
	if s.Active(ShakeEnd, 10.3) {
		t.Error("shake should be over at its end time")
	}
}
