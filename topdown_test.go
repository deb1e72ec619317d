package topdown

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if s.Len() != 2 {
		t.Errorf("expected length of %v to be 2, is %d", s, s.Len())
	}
	s = s.Extend(Span{1, 4})
	if s.From() != 1 || s.To() != 5 {
		t.Errorf("expected extended span to be (1…5), is %v", s)
	}
	if (Span{}).IsNull() == false {
		t.Errorf("expected zero span to be null")
	}
	if s.String() != "(1…5)" {
		t.Errorf("unexpected span string %q", s.String())
	}
}
