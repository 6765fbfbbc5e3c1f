package progress

import "testing"

func TestStarsForAccuracyBoundaries(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     int
	}{
		{100, 3},
		{95, 3},
		{94, 2},
		{80, 2},
		{79, 1},
		{60, 1},
		{59, 0},
		{0, 0},
	}
	for _, c := range cases {
		if got := StarsForAccuracy(c.accuracy); got != c.want {
			t.Errorf("StarsForAccuracy(%v) = %d, want %d", c.accuracy, got, c.want)
		}
	}
}

func TestSessionAccuracy(t *testing.T) {
	var s Session
	if got := s.Accuracy(); got != 0 {
		t.Errorf("Accuracy with no answers = %v, want 0", got)
	}

	s.Record(true)
	s.Record(true)
	s.Record(false)
	got := s.Accuracy()
	if got < 66.6 || got > 66.7 {
		t.Errorf("Accuracy(2/3) = %v, want ~66.67", got)
	}
	if s.Correct != 2 || s.Incorrect != 1 || s.Answered != 3 {
		t.Errorf("counters = %d/%d/%d, want 2/1/3", s.Correct, s.Incorrect, s.Answered)
	}
}
