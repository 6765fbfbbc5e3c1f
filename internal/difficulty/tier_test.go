package difficulty

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Tier
	}{
		{"easy", TierEasy},
		{"Easy", TierEasy},
		{"MEDIUM", TierMedium},
		{"  hard  ", TierHard},
		{"extreme", TierEasy},
		{"", TierEasy},
	}
	for _, c := range cases {
		if got := Parse(c.in); got != c.want {
			t.Errorf("Parse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestValid(t *testing.T) {
	if !Valid("Medium") {
		t.Error("Valid(Medium) = false, want true")
	}
	if Valid("impossible") {
		t.Error("Valid(impossible) = true, want false")
	}
}

func TestGetRanges(t *testing.T) {
	for _, tier := range Tiers {
		s := Get(tier)
		if s.Min > s.Max {
			t.Errorf("tier %q: Min %d > Max %d", tier, s.Min, s.Max)
		}
		if s.QuestionsPerSession <= 0 {
			t.Errorf("tier %q: QuestionsPerSession = %d, want > 0", tier, s.QuestionsPerSession)
		}
	}
}

func TestGetUnknownFallsBackToEasy(t *testing.T) {
	if Get(Tier("bogus")) != Get(TierEasy) {
		t.Error("Get(bogus) should resolve to Easy settings")
	}
}
