package difficulty

import "testing"

func TestParseTier(t *testing.T) {
	tests := []struct {
		in   string
		want Tier
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{" HARD ", Hard},
		{"", Easy},
		{"extreme", Easy},
	}
	for _, tt := range tests {
		if got := ParseTier(tt.in); got != tt.want {
			t.Errorf("ParseTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTierStrict(t *testing.T) {
	if _, err := ParseTierStrict("nightmare"); err == nil {
		t.Fatal("expected error for unknown tier")
	}
	got, err := ParseTierStrict("Medium")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Medium {
		t.Errorf("got %q, want %q", got, Medium)
	}
}

func TestTowerRange(t *testing.T) {
	tests := []struct {
		tier Tier
		want Range
	}{
		{Easy, Range{5, 10}},
		{Medium, Range{11, 20}},
		{Hard, Range{21, 35}},
		{Tier("bogus"), Range{5, 10}},
	}
	for _, tt := range tests {
		if got := TowerRange(tt.tier); got != tt.want {
			t.Errorf("TowerRange(%q) = %+v, want %+v", tt.tier, got, tt.want)
		}
	}
}

func TestGradeRange(t *testing.T) {
	tests := []struct {
		grade int
		want  int
	}{
		{-1, 10},
		{0, 10},
		{1, 10},
		{2, 20},
		{3, 50},
		{5, 50},
	}
	for _, tt := range tests {
		if got := GradeRange(tt.grade); got != tt.want {
			t.Errorf("GradeRange(%d) = %d, want %d", tt.grade, got, tt.want)
		}
	}
}

func TestFromStreak(t *testing.T) {
	tests := []struct {
		streak int
		want   Tier
	}{
		{0, Easy},
		{3, Easy},
		{4, Medium},
		{12, Medium},
	}
	for _, tt := range tests {
		if got := FromStreak(tt.streak); got != tt.want {
			t.Errorf("FromStreak(%d) = %q, want %q", tt.streak, got, tt.want)
		}
	}
}

func TestScaled(t *testing.T) {
	p := DefaultPolicy()
	tests := []struct {
		base int
		tier Tier
		want int
	}{
		{10, Easy, 10},
		{10, Medium, 15},
		{10, Hard, 20},
		{1, Medium, 2},
		{20, Tier("bogus"), 20},
	}
	for _, tt := range tests {
		if got := p.Scaled(tt.base, tt.tier); got != tt.want {
			t.Errorf("Scaled(%d, %q) = %d, want %d", tt.base, tt.tier, got, tt.want)
		}
	}
}
