package performer

import "testing"

func TestGroup_Render(t *testing.T) {
	tests := []struct {
		name  string
		group Group
		words []string
		want  string
	}{
		{"empty group", Group{Start: " (", End: ")"}, nil, ""},
		{"default separator", Group{Start: " (", End: ")"}, []string{"additional", "solo"}, " (additional solo)"},
		{"custom separator", Group{Start: "[", Separator: "; ", End: "]"}, []string{"a", "b", "c"}, "[a; b; c]"},
		{"single word", Group{End: " "}, []string{"guest"}, "guest "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.group.Render(tt.words); got != tt.want {
				t.Errorf("Render(%q) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	for _, g := range []GroupNumber{0, 5, -1} {
		cfg := DefaultConfig()
		cfg.Keywords.Vocals = g
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate() with vocals group %d should fail", g)
		}
	}
}
