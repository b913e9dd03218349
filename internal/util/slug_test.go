package util

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic normalization
		{"lowercase", "DELTOID", "deltoid"},
		{"spaces to dashes", "biceps brachii", "biceps-brachii"},
		{"underscores to dashes", "biceps_brachii", "biceps-brachii"},
		{"already normalized", "biceps-brachii", "biceps-brachii"},

		// Whitespace handling
		{"trim whitespace", "  deltoid  ", "deltoid"},
		{"multiple spaces", "erector   spinae", "erector-spinae"},
		{"tabs and spaces", "erector\t spinae", "erector-spinae"},

		// Special characters
		{"punctuation removal", "flexor/extensor", "flexor-extensor"},
		{"parentheses removal", "deltoid (anterior)", "deltoid-anterior"},
		{"apostrophe removal", "sartorius'", "sartorius"},

		// Dash handling
		{"multiple dashes", "biceps--brachii", "biceps-brachii"},
		{"leading dashes", "--deltoid", "deltoid"},
		{"trailing dashes", "deltoid--", "deltoid"},
		{"mixed dashes", "--biceps--brachii--", "biceps-brachii"},

		// Edge cases
		{"empty string", "", ""},
		{"only spaces", "   ", ""},
		{"only special chars", "!@#$%", ""},
		{"numbers allowed", "t7", "t7"},
		{"mixed case with numbers", "Costal Cartilages 5 7", "costal-cartilages-5-7"},

		// Real-world examples
		{"latissimus", "Latissimus Dorsi", "latissimus-dorsi"},
		{"rectus abdominis", "Rectus Abdominis", "rectus-abdominis"},
		{"gluteus", "Gluteus_Maximus", "gluteus-maximus"},
		{"camel case", "GastroCnemius", "gastrocnemius"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Slugify(tt.input)
			if result != tt.expected {
				t.Errorf("Slugify(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
