package language

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en-US", "English (United States)"},
		{"en-GB", "English (United Kingdom)"},
		{"fr-CA", "French (Canada)"},
		{"es", "Spanish"},
		{" de ", "German"},
		{"", "Unknown"},
		{"   ", "Unknown"},
		{"not a code", "NOT A CODE"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := DisplayName(tt.code); got != tt.want {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestToISO2(t *testing.T) {
	tests := map[string]string{
		"en-US":      "en",
		"pt-BR":      "pt",
		"ja":         "ja",
		"":           "",
		"not a code": "",
	}
	for code, want := range tests {
		if got := ToISO2(code); got != want {
			t.Errorf("ToISO2(%q) = %q, want %q", code, got, want)
		}
	}
}
