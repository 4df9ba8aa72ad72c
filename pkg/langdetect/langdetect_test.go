package langdetect

import "testing"

func TestIsEnglish(t *testing.T) {
	d := New()
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"plain english", "I think ethereum will reach a new all time high this cycle.", true},
		{"spanish", "Creo que el precio de ethereum va a subir mucho este año, es una gran oportunidad.", false},
		{"german", "Ich glaube, dass der Preis von Ethereum in diesem Zyklus stark steigen wird.", false},
		{"undetectable short text accepted", "$10k", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.IsEnglish(tt.text); got != tt.want {
				t.Errorf("IsEnglish(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
