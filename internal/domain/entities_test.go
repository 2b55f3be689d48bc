package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetailRecordFormatting(t *testing.T) {
	d := DetailRecord{Height: 4, Weight: 60}
	assert.Equal(t, "0.4 m", d.FormattedHeight())
	assert.Equal(t, "6.0 kg", d.FormattedWeight())
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"pikachu", "Pikachu"},
		{"", ""},
		{"éevee", "Éevee"},
		{"ñ", "Ñ"},
		{"mr-mime", "Mr-mime"},
		{"25", "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayEntry{Name: tt.name}.Title())
			assert.Equal(t, tt.want, DetailRecord{Name: tt.name}.Title())
		})
	}
}
