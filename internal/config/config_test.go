package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwkit/pwkit/internal/alphabet"
	"github.com/pwkit/pwkit/internal/config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"minimum length", 1, false},
		{"default length", config.DefaultLength, false},
		{"maximum length", 512, false},
		{"zero length", 0, true},
		{"negative length", -5, true},
		{"above maximum", 513, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := config.Validate(config.Config{Length: tt.length})

			if tt.wantErr {
				require.ErrorIs(t, err, config.ErrLengthOutOfRange)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestClasses(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want []alphabet.Class
	}{
		{
			name: "defaults enable symbols only",
			cfg:  config.Config{Length: config.DefaultLength},
			want: []alphabet.Class{alphabet.Symbols},
		},
		{
			name: "no symbols",
			cfg:  config.Config{Length: config.DefaultLength, NoSymbols: true},
			want: nil,
		},
		{
			name: "everything on",
			cfg: config.Config{
				Length:          config.DefaultLength,
				ExtendedSymbols: true,
				AllowSpace:      true,
			},
			want: []alphabet.Class{alphabet.Symbols, alphabet.ExtendedSymbols, alphabet.Space},
		},
		{
			name: "space without symbols",
			cfg:  config.Config{Length: config.DefaultLength, NoSymbols: true, AllowSpace: true},
			want: []alphabet.Class{alphabet.Space},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Classes())
		})
	}
}
