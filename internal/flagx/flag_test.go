package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "keeps allowed flag with separate value",
			args:    []string{"-a", "http://127.0.0.1:8000", "-x", "nope"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://127.0.0.1:8000"},
		},
		{
			name:    "keeps allowed flag with equals form",
			args:    []string{"--config=conf.json", "-other=1"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "drops unknown flags entirely",
			args:    []string{"-z", "v", "-q"},
			allowed: []string{"-a"},
			want:    []string{},
		},
		{
			name:    "flag at end without value",
			args:    []string{"-a"},
			allowed: []string{"-a"},
			want:    []string{"-a"},
		},
		{
			name:    "value looking like a flag is not consumed",
			args:    []string{"-a", "-d"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", "-d"},
		},
		{
			name:    "empty input yields empty non-nil slice",
			args:    []string{},
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}
