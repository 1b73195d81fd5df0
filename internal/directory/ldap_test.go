package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseDN(t *testing.T) {
	tests := []struct {
		name     string
		fqdn     string
		expected string
	}{
		{"three labels", "corp.example.com", "dc=corp,dc=example,dc=com"},
		{"two labels", "example.com", "dc=example,dc=com"},
		{"single label", "corp", "dc=corp"},
	}

	for _, tt := range tests {
		t.Run("should derive the base DN from "+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, baseDN(tt.fqdn))
		})
	}
}
