package inference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf to lf", "a\r\nb\rc", "a\nb\nc"},
		{"tabs collapse", "a\t\tb", "a b"},
		{"runs of spaces", "a    b", "a b"},
		{"trailing spaces stripped", "a   \nb", "a\nb"},
		{"blank lines capped", "a\n\n\n\n\nb", "a\n\nb"},
		{"separator noise dropped", "a\n_____\nb", "a\nb"},
		{"letter O in digit run", "Issued 2O24", "Issued 2024"},
		{"lowercase o in digit run", "1o0 units", "100 units"},
		{"surrounding whitespace", "  \n date \n ", "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeKeepsLineStructure(t *testing.T) {
	in := "INVOICE\nDate: 15/03/2024\n\nTotal due"
	assert.Equal(t, in, Normalize(in))
}
