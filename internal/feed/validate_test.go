package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUsablePayload(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"legacy markup", `<?xml version="1.0"?><cameras><camera/></cameras>`, true},
		{"markup without declaration", `<cameras></cameras>`, true},
		{"json envelope contents", `{"features":[]}`, true},
		{"empty", "", false},
		{"whitespace only", "   \n\t ", false},
		{"doctype error page", "<!DOCTYPE html><html><body>502 Bad Gateway</body></html>", false},
		{"doctype lowercase", "<!doctype html>", false},
		{"bare html tag", "<html lang=\"en\"><head></head></html>", false},
		{"html after leading whitespace", "\n  <HTML>oops</HTML>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUsablePayload(tt.body))
		})
	}
}
