package categorize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var legal = []string{"Food", "Daily Essentials", "Mobile Recharges", "Transport", Other}

func TestParseReply(t *testing.T) {
	tests := []struct {
		name     string
		reply    string
		count    int
		want     []string
		resolved []bool
	}{
		{
			name:     "exact",
			reply:    "0:Food\n1:Transport",
			count:    2,
			want:     []string{"Food", "Transport"},
			resolved: []bool{true, true},
		},
		{
			name:     "out of order and dash separator",
			reply:    "1 - transport\n0 : FOOD",
			count:    2,
			want:     []string{"Food", "Transport"},
			resolved: []bool{true, true},
		},
		{
			name:     "substring either direction",
			reply:    "0: essentials\n1: Mobile Recharges plan",
			count:    2,
			want:     []string{"Daily Essentials", "Mobile Recharges"},
			resolved: []bool{true, true},
		},
		{
			name:     "general maps to other",
			reply:    "0:General",
			count:    1,
			want:     []string{Other},
			resolved: []bool{true},
		},
		{
			name:     "explicit other",
			reply:    "0:Other",
			count:    1,
			want:     []string{Other},
			resolved: []bool{true},
		},
		{
			name:     "missing and unknown default",
			reply:    "1:Spaceships\n7:Food",
			count:    3,
			want:     []string{Other, Other, Other},
			resolved: []bool{false, false, false},
		},
		{
			name:     "first answer wins",
			reply:    "0:Food 0:Transport",
			count:    1,
			want:     []string{"Food"},
			resolved: []bool{true},
		},
		{
			name:     "garbage",
			reply:    "I cannot help with that.",
			count:    2,
			want:     []string{Other, Other},
			resolved: []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseReply(tt.reply, tt.count, legal)
			assert.Equal(t, tt.want, parsed.Categories)
			assert.Equal(t, tt.resolved, parsed.Resolved)
		})
	}
}

func TestParseReply_RecordsAnomalies(t *testing.T) {
	parsed := ParseReply("5:Food\n0:Spaceships", 2, legal)
	assert.Len(t, parsed.Anomalies, 4)
}
