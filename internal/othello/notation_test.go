package othello //nolint:testpackage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		wantCoord Coordinate
		wantErr   bool
	}{
		{"first square", "a1", Coordinate{Row: 0, Col: 0}, false},
		{"last square", "h8", Coordinate{Row: 7, Col: 7}, false},
		{"mid board", "g6", Coordinate{Row: 5, Col: 6}, false},
		{"uppercase", "G6", Coordinate{Row: 5, Col: 6}, false},
		{"surrounding whitespace", " d3\n", Coordinate{Row: 2, Col: 3}, false},
		{"empty", "", Coordinate{}, true},
		{"too long", "a10", Coordinate{}, true},
		{"column out of range", "i5", Coordinate{}, true},
		{"row out of range", "a9", Coordinate{}, true},
		{"row zero", "a0", Coordinate{}, true},
		{"swapped", "6g", Coordinate{}, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			coord, err := ParseField(test.field)
			if test.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, test.wantCoord, coord)
		})
	}
}

func TestFieldRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			coord := Coordinate{Row: row, Col: col}

			parsed, err := ParseField(coord.Field())
			require.NoError(t, err)
			require.Equal(t, coord, parsed)
		}
	}
}
