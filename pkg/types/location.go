package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Location identifies a span of source text. FileID references the File
// registry rather than embedding a path, so many vertices sharing a file
// share one small struct value.
type Location struct {
	FileID    string
	StartLine int
	StartCol  int
	EndLine   int
	EndCol    int
}

// ParseLocation parses the comma-separated "fileId,startLine,startCol,
// endLine,endCol" tuple the elaborator emits in a "loc" attribute.
func ParseLocation(s string) (Location, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 5 {
		return Location{}, fmt.Errorf("malformed location %q: expected 5 comma-separated fields, got %d", s, len(parts))
	}
	ints := make([]int, 4)
	for i, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Location{}, fmt.Errorf("malformed location %q: field %d is not an integer: %w", s, i+1, err)
		}
		ints[i] = n
	}
	return Location{
		FileID:    parts[0],
		StartLine: ints[0],
		StartCol:  ints[1],
		EndLine:   ints[2],
		EndCol:    ints[3],
	}, nil
}

func (l Location) String() string {
	return fmt.Sprintf("%s,%d,%d,%d,%d", l.FileID, l.StartLine, l.StartCol, l.EndLine, l.EndCol)
}
