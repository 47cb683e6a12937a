// internal/output/text.go
package output

import (
	"strconv"

	"depthbin/internal/engine"
)

// AppendText appends one text row for s, newline included:
// `<sequence>\t<total_positions>\t<average %.6f>`.
func AppendText(dst []byte, s engine.Sample) []byte {
	dst = append(dst, s.Sequence...)
	dst = append(dst, '\t')
	dst = strconv.AppendUint(dst, s.TotalPositions, 10)
	dst = append(dst, '\t')
	dst = strconv.AppendFloat(dst, s.Average, 'f', 6, 64)
	if s.Partial {
		dst = append(dst, '\t')
		dst = append(dst, PartialMark...)
	}
	return append(dst, '\n')
}
