package list

import (
	"fmt"
	"io"
	"strings"
)

// Separator is the link marker printed between consecutive values.
const Separator = "->"

// AppendValue renders one value of a chain into b: the value padded with a
// space on both sides, followed by Separator unless v is the last value.
func AppendValue(b *strings.Builder, v any, last bool) {
	fmt.Fprintf(b, " %v ", v)
	if !last {
		b.WriteString(Separator)
	}
}

// Flush terminates the rendered chain with a newline and writes it to w in
// a single call, so a failed write never leaves half a line behind.
func Flush(w io.Writer, b *strings.Builder) error {
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}
