package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Line is one scanned line of input, split into whitespace delimited tokens.
type Line struct {
	Location
	Tokens []string

	// EOS is set on the last line of a stream.
	EOS bool
}

func (il Line) String() string {
	return fmt.Sprintf("%v %q", il.Location, strings.Join(il.Tokens, " "))
}

// Input scans lines of tokens sequentially through a Queue of one or more
// input streams. Control characters count as whitespace.
type Input struct {
	Queue []io.Reader

	rr   io.RuneReader
	name string
	line int
	sb   strings.Builder
}

// ScanLine reads the next line from the current stream, moving on to the next
// queued stream after the current one ends. Returns io.EOF once every stream
// has been consumed.
func (in *Input) ScanLine() (Line, error) {
	if in.rr == nil && !in.nextIn() {
		return Line{}, io.EOF
	}

	in.line++
	ln := Line{Location: Location{in.name, in.line}}
	for {
		r, _, err := in.rr.ReadRune()
		if err == io.EOF {
			in.flushToken(&ln)
			in.rr = nil
			ln.EOS = true
			return ln, nil
		} else if err != nil {
			return ln, fmt.Errorf("%v: %w", ln.Location, err)
		}

		if r == '\n' {
			in.flushToken(&ln)
			return ln, nil
		} else if unicode.IsSpace(r) || unicode.IsControl(r) {
			in.flushToken(&ln)
		} else {
			in.sb.WriteRune(r)
		}
	}
}

func (in *Input) flushToken(ln *Line) {
	if in.sb.Len() > 0 {
		ln.Tokens = append(ln.Tokens, in.sb.String())
		in.sb.Reset()
	}
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	if rr, ok := r.(io.RuneReader); ok {
		in.rr = rr
	} else {
		in.rr = bufio.NewReader(r)
	}
	in.name = nameOf(r)
	in.line = 0
	return true
}

// NamedReader attaches a name to r, used to locate scanned lines.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
