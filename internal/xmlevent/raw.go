package xmlevent

import (
	"bytes"
	"io"
)

// maxRefName bounds how far a split entity reference is carried between reads.
const maxRefName = 256

var predefined = map[string]bool{"lt": true, "gt": true, "amp": true, "apos": true, "quot": true}

// rawReader sits between the input and the decoder. Every chunk is scanned for
// &name; references before the decoder sees it, and each name is mapped to its
// own literal so the decoder passes it through unexpanded. The bytes handed to
// the decoder are also kept, from the start of the current token on, so a text
// event can report its source form.
type rawReader struct {
	r    io.Reader
	refs map[string]string

	// tail holds an unterminated reference from the end of the previous chunk.
	tail []byte

	window []byte
	base   int64 // input offset of window[0]
}

func newRawReader(r io.Reader, refs map[string]string) *rawReader {
	return &rawReader{r: r, refs: refs}
}

func (rr *rawReader) Read(p []byte) (int, error) {
	n, err := rr.r.Read(p)
	if n > 0 {
		rr.window = append(rr.window, p[:n]...)
		rr.scan(p[:n])
	}
	return n, err
}

// scan registers the references found in chunk.
func (rr *rawReader) scan(chunk []byte) {
	data := chunk
	if len(rr.tail) > 0 {
		data = append(rr.tail, chunk...)
		rr.tail = nil
	}

	for {
		amp := bytes.IndexByte(data, '&')
		if amp < 0 {
			return
		}
		data = data[amp+1:]
		end := bytes.IndexAny(data, ";&<>\"' \t\r\n")
		if end < 0 {
			if len(data) < maxRefName {
				rr.tail = append([]byte{'&'}, data...)
			}
			return
		}
		if data[end] != ';' || end == 0 || data[0] == '#' {
			continue
		}
		name := string(data[:end])
		if !predefined[name] {
			rr.refs[name] = "&" + name + ";"
		}
		data = data[end+1:]
	}
}

// discardBefore drops kept bytes that precede offset.
func (rr *rawReader) discardBefore(offset int64) {
	drop := offset - rr.base
	if drop <= 0 {
		return
	}
	if drop > int64(len(rr.window)) {
		drop = int64(len(rr.window))
	}
	rr.window = rr.window[:copy(rr.window, rr.window[drop:])]
	rr.base += drop
}

// slice returns the kept bytes between two input offsets.
func (rr *rawReader) slice(from, to int64) []byte {
	lo, hi := from-rr.base, to-rr.base
	if lo < 0 || hi > int64(len(rr.window)) || lo > hi {
		return nil
	}
	return rr.window[lo:hi]
}
