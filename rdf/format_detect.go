package rdf

import (
	"bufio"
	"bytes"
	"io"
)

const formatDetectionBufferSize = 512

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DetectFormat peeks at the start of r to tell JSON-LD from XML results.
// The returned reader replays the peeked bytes and must be used in place of r.
func DetectFormat(r io.Reader) (Format, io.Reader, bool) {
	br := bufio.NewReaderSize(r, formatDetectionBufferSize)
	sample, err := br.Peek(formatDetectionBufferSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull && len(sample) == 0 {
		return FormatAuto, br, false
	}
	format, ok := detectFormatFromSample(sample)
	return format, br, ok
}

func detectFormatFromSample(sample []byte) (Format, bool) {
	sample = bytes.TrimPrefix(sample, utf8BOM)
	sample = bytes.TrimLeft(sample, " \t\r\n")
	if len(sample) == 0 {
		return FormatAuto, false
	}
	switch sample[0] {
	case '{', '[':
		return FormatJSONLD, true
	case '<':
		return FormatXMLResults, true
	}
	return FormatAuto, false
}
