package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// trickleFile is a multipart.File whose Read delivers one byte at a time,
// the way a file spooled to disk may deliver its contents across several
// reads.
type trickleFile struct {
	*bytes.Reader
	trickle io.Reader
}

func newTrickleFile(data []byte) *trickleFile {
	br := bytes.NewReader(data)
	return &trickleFile{Reader: br, trickle: iotest.OneByteReader(br)}
}

func (f *trickleFile) Read(p []byte) (int, error) { return f.trickle.Read(p) }

func (f *trickleFile) Close() error { return nil }

func TestDetectMimeTypeReadsWholeFile(t *testing.T) {
	s := newTestService(t, &mockRepo{})

	data := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	file := newTrickleFile(data)
	fileHeader := &multipart.FileHeader{Filename: "cover.png", Size: int64(len(data))}

	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	require.NoError(t, err)
	assert.Equal(t, data, buffer)
	assert.True(t, mtype.Is("image/png"))
}
