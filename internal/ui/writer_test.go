package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriter_PrintfPrintln(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriterTo(&buf)

	_, err := w.Printf("%s: %d lines\n", "a.txt", 3)
	require.NoError(t, err)
	_, err = w.Println("done")
	require.NoError(t, err)
	_, err = w.Write([]byte("raw"))
	require.NoError(t, err)

	require.Equal(t, "a.txt: 3 lines\ndone\nraw", buf.String())
}
