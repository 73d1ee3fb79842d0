package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mictilt/qrstyle/surface"
)

func TestRun_PNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.png")

	err := newApp().Run([]string{"qrstyle",
		"-o", out,
		"--width", "210",
		"--point", "rhombic",
		"--eye", "bubble",
		"--color", "navy",
		"HELLO",
	})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 210, img.Bounds().Dx())
}

func TestRun_SVGFromExtension(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.svg")

	err := newApp().Run([]string{"qrstyle", "-o", out, "--encoder", "plan", "--margin", "2", "HELLO"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "<svg"))
}

func TestRun_ResolutionAndDataURL(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.txt")

	err := newApp().Run([]string{"qrstyle",
		"-o", out,
		"--format", "png",
		"--resolution", "64",
		"--data-url",
		"HELLO",
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "data:image/png;base64,"))
}

func TestRun_SVGResolution(t *testing.T) {
	out := filepath.Join(t.TempDir(), "code.svg")

	err := newApp().Run([]string{"qrstyle", "-o", out, "--width", "210", "--resolution", "600", "HELLO"})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `width="600"`)
	assert.Contains(t, string(data), `viewBox="0 0 210 210"`)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"--point", "star", "HELLO"},
		{"--eye", "star", "HELLO"},
		{"--level", "X", "HELLO"},
		{"--encoder", "zxing", "HELLO"},
		{"--charset", "koi8", "HELLO"},
		{"--format", "gif", "HELLO"},
		{"--color", "#12", "HELLO"},
		{"--qr-version", "1", strings.Repeat("x", 100)},
	} {
		argv := append([]string{"qrstyle", "-o", filepath.Join(dir, "out.png")}, args...)
		assert.Error(t, newApp().Run(argv), strings.Join(args, " "))
	}
}

func TestOutputFormat(t *testing.T) {
	for _, tc := range []struct {
		format, output string
		want           surface.Format
	}{
		{format: "", output: "", want: surface.PNG_FORMAT},
		{format: "", output: "-", want: surface.PNG_FORMAT},
		{format: "", output: "a.jpg", want: surface.JPEG_FORMAT},
		{format: "", output: "a.SVG", want: surface.SVG_FORMAT},
		{format: "png", output: "a.svg", want: surface.PNG_FORMAT},
	} {
		got, err := outputFormat(tc.format, tc.output)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%+v", tc)
	}
}

func TestCharsetDecoder(t *testing.T) {
	dec, err := charsetDecoder("utf-8")
	require.NoError(t, err)
	assert.Nil(t, dec)

	dec, err = charsetDecoder("latin1")
	require.NoError(t, err)
	s, err := dec.String("caf\xe9")
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	dec, err = charsetDecoder("Shift_JIS")
	require.NoError(t, err)
	s, err = dec.String("\x82\xa0")
	require.NoError(t, err)
	assert.Equal(t, "あ", s)

	_, err = charsetDecoder("koi8")
	assert.Error(t, err)
}
