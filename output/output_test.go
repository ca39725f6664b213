package output

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weaming/cvd-go/cvd"
	"github.com/weaming/cvd-go/processor"
)

func testBuffer(w, h int) *cvd.Buffer {
	b := cvd.NewBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.Set(x, y, [3]uint8{uint8(x * 20), uint8(y * 30), uint8(x + y)})
		}
	}
	return b
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"jpg": FormatJPEG, ".JPEG": FormatJPEG, "png": FormatPNG,
		".bmp": FormatBMP, "tif": FormatTIFF, "tiff": FormatTIFF, ".ppm": FormatPPM,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat(".gif")
	assert.Error(t, err)

	assert.Equal(t, ".jpg", FormatJPEG.Ext())
	assert.Equal(t, ".tiff", FormatTIFF.Ext())
	assert.Equal(t, ".png", FormatPNG.Ext())
}

func TestLosslessRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testBuffer(7, 5)
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		path := filepath.Join(dir, "out"+ext)
		require.NoError(t, Save(src, path, EncodeOptions{}))
		got, _, err := Open(path)
		require.NoError(t, err, ext)
		if diff := cmp.Diff(src, got); diff != "" {
			t.Errorf("%s round trip (-want +got):\n%s", ext, diff)
		}
	}
}

func TestJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jpg")
	src := testBuffer(16, 8)
	require.NoError(t, Save(src, path, EncodeOptions{Quality: 90}))

	got, format, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 16, got.Width)
	assert.Equal(t, 8, got.Height)
}

func TestPPM(t *testing.T) {
	img := testBuffer(2, 1).Image()

	var ascii bytes.Buffer
	require.NoError(t, Encode(&ascii, img, FormatPPM, EncodeOptions{PPMASCII: true}))
	assert.Equal(t, "P3\n2 1\n255\n0 0 0\n20 0 1\n", ascii.String())

	var bin bytes.Buffer
	require.NoError(t, Encode(&bin, img, FormatPPM, EncodeOptions{}))
	assert.Equal(t, append([]byte("P6\n2 1\n255\n"), 0, 0, 0, 20, 0, 1), bin.Bytes())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := Open(filepath.Join(dir, "missing.jpg"))
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	corrupt := filepath.Join(dir, "corrupt.jpg")
	require.NoError(t, os.WriteFile(corrupt, []byte("not an image"), 0o644))
	_, _, err = Open(corrupt)
	require.ErrorAs(t, err, &de)
	assert.Equal(t, corrupt, de.Path)
}

func TestSaveErrors(t *testing.T) {
	dir := t.TempDir()
	var ee *EncodeError

	err := Save(testBuffer(1, 1), filepath.Join(dir, "no", "such", "dir.png"), EncodeOptions{})
	require.ErrorAs(t, err, &ee)

	err = Save(testBuffer(1, 1), filepath.Join(dir, "out.xyz"), EncodeOptions{})
	require.ErrorAs(t, err, &ee)

	bad := &cvd.Buffer{Width: 1, Height: 1, Channels: 1, Pix: []uint8{0}}
	err = Save(bad, filepath.Join(dir, "bad.png"), EncodeOptions{})
	require.ErrorAs(t, err, &ee)
	assert.ErrorIs(t, err, cvd.ErrInvalidShape)
}

func runAll(t *testing.T, src *cvd.Buffer) []processor.Result {
	t.Helper()
	results, err := processor.Run(context.Background(), src, processor.ProcessOptions{})
	require.NoError(t, err)
	return results
}

func TestExportAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	results := runAll(t, testBuffer(6, 4))

	paths, err := ExportAll(results, dir, FormatPNG, EncodeOptions{}, cvd.NewLoggerTo(&bytes.Buffer{}))
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{
		"protanopia_simulation.png",
		"optimized_protanopia.png",
		"deuteranopia_simulation.png",
		"optimized_deuteranopia.png",
		"tritanopia_simulation.png",
		"optimized_tritanopia.png",
	}, names)

	got, _, err := Open(paths[1])
	require.NoError(t, err)
	assert.Equal(t, results[1].Image, got)
}

func TestExportAllSkipsFailed(t *testing.T) {
	dir := t.TempDir()
	results := runAll(t, testBuffer(3, 3))
	results[0].Err = errors.New("boom")
	results[0].Image = nil

	paths, err := ExportAll(results, dir, FormatBMP, EncodeOptions{}, cvd.NewLoggerTo(&bytes.Buffer{}))
	require.NoError(t, err)
	assert.Len(t, paths, 5)
	_, statErr := os.Stat(filepath.Join(dir, "protanopia_simulation.bmp"))
	assert.True(t, errors.Is(statErr, fs.ErrNotExist))
}

func TestContactSheet(t *testing.T) {
	results := runAll(t, testBuffer(40, 20))

	sheet, err := ContactSheet(results, 100)
	require.NoError(t, err)
	slotW := 100 + 2*sheetPadding
	slotH := 50 + labelHeight + 2*sheetPadding
	assert.Equal(t, image.Rect(0, 0, 2*slotW, 3*slotH), sheet.Bounds())

	// 边距保持白色，标签区域有黑色文字
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, sheet.RGBAAt(0, 0))
	dark := false
	for y := sheetPadding; y < sheetPadding+labelHeight && !dark; y++ {
		for x := sheetPadding; x < sheetPadding+100; x++ {
			if sheet.RGBAAt(x, y).R < 128 {
				dark = true
				break
			}
		}
	}
	assert.True(t, dark, "label not drawn")

	_, err = ContactSheet(nil, 100)
	assert.Error(t, err)
}

func TestExportSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, ExportSheet(runAll(t, testBuffer(8, 8)), path, 32, EncodeOptions{}))
	got, _, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, 2*(32+2*sheetPadding), got.Width)
}

func TestJPEGQualityClamped(t *testing.T) {
	img := testBuffer(16, 16).Image()
	var over, capped bytes.Buffer
	require.NoError(t, Encode(&over, img, FormatJPEG, EncodeOptions{Quality: 150}))
	require.NoError(t, Encode(&capped, img, FormatJPEG, EncodeOptions{Quality: 100}))
	assert.Equal(t, capped.Bytes(), over.Bytes())

	var zero, def bytes.Buffer
	require.NoError(t, Encode(&zero, img, FormatJPEG, EncodeOptions{}))
	require.NoError(t, Encode(&def, img, FormatJPEG, EncodeOptions{Quality: DefaultJPEGQuality}))
	assert.Equal(t, def.Bytes(), zero.Bytes())
}
