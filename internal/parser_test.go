package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{"words.txt", FileTypeTXT},
		{"/usr/share/dict/WORDS", FileTypeTXT},
		{"dict.tar.gz", FileTypeTARGZ},
		{"DICT.TGZ", FileTypeTARGZ},
		{"dict.tar.xz", FileTypeXZ},
		{"dict.gz", FileTypeGZ},
		{"notes.md", FileTypeMD},
		{"page.htm", FileTypeHTML},
		{"report.docx", FileTypeDOCX},
		{"lib.war", FileTypeJAR},
		{"noext", FileTypeUnknown},
		{"weird.xyz", FileTypeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFileType(tt.name))
		})
	}
}

func TestParseFileType(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", FileTypeAuto, false},
		{"auto", FileTypeAuto, false},
		{".GZ", FileTypeGZ, false},
		{"tar.gz", FileTypeTARGZ, false},
		{"2", FileTypeTXT, false},
		{"unknown", FileTypeUnknown, false},
		{"999", 0, true},
		{"exe", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFileType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileTypeName(t *testing.T) {
	assert.Equal(t, "tar.gz", FileTypeName(FileTypeTARGZ))
	assert.Equal(t, "txt", FileTypeName(FileTypeTXT))
	assert.Equal(t, "type-4242", FileTypeName(4242))
}

func TestRegistry(t *testing.T) {
	const testType = 9001
	t.Cleanup(func() { delete(parsers, testType) })

	called := ""
	p := ParserFunc(func(path string) ([]byte, error) {
		called = path
		return []byte("ok"), nil
	})

	require.NoError(t, RegisterParser(testType, p))
	err := RegisterParser(testType, p)
	assert.ErrorIs(t, err, ErrDuplicateParser)
	assert.Contains(t, RegisteredTypes(), testType)

	got, err := GetParser(testType)
	require.NoError(t, err)
	out, err := got.Parse("x")
	require.NoError(t, err)
	assert.Equal(t, "ok", string(out))
	assert.Equal(t, "x", called)

	assert.Panics(t, func() { MustRegisterParser(testType, p) })
}

func TestGetParser_FallsBackToRaw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.unknownext")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0o644))

	parser, err := GetParser(4242)
	require.NoError(t, err)
	assert.IsType(t, &RawFileParser{}, parser)

	out, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\n", string(out))

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
