package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetadata(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Metadata
	}{
		{
			name:     "simple pairs",
			content:  "Name=test\nButtonWidth=10\nButtonHeight=12\n",
			expected: Metadata{"Name": "test", "ButtonWidth": "10", "ButtonHeight": "12"},
		},
		{
			name:     "whitespace is trimmed",
			content:  "  Name =  Windows 11  \n\tGroupSpacing\t=\t4\n",
			expected: Metadata{"Name": "Windows 11", "GroupSpacing": "4"},
		},
		{
			name:     "split on first equals only",
			content:  "Formula=a=b=c\n",
			expected: Metadata{"Formula": "a=b=c"},
		},
		{
			name:     "lines without equals are ignored",
			content:  "# comment\n\nName=test\njust text\n",
			expected: Metadata{"Name": "test"},
		},
		{
			name:     "last duplicate wins",
			content:  "ButtonWidth=10\nButtonWidth=20\nButtonWidth=30\n",
			expected: Metadata{"ButtonWidth": "30"},
		},
		{
			name:     "unknown keys are kept",
			content:  "Author=someone\n",
			expected: Metadata{"Author": "someone"},
		},
		{
			name:     "keys are case sensitive",
			content:  "name=lower\nName=upper\n",
			expected: Metadata{"name": "lower", "Name": "upper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := Parse(strings.NewReader(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, md)
		})
	}
}

func TestParse_LongLine(t *testing.T) {
	note := strings.Repeat("x", 70*1024)
	dir := writeMetadata(t, "Name=long\nNote="+note+"\nButtonWidth=46\r\n")

	md, err := Read(dir)
	require.NoError(t, err)
	assert.Equal(t, note, md["Note"])
	assert.Equal(t, "long", md.Name())
	assert.Equal(t, "46", md.Dimension(KeyButtonWidth))
}

func TestRead_Idempotent(t *testing.T) {
	dir := writeMetadata(t, "Name=test\nButtonWidth=46\nButtonHeight=32\nGroupPaddingTop=2\n")

	first, err := Read(dir)
	require.NoError(t, err)
	second, err := Read(dir)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRead_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := Read(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), filepath.Join(dir, FileName))
}

func TestRead_DirectoryInsteadOfFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0755))

	_, err := Read(dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccessors(t *testing.T) {
	md := Metadata{"Name": "win", "ButtonWidth": "46", "ButtonHeight": "abc"}

	assert.Equal(t, "win", md.Name())
	assert.Equal(t, DefaultName, Metadata{}.Name())

	assert.Equal(t, "46", md.Dimension(KeyButtonWidth))
	assert.Equal(t, "0", md.Dimension(KeyGroupSpacing))

	w, err := md.Int(KeyButtonWidth)
	require.NoError(t, err)
	assert.Equal(t, 46, w)

	spacing, err := md.Int(KeyGroupSpacing)
	require.NoError(t, err)
	assert.Equal(t, 0, spacing)

	_, err = md.Int(KeyButtonHeight)
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyButtonHeight)
}
