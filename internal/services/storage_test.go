package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartFixture(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("presentation", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["presentation"][0]
}

func TestStorageServiceLifecycle(t *testing.T) {
	// Bind through the interface so every declared method stays covered
	var svc StorageService = NewStorageService(t.TempDir() + "/uploads")
	require.NoError(t, svc.EnsureUploadDir())

	file := multipartFixture(t, "pitch.pptx", []byte("deck bytes"))
	filename, filePath, err := svc.SaveFile(file)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "presentation_"))
	assert.True(t, strings.HasSuffix(filename, ".pptx"))
	assert.Equal(t, filePath, svc.GetFilePath(filename))

	saved, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, []byte("deck bytes"), saved)

	require.NoError(t, svc.DeleteFile(filename))
	_, err = os.Stat(filePath)
	assert.True(t, os.IsNotExist(err))
}

func TestStorageServiceRejectsUnsupportedExtension(t *testing.T) {
	var svc StorageService = NewStorageService(t.TempDir())
	require.NoError(t, svc.EnsureUploadDir())

	_, _, err := svc.SaveFile(multipartFixture(t, "resume.docx", []byte("nope")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file extension")
}
