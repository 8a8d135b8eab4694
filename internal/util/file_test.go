package util

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func createFileWithPermissions(t *testing.T, perm os.FileMode, gid int) string {
	if os.Geteuid() != 0 {
		t.Skip("changing file ownership requires root")
	}
	filePath := filepath.Join(t.TempDir(), "testfile")

	file, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, perm)
	require.NoError(t, err)
	defer file.Close()
	require.NoError(t, os.Chown(filePath, 0, gid))
	require.NoError(t, os.Chmod(filePath, perm))
	return filePath
}

func TestFileHasPermissionsUserIsRoot(t *testing.T) {
	// GIVEN
	filePath := createFileWithPermissions(t, 0o700, 1000)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.True(t, result)
	assert.NoError(t, err)
}

func TestFileHasPermissionsGroupIsRootAndHasWrite(t *testing.T) {
	// GIVEN
	filePath := createFileWithPermissions(t, 0o770, 0)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.True(t, result)
	assert.NoError(t, err)
}

func TestFileHasPermissionsGroupOtherThanRootHasWritePermission(t *testing.T) {
	// GIVEN
	filePath := createFileWithPermissions(t, 0o720, 1000)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.False(t, result)
	assert.EqualError(t, err, "group is not root but has write permission")
}

func TestFileHasPermissionsOtherHasWritePermission(t *testing.T) {
	// GIVEN
	filePath := createFileWithPermissions(t, 0o702, 1000)

	// WHEN
	result, err := CheckFilePermissionsForExecution(filePath)

	// THEN
	assert.False(t, result)
	assert.EqualError(t, err, "others have write permission")
}

func TestWriteAndReadInt(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "limit")

	// WHEN
	err := WriteIntToFileAtomic(41, filePath)
	require.NoError(t, err)
	value, err := ReadIntFromFile(filePath)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 41, value)
}

func TestReadIntFromFile_TrimsWhitespace(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "players")
	require.NoError(t, os.WriteFile(filePath, []byte(" 12\n"), 0644))

	// WHEN
	value, err := ReadIntFromFile(filePath)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, 12, value)
}

func TestReadIntFromFile_Empty(t *testing.T) {
	// GIVEN
	filePath := filepath.Join(t.TempDir(), "players")
	require.NoError(t, os.WriteFile(filePath, []byte(""), 0644))

	// WHEN
	_, err := ReadIntFromFile(filePath)

	// THEN
	assert.Error(t, err)
}

func TestReadIntFromFile_Missing(t *testing.T) {
	// WHEN
	_, err := ReadIntFromFile(filepath.Join(t.TempDir(), "missing"))

	// THEN
	assert.ErrorIs(t, err, os.ErrNotExist)
}
