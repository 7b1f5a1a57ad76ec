package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileStore(t *testing.T) {
	t.Run("디렉토리 자동 생성", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "carts")

		s, err := NewFileStore(dir)

		require.NoError(t, err)
		assert.DirExists(t, dir)
		assert.Equal(t, dir, s.Dir())
	})

	t.Run("파일을 디렉토리로 사용하면 실패", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file_as_dir")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

		s, err := NewFileStore(path)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "저장소 초기화 실패")
	})

	t.Run("오래된 임시 파일 정리", func(t *testing.T) {
		dir := t.TempDir()
		stale := filepath.Join(dir, "kv-stale.tmp")
		fresh := filepath.Join(dir, "kv-fresh.tmp")
		other := filepath.Join(dir, "notes.tmp")
		for _, p := range []string{stale, fresh, other} {
			require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		}
		old := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(stale, old, old))
		require.NoError(t, os.Chtimes(other, old, old))

		_, err := NewFileStore(dir)
		require.NoError(t, err)

		assert.NoFileExists(t, stale)
		assert.FileExists(t, fresh, "최근 임시 파일은 사용 중일 수 있으므로 남겨야 합니다")
		assert.FileExists(t, other, "패턴과 다른 파일은 건드리지 않아야 합니다")
	})
}

func TestFileStore_Set_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(context.Background(), "shoppingCart", []byte("[]")))

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	files, err := filepath.Glob(filepath.Join(dir, "kv-shopping-cart-*.json"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestFileStore_PathTraversalKeysStayInside(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	key := "../../etc/passwd"
	require.NoError(t, s.Set(context.Background(), key, []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "키에 포함된 경로 구분자는 디렉토리 밖으로 나가지 않아야 합니다")
}
