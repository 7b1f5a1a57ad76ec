package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/darkkaiser/storefront-server/internal/cart"
	"github.com/darkkaiser/storefront-server/internal/config"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/storage"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// 메타데이터 및 상수 검증
// =============================================================================

func TestAppMetadata(t *testing.T) {
	assert.Equal(t, "storefront-server", config.AppName)
	assert.Equal(t, "storefront-server.json", config.DefaultFilename)
	assert.NotEmpty(t, version.Version())
}

// =============================================================================
// 환경설정 로드
// =============================================================================

func TestLoadConfig(t *testing.T) {
	t.Run("인자가 없으면 기본 설정 파일이 없어도 기본값으로 로드", func(t *testing.T) {
		t.Chdir(t.TempDir())

		cfg, err := loadConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, config.Default().API.ListenPort, cfg.API.ListenPort)
	})

	t.Run("인자로 지정한 설정 파일 로드", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"api": {"listen_port": 9091}, "cart": {"storage": {"driver": "memory"}}}`), 0o600))

		cfg, err := loadConfig([]string{path})

		require.NoError(t, err)
		assert.Equal(t, 9091, cfg.API.ListenPort)
		assert.Equal(t, "memory", cfg.Cart.Storage.Driver)
	})

	t.Run("인자로 지정한 설정 파일이 없으면 실패", func(t *testing.T) {
		_, err := loadConfig([]string{filepath.Join(t.TempDir(), "missing.json")})

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("파일이 없으면 무시", func(t *testing.T) {
		assert.NoError(t, loadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("환경 변수 등록 후 설정에 반영", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv("STOREFRONT_API__LISTEN_PORT", "")
		require.NoError(t, os.Unsetenv("STOREFRONT_API__LISTEN_PORT"))

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STOREFRONT_API__LISTEN_PORT=7070\n"), 0o600))

		require.NoError(t, loadEnvFile(".env"))
		t.Cleanup(func() { _ = os.Unsetenv("STOREFRONT_API__LISTEN_PORT") })

		cfg, err := loadConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, 7070, cfg.API.ListenPort)
	})
}

// =============================================================================
// 장바구니 변경 알림
// =============================================================================

func TestLogCartChanges(t *testing.T) {
	prev := applog.StandardLogger().GetLevel()
	t.Cleanup(func() { applog.StandardLogger().SetLevel(prev) })
	applog.SetDebugMode(true)

	hook := test.NewGlobal()

	carts := cart.NewRegistry(storage.NewMemoryStore(), "shoppingCart")
	unsubscribe := logCartChanges(carts)

	store, err := carts.Store("cart-1")
	require.NoError(t, err)

	store.Publish()

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, applog.DebugLevel, entry.Level)
	assert.Equal(t, "장바구니 변경 알림 수신", entry.Message)
	assert.Equal(t, "main", entry.Data["component"])
	assert.Equal(t, "shoppingCart:cart-1", entry.Data["key"])

	unsubscribe()
	store.Publish()

	assert.Len(t, hook.AllEntries(), 1, "구독 해제 후에는 기록하지 않아야 합니다")
}
