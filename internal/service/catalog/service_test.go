package catalog

import (
	"context"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/config"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// =============================================================================
// Test Helpers
// =============================================================================

func newTestConfig(schedule string) *config.AppConfig {
	cfg := config.Default()
	cfg.Catalog.DataDir = "testdata"
	cfg.Catalog.ReloadSchedule = schedule
	return &cfg
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		catalog.BooksFile: {Data: []byte(`[
			{"id": "b-1", "title": "Gold Experience", "price": 24.5, "level": "advanced", "editorialId": "pearson"},
			{"id": "b-2", "title": "Grammar in Use", "price": 18}
		]`)},
		catalog.PacksFile:      {Data: []byte(`[{"id": "p-1", "title": "Starter Pack", "price": 60, "booksIds": ["b-1", "b-2"]}]`)},
		catalog.EditorialsFile: {Data: []byte(`[{"id": "pearson", "name": "Pearson"}]`)},
	}
}

// =============================================================================
// Constructor
// =============================================================================

func TestNewService(t *testing.T) {
	t.Run("성공: 설정으로 서비스 생성", func(t *testing.T) {
		s := NewService(newTestConfig(""), WithFS(testFS()))

		require.NotNil(t, s)
		assert.NotNil(t, s.Sorter())
		assert.Nil(t, s.LastReport())
	})

	t.Run("실패: AppConfig가 nil이면 Panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "AppConfig는 필수입니다", func() {
			NewService(nil)
		})
	})
}

// =============================================================================
// Reload
// =============================================================================

func TestService_CatalogBeforeLoad(t *testing.T) {
	s := NewService(newTestConfig(""), WithFS(testFS()))

	c, err := s.Catalog()

	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrCatalogNotLoaded)
	assert.True(t, apperrors.Is(s.Health(), apperrors.Unavailable))
}

func TestService_Reload(t *testing.T) {
	fsys := testFS()
	s := NewService(newTestConfig(""), WithFS(fsys))

	var notified []int
	unsubscribe := s.OnReload(func(c *catalog.Catalog) { notified = append(notified, c.Len()) })
	defer unsubscribe()

	report, err := s.Reload()
	require.NoError(t, err)
	assert.Equal(t, 2, report.Books)
	assert.Equal(t, 1, report.Packs)

	c, err := s.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.NoError(t, s.Health())

	t.Run("데이터셋 변경 후 재적재하면 교체", func(t *testing.T) {
		fsys[catalog.ExamsFile] = &fstest.MapFile{Data: []byte(`{"id": "e-1", "title": "IELTS", "price": 35, "difficulty": "advanced"}`)}

		_, err := s.Reload()
		require.NoError(t, err)

		c, _ := s.Catalog()
		assert.Equal(t, 4, c.Len())
		assert.Equal(t, []int{3, 4}, notified)
	})

	t.Run("재적재 실패 시 이전 카탈로그 유지", func(t *testing.T) {
		before, _ := s.Catalog()
		fsys[catalog.BooksFile] = &fstest.MapFile{Data: []byte(`{"broken": `)}

		_, err := s.Reload()
		require.Error(t, err)

		after, err := s.Catalog()
		require.NoError(t, err)
		assert.Same(t, before, after)
		assert.Len(t, notified, 2)
	})
}

func TestService_Reload_StrictMode(t *testing.T) {
	fsys := testFS()
	fsys[catalog.BooksFile] = &fstest.MapFile{Data: []byte(`[{"id": "b-1", "title": "Sin precio"}]`)}

	cfg := newTestConfig("")
	cfg.Catalog.SkipInvalidRecords = false
	s := NewService(cfg, WithFS(fsys))

	_, err := s.Reload()

	assert.ErrorIs(t, err, catalog.ErrInvalidRecord)
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestService_Lifecycle(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
	}{
		{"재적재 스케줄 없음", ""},
		{"재적재 스케줄 사용", "0 */10 * * * *"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewService(newTestConfig(tt.schedule), WithFS(testFS()))

			ctx, cancel := context.WithCancel(context.Background())
			var wg sync.WaitGroup

			wg.Add(1)
			require.NoError(t, s.Start(ctx, &wg))

			c, err := s.Catalog()
			require.NoError(t, err)
			assert.Equal(t, 3, c.Len())

			// 중복 시작은 무시되며 WaitGroup 카운트를 스스로 정리합니다.
			wg.Add(1)
			require.NoError(t, s.Start(ctx, &wg))

			cancel()
			wg.Wait()

			assert.False(t, s.running)
			assert.Nil(t, s.cron)
		})
	}
}

func TestService_Start_Failures(t *testing.T) {
	t.Run("초기 적재 실패", func(t *testing.T) {
		fsys := testFS()
		fsys[catalog.PacksFile] = &fstest.MapFile{Data: []byte(`"not a dataset"`)}
		s := NewService(newTestConfig(""), WithFS(fsys))

		var wg sync.WaitGroup
		wg.Add(1)
		err := s.Start(context.Background(), &wg)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Unavailable))
		wg.Wait()
		assert.False(t, s.running)
	})

	t.Run("잘못된 재적재 스케줄", func(t *testing.T) {
		s := NewService(newTestConfig("every morning"), WithFS(testFS()))

		var wg sync.WaitGroup
		wg.Add(1)
		err := s.Start(context.Background(), &wg)

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		wg.Wait()
		assert.False(t, s.running)
	})
}

func TestService_Stop_NotRunning(t *testing.T) {
	s := NewService(newTestConfig(""), WithFS(testFS()))

	assert.NotPanics(t, s.Stop)
}
