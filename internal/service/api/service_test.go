package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/storefront-server/internal/cart"
	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/config"
	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/system"
	"github.com/darkkaiser/storefront-server/internal/storage"
	"github.com/darkkaiser/storefront-server/internal/testutil"
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

type fakeCatalogBackend struct {
	health error
}

func (f *fakeCatalogBackend) Catalog() (*catalog.Catalog, error) {
	return catalog.NewCatalog(nil, nil)
}

func (f *fakeCatalogBackend) Sorter() *catalog.Sorter {
	return catalog.NewSorter(catalog.DefaultLocale)
}

func (f *fakeCatalogBackend) Health() error {
	return f.health
}

func newTestService(t *testing.T, port int, backend CatalogBackend) *Service {
	t.Helper()

	cfg := config.Default()
	cfg.API.ListenPort = port

	return NewService(&cfg, backend, cart.NewRegistry(storage.NewMemoryStore(), ""), version.Info{Version: "1.2.3"})
}

func waitGroupDone(wg *sync.WaitGroup) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	return done
}

// =============================================================================
// Constructor
// =============================================================================

func TestNewService_Panics(t *testing.T) {
	cfg := config.Default()
	backend := &fakeCatalogBackend{}
	carts := cart.NewRegistry(storage.NewMemoryStore(), "")

	tests := []struct {
		name string
		want string
		fn   func()
	}{
		{"AppConfig 누락", constants.PanicMsgAppConfigRequired, func() { NewService(nil, backend, carts, version.Info{}) }},
		{"CatalogBackend 누락", constants.PanicMsgCatalogProviderRequired, func() { NewService(&cfg, nil, carts, version.Info{}) }},
		{"Registry 누락", constants.PanicMsgCartRegistryRequired, func() { NewService(&cfg, backend, nil, version.Info{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.PanicsWithValue(t, tt.want, tt.fn)
		})
	}
}

// =============================================================================
// Lifecycle
// =============================================================================

func TestService_Lifecycle(t *testing.T) {
	port := testutil.FreePort(t)
	s := newTestService(t, port, &fakeCatalogBackend{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	// 중복 시작은 무시되며 WaitGroup은 즉시 해제됩니다.
	wg.Add(1)
	require.NoError(t, s.Start(ctx, wg))

	testutil.WaitForServer(t, port, 3*time.Second)

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: time.Second}

	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%d/health", port))
	require.NoError(t, err)

	var health system.HealthResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&health)
	_ = resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, decodeErr)

	assert.Equal(t, constants.HealthStatusHealthy, health.Status)
	assert.Contains(t, health.Dependencies, constants.DependencyCatalog)

	cancel()

	select {
	case <-waitGroupDone(wg):
	case <-time.After(constants.ShutdownTimeout + time.Second):
		t.Fatal("서비스가 종료되지 않았습니다")
	}

	assert.NoError(t, s.Err())

	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	assert.False(t, s.running)
}

func TestService_PortInUse(t *testing.T) {
	l, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer l.Close()

	s := newTestService(t, l.Addr().(*net.TCPAddr).Port, &fakeCatalogBackend{health: apperrors.New(apperrors.Unavailable, "not loaded")})

	wg := &sync.WaitGroup{}
	wg.Add(1)
	require.NoError(t, s.Start(context.Background(), wg))

	select {
	case <-waitGroupDone(wg):
	case <-time.After(3 * time.Second):
		t.Fatal("포트 충돌 시 서비스가 종료되어야 합니다")
	}

	assert.True(t, apperrors.Is(s.Err(), apperrors.System))
}
