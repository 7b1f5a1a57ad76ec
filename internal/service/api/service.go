// Package api 상품 조회와 장바구니 REST API를 제공하는 HTTP 서비스입니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/storefront-server/docs"
	"github.com/darkkaiser/storefront-server/internal/cart"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/storefront-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/storefront-server/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// CatalogBackend API가 사용하는 카탈로그 제공자입니다. 헬스체크 대상이기도 합니다.
type CatalogBackend interface {
	v1handler.CatalogProvider
	system.HealthChecker
}

// Service API 서버의 생명주기를 관리합니다.
//
// Start()로 시작하면 별도 고루틴에서 HTTP 서버를 실행하고,
// context가 취소되면 최대 5초간 Graceful Shutdown을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	catalogs CatalogBackend
	carts    *cart.Registry

	buildInfo version.Info

	// listenAddr 비어 있으면 설정의 포트를 사용합니다.
	listenAddr string

	// serverErr 예기치 않게 종료된 HTTP 서버의 에러입니다.
	serverErr error

	running   bool
	runningMu sync.Mutex
}

var _ service.Service = (*Service)(nil)

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, catalogs CatalogBackend, carts *cart.Registry, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalogs == nil {
		panic(constants.PanicMsgCatalogProviderRequired)
	}
	if carts == nil {
		panic(constants.PanicMsgCartRegistryRequired)
	}

	return &Service{
		appConfig:  appConfig,
		catalogs:   catalogs,
		carts:      carts,
		buildInfo:  buildInfo,
		listenAddr: fmt.Sprintf(":%d", appConfig.API.ListenPort),
	}
}

// Start API 서비스를 시작합니다. 즉시 반환되며 서버는 고루틴에서 실행됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true
	s.serverErr = nil

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 핸들러와 미들웨어 체인, 라우트를 구성한 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.NewHandler(map[string]system.HealthChecker{
		constants.DependencyCatalog: s.catalogs,
	}, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.catalogs, s.carts, s.appConfig.Recommendation.MaxCount)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		AllowOrigins:       s.appConfig.API.CORS.AllowOrigins,
		RequestTimeout:     s.appConfig.API.RequestTimeout,
		RateLimitPerSecond: s.appConfig.API.RateLimit.PerSecond,
		RateLimitBurst:     s.appConfig.API.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// startHTTPServer 서버가 종료될 때까지 블로킹되며, 종료되면 done을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"addr": s.listenAddr,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	err := e.Start(s.listenAddr)
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	s.runningMu.Lock()
	s.serverErr = NewErrHTTPServerFailed(err, s.appConfig.API.ListenPort)
	s.runningMu.Unlock()

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"addr":  s.listenAddr,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버 조기 종료를 기다린 뒤 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료되었으므로 Shutdown 없이 상태만 정리합니다.
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// Err HTTP 서버가 예기치 않게 종료된 경우 그 원인을 반환합니다.
func (s *Service) Err() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	return s.serverErr
}
