// Package catalog JSON 데이터셋에서 상품 카탈로그를 적재하고, 설정된 주기로 다시 적재하는 서비스를 제공합니다.
//
// 적재된 카탈로그는 불변 값으로 원자적으로 교체되므로, 조회 측은 락 없이 현재 카탈로그를 사용할 수 있습니다.
// 재적재에 실패하면 이전 카탈로그를 그대로 유지합니다.
package catalog

import (
	"context"
	"io/fs"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/darkkaiser/storefront-server/internal/catalog"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/pkg/observer"
	"github.com/darkkaiser/storefront-server/internal/service"
	"github.com/darkkaiser/storefront-server/pkg/cronx"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/robfig/cron/v3"
)

const component = "catalog.service"

// Service 카탈로그 적재/재적재 서비스입니다.
type Service struct {
	config config.CatalogConfig

	fsys       fs.FS
	normalizer *catalog.Normalizer
	sorter     *catalog.Sorter

	current    atomic.Pointer[catalog.Catalog]
	lastReport atomic.Pointer[catalog.LoadReport]

	// reloadMu Start 시점의 적재와 Cron 재적재가 겹치지 않도록 직렬화합니다.
	reloadMu sync.Mutex
	reloaded observer.Topic[*catalog.Catalog]

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

var _ service.Service = (*Service)(nil)

// Option Service 생성 옵션입니다.
type Option func(*Service)

// WithFS 데이터 디렉토리 대신 사용할 파일 시스템을 지정합니다.
func WithFS(fsys fs.FS) Option {
	return func(s *Service) {
		if fsys != nil {
			s.fsys = fsys
		}
	}
}

// NewService 새로운 Service를 생성합니다.
func NewService(appConfig *config.AppConfig, opts ...Option) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}

	s := &Service{
		config:     appConfig.Catalog,
		fsys:       os.DirFS(appConfig.Catalog.DataDir),
		normalizer: catalog.NewNormalizer(),
		sorter:     catalog.NewSorter(appConfig.Catalog.Locale),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start 카탈로그를 적재하고, 재적재 스케줄이 설정되어 있으면 Cron 엔진을 시작합니다.
// 첫 적재에 실패하면 서비스를 시작하지 않고 에러를 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: 카탈로그 서비스 초기화 프로세스를 시작합니다")

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("카탈로그 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	if _, err := s.Reload(); err != nil {
		serviceStopWG.Done()
		return NewErrInitialLoadFailed(err, s.config.DataDir)
	}

	if spec := strings.TrimSpace(s.config.ReloadSchedule); spec != "" {
		c := cron.New(
			cron.WithParser(cronx.StandardParser()),
			cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.WithChain(
				cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
				cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
			),
		)
		if _, err := c.AddFunc(spec, s.scheduledReload); err != nil {
			serviceStopWG.Done()
			return NewErrInvalidReloadSchedule(err, spec)
		}

		s.cron = c
		s.cron.Start()
	}

	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"data_dir":        s.config.DataDir,
		"reload_schedule": s.config.ReloadSchedule,
	}).Info("서비스 시작 완료: 카탈로그 서비스가 정상적으로 초기화되었습니다")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 재적재 스케줄을 중지합니다. 진행 중인 재적재가 있으면 끝날 때까지 기다립니다.
func (s *Service) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: 카탈로그 서비스 중지 시그널을 수신했습니다")

	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.cron = nil
	}

	s.running = false

	applog.WithComponent(component).Info("종료 완료: 카탈로그 서비스가 중지되었습니다")
}

// Reload 데이터셋을 다시 읽어 현재 카탈로그를 교체합니다.
// 실패하면 현재 카탈로그를 유지하고 에러를 반환합니다.
func (s *Service) Reload() (*catalog.LoadReport, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	loader := catalog.NewLoader(s.fsys,
		catalog.WithNormalizer(s.normalizer),
		catalog.WithSkipInvalidRecords(s.config.SkipInvalidRecords),
	)

	c, report, err := loader.Load()
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"data_dir": s.config.DataDir,
			"error":    err,
			"kept":     s.current.Load() != nil,
		}).Error("카탈로그 적재 실패: 이전 카탈로그를 유지합니다")

		return nil, err
	}

	s.current.Store(c)
	s.lastReport.Store(report)
	s.reloaded.Publish(c)

	return report, nil
}

func (s *Service) scheduledReload() {
	applog.WithComponent(component).Debug("예약된 카탈로그 재적재를 시작합니다")

	_, _ = s.Reload()
}

// Catalog 현재 카탈로그를 반환합니다.
func (s *Service) Catalog() (*catalog.Catalog, error) {
	c := s.current.Load()
	if c == nil {
		return nil, ErrCatalogNotLoaded
	}
	return c, nil
}

// LastReport 마지막으로 성공한 적재의 보고서를 반환합니다. 적재 전이면 nil입니다.
func (s *Service) LastReport() *catalog.LoadReport {
	return s.lastReport.Load()
}

// Sorter 설정된 로케일의 정렬 엔진을 반환합니다.
func (s *Service) Sorter() *catalog.Sorter {
	return s.sorter
}

// OnReload 카탈로그가 교체될 때마다 호출될 구독자를 등록합니다.
func (s *Service) OnReload(fn func(*catalog.Catalog)) (unsubscribe func()) {
	return s.reloaded.Subscribe(fn)
}

// Health 카탈로그 적재 여부를 확인합니다.
func (s *Service) Health() error {
	_, err := s.Catalog()
	return err
}
