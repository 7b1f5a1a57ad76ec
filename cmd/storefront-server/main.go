package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/storefront-server/internal/cart"
	"github.com/darkkaiser/storefront-server/internal/config"
	"github.com/darkkaiser/storefront-server/internal/pkg/version"
	"github.com/darkkaiser/storefront-server/internal/service"
	"github.com/darkkaiser/storefront-server/internal/service/api"
	catalogsvc "github.com/darkkaiser/storefront-server/internal/service/catalog"
	"github.com/darkkaiser/storefront-server/internal/storage"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/joho/godotenv"
)

// @title Storefront Server API
// @version 1.0
// @description 어학 교재 스토어의 상품 카탈로그 조회와 장바구니 관리를 위한 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 도서, 시험, 패키지 상품의 필터링과 정렬
// @description - 관련 상품 추천
// @description - 장바구니 ID별 상품 추가, 수량 변경, 삭제
// @description
// @description 장바구니 ID는 POST /api/v1/carts로 발급받거나, 클라이언트가 생성한 영문자/숫자/하이픈/밑줄 조합(최대 64자)을 사용할 수 있습니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

const (
	banner = `
  ____   _                       __                       _
 / ___| | |_   ___   _ __  ___  / _| _ __  ___   _ __   | |_
 \___ \ | __| / _ \ | '__|/ _ \| |_ | '__|/ _ \ | '_ \  | __|
  ___) || |_ | (_) || |  |  __/|  _|| |  | (_) || | | | | |_
 |____/  \__| \___/ |_|   \___||_|  |_|   \___/ |_| |_|  \__|
                                                            %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

	// envFile 환경 변수 파일. 존재하는 경우에만 읽으며 이미 설정된 환경 변수는 덮어쓰지 않습니다.
	envFile = ".env"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// 1. 환경 변수 파일과 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	if err := loadEnvFile(envFile); err != nil {
		return fmt.Errorf("환경 변수 파일 로드 실패: %w", err)
	}

	appConfig, err := loadConfig(args)
	if err != nil {
		return fmt.Errorf("환경설정 로드 실패: %w", err)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		return fmt.Errorf("로그 시스템 초기화 실패. 서버 구동을 중단합니다: %w", err)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	buildInfo := version.Get()
	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 3. 장바구니 저장소
	kv, err := storage.Open(serviceStopCtx, storage.Config{
		Driver: appConfig.Cart.Storage.Driver,
		Dir:    appConfig.Cart.Storage.Dir,
		Redis: storage.RedisConfig{
			URL:          appConfig.Cart.Storage.Redis.URL,
			ReadTimeout:  appConfig.Cart.Storage.Redis.ReadTimeout,
			WriteTimeout: appConfig.Cart.Storage.Redis.WriteTimeout,
			DialTimeout:  appConfig.Cart.Storage.Redis.DialTimeout,
		},
	})
	if err != nil {
		return fmt.Errorf("장바구니 저장소 초기화 실패: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("장바구니 저장소 종료 실패")
		}
	}()

	// 4. 서비스 생성
	carts := cart.NewRegistry(kv, appConfig.Cart.StorageKey)
	defer logCartChanges(carts)()
	catalogService := catalogsvc.NewService(appConfig)
	apiService := api.NewService(appConfig, catalogService, carts, buildInfo)

	serviceStopWG := &sync.WaitGroup{}

	// 카탈로그가 먼저 적재되어야 API가 상품을 조회할 수 있다.
	services := []service.Service{catalogService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			return fmt.Errorf("서비스 초기화 실패로 프로그램을 종료합니다: %w", err)
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC

	applog.WithComponent("main").Info("종료 신호 수신: 서비스를 종료합니다")
	cancel()
	serviceStopWG.Wait()

	if err := apiService.Err(); err != nil {
		return err
	}

	return nil
}

// logCartChanges 장바구니 변경 알림을 Debug 로그로 기록하는 구독자를 등록합니다.
func logCartChanges(carts *cart.Registry) (unsubscribe func()) {
	return carts.Subscribe(func(ev cart.Event) {
		applog.WithComponentAndFields("main", applog.Fields{
			"key": ev.Key,
		}).Debug("장바구니 변경 알림 수신")
	})
}

// loadConfig 첫 번째 실행 인자가 있으면 해당 파일을, 없으면 기본 설정 파일을 읽습니다.
func loadConfig(args []string) (*config.AppConfig, error) {
	if len(args) > 0 && args[0] != "" {
		return config.LoadWithFile(args[0])
	}
	return config.Load()
}

// loadEnvFile .env 파일의 값을 환경 변수로 등록합니다. 파일이 없으면 무시합니다.
func loadEnvFile(filename string) error {
	if err := godotenv.Load(filename); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
