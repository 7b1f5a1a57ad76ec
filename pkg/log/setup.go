package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 Setup() 결과를 보관하여 재호출 시 동일한 값을 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화합니다.
//
// 모든 출력은 hook을 통해 레벨별 파일(main/critical/verbose)과 콘솔로 분배되며,
// 반환된 Closer는 main 함수에서 defer로 반드시 해제해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	// 실제 포맷팅은 hook에서 한 번만 수행합니다.
	logrus.SetFormatter(&silentFormatter{})
	logrus.SetOutput(io.Discard)

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	rotation := rotationPolicy{
		dir:        dir,
		name:       opts.Name,
		maxAge:     opts.MaxAge,
		maxSizeMB:  orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
		maxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
	}

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}
	var closers []io.Closer

	mainWriter := rotation.writer("")
	h.mainWriter = mainWriter
	closers = append(closers, mainWriter)

	if opts.EnableCriticalLog {
		w := rotation.writer("critical")
		h.criticalWriter = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := rotation.writer("verbose")
		h.verboseWriter = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 프로세스가 종료되기 직전에도 버퍼에 남은 로그가 기록되도록 합니다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}

// rotationPolicy lumberjack 기반 로그 파일 로테이션 정책입니다.
type rotationPolicy struct {
	dir        string
	name       string
	maxAge     int
	maxSizeMB  int
	maxBackups int
}

// writer 접미사(suffix)에 해당하는 로그 파일 Writer를 생성합니다.
// 접미사가 비어 있으면 메인 로그 파일("{name}.log")을 생성합니다.
func (p rotationPolicy) writer(suffix string) *lumberjack.Logger {
	filename := fmt.Sprintf("%s.%s", p.name, fileExt)
	if suffix != "" {
		filename = fmt.Sprintf("%s.%s.%s", p.name, suffix, fileExt)
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(p.dir, filename),
		MaxSize:    p.maxSizeMB,
		MaxBackups: p.maxBackups,
		MaxAge:     p.maxAge,
		LocalTime:  true,
	}
}

func newTextFormatter(callerPathPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// silentFormatter 아무 것도 출력하지 않는 포맷터입니다.
// logrus는 io.Discard로 출력하더라도 포맷팅을 수행하므로 그 비용을 없애기 위해 사용합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}
