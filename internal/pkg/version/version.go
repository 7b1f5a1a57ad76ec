// Package version 링커 플래그(-ldflags)로 주입된 빌드 정보와 실행 환경 정보를 제공합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/storefront-server/internal/pkg/version.appVersion=v1.2.0"
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync/atomic"
)

const unknown = "unknown"

// 빌드 시점에 -ldflags -X로 주입되는 값입니다. 직접 읽지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	gitTreeState  = "" // clean 또는 dirty
	buildDate     = ""
	buildNumber   = ""
)

var current atomic.Pointer[Info]

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

func init() {
	Set(enrich(Info{
		Version:     strings.TrimSpace(appVersion),
		Commit:      strings.TrimSpace(gitCommitHash),
		BuildDate:   strings.TrimSpace(buildDate),
		BuildNumber: strings.TrimSpace(buildNumber),
		DirtyBuild:  strings.EqualFold(strings.TrimSpace(gitTreeState), "dirty"),
	}))
}

// Info 애플리케이션 빌드 정보입니다. /version 응답과 시작 로그에 사용됩니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	DirtyBuild  bool   `json:"dirty_build"`
}

// Get 현재 빌드 정보를 반환합니다.
func Get() Info {
	if bi := current.Load(); bi != nil {
		return *bi
	}
	return Info{Version: unknown, Commit: unknown, BuildDate: unknown}
}

// Set 빌드 정보를 교체합니다. 애플리케이션 시작 시 한 번 호출합니다.
func Set(bi Info) {
	current.Store(&bi)
}

// Version 애플리케이션 버전 문자열을 반환합니다.
func Version() string {
	return Get().Version
}

// enrich 비어 있는 필드를 실행 환경과 모듈 VCS 메타데이터로 채웁니다.
// -ldflags 없이 go run으로 실행한 개발 환경에서도 커밋 정보를 얻기 위해 사용합니다.
func enrich(bi Info) Info {
	bi.GoVersion = orDefault(bi.GoVersion, runtime.Version())
	bi.OS = orDefault(bi.OS, runtime.GOOS)
	bi.Arch = orDefault(bi.Arch, runtime.GOARCH)

	if info, ok := readBuildInfo(); ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				bi.Commit = orDefault(bi.Commit, s.Value)
			case "vcs.time":
				bi.BuildDate = orDefault(bi.BuildDate, s.Value)
			case "vcs.modified":
				bi.DirtyBuild = bi.DirtyBuild || s.Value == "true"
			}
		}
		if info.Main.Version != "(devel)" {
			bi.Version = orDefault(bi.Version, info.Main.Version)
		}
	}

	bi.Version = orDefault(bi.Version, unknown)
	bi.Commit = orDefault(bi.Commit, unknown)

	return bi
}

// ToMap 구조적 로깅용 맵으로 변환합니다.
func (i Info) ToMap() map[string]any {
	return map[string]any{
		"version":      i.Version,
		"commit":       i.Commit,
		"build_date":   i.BuildDate,
		"build_number": i.BuildNumber,
		"go_version":   i.GoVersion,
		"os":           i.OS,
		"arch":         i.Arch,
		"dirty_build":  i.DirtyBuild,
	}
}

// String "v1.2.0+dirty (commit: f25b8bf, build: 12, ...)" 형식의 요약을 반환합니다.
func (i Info) String() string {
	v := orDefault(i.Version, unknown)
	if i.DirtyBuild {
		v += "+dirty"
	}

	var details []string
	if i.Commit != "" && i.Commit != unknown {
		details = append(details, "commit: "+i.Commit[:min(len(i.Commit), 7)])
	}
	for _, d := range []struct{ label, value string }{
		{"build", i.BuildNumber},
		{"date", i.BuildDate},
		{"go_version", i.GoVersion},
		{"os", i.OS},
		{"arch", i.Arch},
	} {
		if d.value != "" && d.value != unknown {
			details = append(details, fmt.Sprintf("%s: %s", d.label, d.value))
		}
	}

	if len(details) == 0 {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, strings.Join(details, ", "))
}

func orDefault(v, def string) string {
	if v == "" || v == "none" {
		return def
	}
	return v
}
