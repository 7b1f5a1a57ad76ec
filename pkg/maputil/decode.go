// Package maputil 동적으로 파싱된 맵 데이터를 구조체로 변환하는 기능을 제공합니다.
package maputil

import (
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode 맵(또는 any) 형태의 입력을 타입 T의 구조체로 디코딩합니다.
//
// 기본 동작:
//   - 구조체의 `json` 태그를 기준으로 필드를 매핑합니다.
//   - "12.5" -> 12.5 와 같은 유연한 타입 변환(WeaklyTypedInput)을 허용합니다.
//   - 정의되지 않은 키는 무시합니다. (WithErrorUnused로 변경 가능)
//   - 문자열 값의 앞뒤 공백을 제거하고, 쉼표로 구분된 문자열은 슬라이스로 분리합니다.
//
//	raw, err := maputil.Decode[rawBook](record, maputil.WithMetadata(&md))
func Decode[T any](input any, opts ...Option) (*T, error) {
	output := new(T)
	if err := DecodeTo(input, output, opts...); err != nil {
		return nil, err
	}

	return output, nil
}

// DecodeTo 입력 데이터를 output이 가리키는 구조체에 병합하여 디코딩합니다.
// output에 미리 채워진 값은 입력에 해당 키가 없을 때 그대로 유지됩니다.
func DecodeTo[T any](input any, output *T, opts ...Option) error {
	if output == nil {
		return errors.New("디코딩 결과를 저장할 output 포인터가 nil입니다")
	}

	cfg := &decodingConfig{
		tagName:          "json",
		weaklyTypedInput: true,
		trimSpace:        true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           output,
		TagName:          cfg.tagName,
		WeaklyTypedInput: cfg.weaklyTypedInput,
		ErrorUnused:      cfg.errorUnused,
		Squash:           true,
		Metadata:         cfg.metadata,
		DecodeHook:       cfg.buildDecodeHook(),
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("입력 데이터를 %T(으)로 디코딩하는 데 실패했습니다: %w", output, err)
	}

	return nil
}

type decodingConfig struct {
	tagName          string
	weaklyTypedInput bool
	errorUnused      bool
	trimSpace        bool

	metadata   *mapstructure.Metadata
	extraHooks []mapstructure.DecodeHookFunc
}

// buildDecodeHook 사용자 정의 훅을 기본 훅보다 먼저 실행하는 훅 체인을 구성합니다.
func (c *decodingConfig) buildDecodeHook() mapstructure.DecodeHookFunc {
	hooks := make([]mapstructure.DecodeHookFunc, 0, len(c.extraHooks)+3)
	hooks = append(hooks, c.extraHooks...)

	if c.trimSpace {
		hooks = append(hooks, trimStringHookFunc())
	}
	hooks = append(hooks,
		mapstructure.TextUnmarshallerHookFunc(),
		stringToSliceHookFunc(),
	)

	return mapstructure.ComposeDecodeHookFunc(hooks...)
}

// Option 디코딩 동작을 조정하는 함수형 옵션입니다.
type Option func(*decodingConfig)

// WithTagName 필드 매핑에 사용할 구조체 태그 이름을 지정합니다. (기본값: "json")
func WithTagName(tagName string) Option {
	return func(c *decodingConfig) {
		c.tagName = tagName
	}
}

// WithWeaklyTypedInput 유연한 타입 변환 허용 여부를 지정합니다. (기본값: true)
func WithWeaklyTypedInput(enable bool) Option {
	return func(c *decodingConfig) {
		c.weaklyTypedInput = enable
	}
}

// WithErrorUnused 구조체에 없는 키가 입력에 있으면 에러를 반환하도록 합니다. (기본값: false)
func WithErrorUnused(enable bool) Option {
	return func(c *decodingConfig) {
		c.errorUnused = enable
	}
}

// WithTrimSpace 문자열 값의 앞뒤 공백 제거 여부를 지정합니다. (기본값: true)
func WithTrimSpace(enable bool) Option {
	return func(c *decodingConfig) {
		c.trimSpace = enable
	}
}

// WithDecodeHook 기본 훅보다 먼저 실행될 사용자 정의 훅을 추가합니다.
func WithDecodeHook(hooks ...mapstructure.DecodeHookFunc) Option {
	return func(c *decodingConfig) {
		c.extraHooks = append(c.extraHooks, hooks...)
	}
}

// WithMetadata 디코딩에 사용된 키와 사용되지 않은 키 목록을 md에 수집합니다.
func WithMetadata(md *mapstructure.Metadata) Option {
	return func(c *decodingConfig) {
		c.metadata = md
	}
}
