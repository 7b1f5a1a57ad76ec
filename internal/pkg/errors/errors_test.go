package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

// =============================================================================
// 생성 및 래핑
// =============================================================================

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
		want    string
	}{
		{"InvalidInput 에러", InvalidInput, "필수 필드 누락", "[InvalidInput] 필수 필드 누락"},
		{"NotFound 에러", NotFound, "상품 없음", "[NotFound] 상품 없음"},
		{"빈 메시지", Internal, "", "[Internal] "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var appErr *AppError
			require.True(t, As(err, &appErr))
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.NotEmpty(t, appErr.Stack())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "필드 '%s' 누락 (%d번째 레코드)", "price", 3)
	assert.Equal(t, "[InvalidInput] 필드 'price' 누락 (3번째 레코드)", err.Error())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("nil 에러는 nil을 반환한다", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, Wrap(nil, System, "무시"))
		assert.Nil(t, Wrapf(nil, System, "무시 %d", 1))
	})

	t.Run("원인 에러가 메시지와 체인에 포함된다", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errStd, System, "저장소 조회 실패")
		assert.Equal(t, "[System] 저장소 조회 실패: standard error", err.Error())
		assert.True(t, errors.Is(err, errStd))
		assert.Equal(t, errStd, RootCause(err))
	})

	t.Run("Wrapf는 포맷 문자열을 적용한다", func(t *testing.T) {
		t.Parallel()

		err := Wrapf(errStd, ParsingFailed, "%s 파싱 실패", "books.json")
		assert.Equal(t, "[ParsingFailed] books.json 파싱 실패: standard error", err.Error())
	})
}

// =============================================================================
// 체인 탐색
// =============================================================================

func TestIs(t *testing.T) {
	t.Parallel()

	base := New(NotFound, "키 없음")
	wrapped := Wrap(base, Internal, "장바구니 조회 실패")
	external := fmt.Errorf("context: %w", wrapped)

	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"직접 일치", base, NotFound, true},
		{"래핑된 체인 내부 일치", wrapped, NotFound, true},
		{"외곽 타입 일치", wrapped, Internal, true},
		{"fmt.Errorf 경유 일치", external, NotFound, true},
		{"불일치", wrapped, InvalidInput, false},
		{"표준 에러", errStd, NotFound, false},
		{"nil 에러", nil, NotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Is(tt.err, tt.errType))
		})
	}
}

func TestUnderlyingType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Equal(t, Unknown, UnderlyingType(errStd))
	assert.Equal(t, NotFound, UnderlyingType(Wrap(New(NotFound, "상품 없음"), Internal, "추천 실패")))
	assert.Equal(t, NotFound, UnderlyingType(Wrap(errStd, NotFound, "키 없음")))
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	assert.Nil(t, RootCause(nil))

	root := New(InvalidInput, "root")
	err := Wrap(Wrap(root, Internal, "mid"), System, "top")
	assert.Same(t, root, RootCause(err))
}

// =============================================================================
// 포맷팅
// =============================================================================

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(New(NotFound, "inner"), Internal, "outer")

	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "[Internal] outer")
	assert.Contains(t, detailed, "Caused by:")
	assert.Contains(t, detailed, "[NotFound] inner")
	assert.Contains(t, detailed, "Stack trace:")
	assert.Contains(t, detailed, "errors_test.go")
}

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "InvalidInput", InvalidInput.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}

func TestCaptureStack(t *testing.T) {
	t.Parallel()

	var recurse func(n int) []StackFrame
	recurse = func(n int) []StackFrame {
		if n <= 0 {
			return captureStack(2)
		}
		return recurse(n - 1)
	}

	frames := recurse(10)
	require.NotEmpty(t, frames)
	assert.LessOrEqual(t, len(frames), maxStackFrames)
	assert.Equal(t, "errors_test.go", frames[0].File)
}

func BenchmarkWrap(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Wrap(errStd, Internal, "wrapped")
	}
}
