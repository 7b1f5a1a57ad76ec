package errors

import (
	"path/filepath"
	"runtime"
)

// defaultCallerSkip 스택 수집 시 건너뛸 호출 깊이입니다.
// runtime.Callers, captureStack, 공개 생성 함수(New/Wrap 등) 3단계를 건너뛰어
// 에러를 생성한 사용자 코드가 0번째 프레임이 되도록 합니다.
const defaultCallerSkip = 3

// maxStackFrames 에러 하나에 기록할 최대 프레임 수입니다.
const maxStackFrames = 5

// StackFrame 단일 호출 프레임의 위치 정보입니다.
type StackFrame struct {
	File     string // 파일 이름 (디렉토리 제외)
	Line     int    // 줄 번호
	Function string // 패키지 경로를 포함한 함수 이름
}

// captureStack 현재 실행 위치의 스택 정보를 최대 maxStackFrames 단계까지 수집합니다.
func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	callersFrames := runtime.CallersFrames(pc[:n])

	frames := make([]StackFrame, 0, n)
	for {
		frame, more := callersFrames.Next()
		frames = append(frames, StackFrame{
			File:     filepath.Base(frame.File),
			Line:     frame.Line,
			Function: frame.Function,
		})
		if !more {
			break
		}
	}

	return frames
}
