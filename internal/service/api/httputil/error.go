package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/storefront-server/internal/pkg/errors"
	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	"github.com/darkkaiser/storefront-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo 프레임워크의 전역 에러 핸들러입니다.
//
// 모든 에러를 표준 ErrorResponse JSON으로 변환합니다.
// 도메인 에러(AppError)는 가장 바깥쪽 ErrorType으로 상태 코드를 결정합니다.
//   - InvalidInput: 400
//   - NotFound: 404
//   - 그 외: 500 (내부 메시지는 응답에 노출하지 않음)
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러에 대응하는 HTTP 상태 코드와 클라이언트용 메시지를 결정합니다.
func resolve(err error) (int, string) {
	if he, ok := err.(*echo.HTTPError); ok {
		message := http.StatusText(he.Code)
		switch m := he.Message.(type) {
		case string:
			message = m
		case response.ErrorResponse:
			message = m.Message
		}

		switch he.Code {
		case http.StatusNotFound:
			message = constants.ErrMsgNotFound
		case http.StatusRequestEntityTooLarge:
			message = constants.ErrMsgRequestEntityTooLarge
		case http.StatusServiceUnavailable:
			message = constants.ErrMsgServiceUnavailable
		}
		if he.Code >= http.StatusInternalServerError && he.Code != http.StatusServiceUnavailable {
			message = constants.ErrMsgInternalServer
		}

		return he.Code, message
	}

	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		switch appErr.Type() {
		case apperrors.InvalidInput:
			return http.StatusBadRequest, appErr.Message()
		case apperrors.NotFound:
			return http.StatusNotFound, appErr.Message()
		}
	}

	return http.StatusInternalServerError, constants.ErrMsgInternalServer
}
