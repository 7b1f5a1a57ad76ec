package middleware

import (
	"mime"
	"strings"

	"github.com/darkkaiser/storefront-server/internal/service/api/constants"
	applog "github.com/darkkaiser/storefront-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 본문이 있는 요청의 Content-Type이 expected인지 검증합니다.
// 본문이 없는 요청은 검증하지 않습니다. 불일치 시 415를 반환합니다.
func ValidateContentType(expected string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !strings.EqualFold(mediaType, expected) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   expected,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn(constants.LogMsgUnsupportedContentType)

				return ErrUnsupportedMediaType
			}

			return next(c)
		}
	}
}
