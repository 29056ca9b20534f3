package apperr

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// BindJSON 把请求体解析到 dst。空请求体等同于 {}，
// 交由字段校验报告缺失的字段。
func BindJSON(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return BadFormat(typeErr.Field, expectedFormat(typeErr))
	}
	return &ValidationError{Field: "body", Message: "Request body is not valid JSON."}
}

func expectedFormat(err *json.UnmarshalTypeError) string {
	if err.Type == nil {
		return "expected"
	}
	switch err.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	default:
		return err.Type.Kind().String()
	}
}

// Respond 写出错误响应。500类错误的细节只进日志。
func Respond(c *gin.Context, err error) {
	status := HTTPStatus(err)
	if status >= 500 {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": PublicMessage(err)})
}
