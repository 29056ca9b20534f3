// Package apperr 定义了HTTP层对外暴露的错误分类
package apperr

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ValidationError 表示缺失或格式错误的请求字段
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotDefined 表示必填字段未提供
func NotDefined(field string) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf("Value for %s is not defined.", field)}
}

// BadFormat 表示字段的值无法按预期格式解析
func BadFormat(field, expected string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: fmt.Sprintf("Value for %s is not in the expected %s format.", field, expected),
	}
}

// NotFoundError 表示引用的资源（活动、评估模式）不存在
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// StorageError 包装持久化失败，不会重试
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage 用失败的操作名包装err。nil保持nil，已分类的错误原样返回。
func Storage(err error, op string) error {
	if err == nil || Classified(err) {
		return err
	}
	return &StorageError{Op: op, Err: errors.WithStack(err)}
}

// Classified 判断err是否已属于上述分类
func Classified(err error) bool {
	var se *StorageError
	var ve *ValidationError
	var nf *NotFoundError
	return errors.As(err, &se) || errors.As(err, &ve) || errors.As(err, &nf)
}

// HTTPStatus 把业务错误映射为响应状态码
func HTTPStatus(err error) int {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage 是返回给调用方的文本，存储错误的细节只进日志
func PublicMessage(err error) string {
	var ve *ValidationError
	var nf *NotFoundError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &nf):
		return nf.Message
	default:
		return "Internal storage error, please try again later."
	}
}
