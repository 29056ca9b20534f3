// Package optional 提供记录请求字段是否提供的值类型
package optional

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Value 保存一个T及其是否存在。零值表示不存在。
// JSON中的null和缺失的键都解码为不存在。
type Value[T any] struct {
	val T
	set bool
}

// Of 返回一个存在的Value
func Of[T any](v T) Value[T] {
	return Value[T]{val: v, set: true}
}

// None 返回一个不存在的Value
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get 返回值及其是否存在
func (o Value[T]) Get() (T, bool) {
	return o.val, o.set
}

// Present 判断值是否提供
func (o Value[T]) Present() bool {
	return o.set
}

// OrZero 返回值，不存在时返回T的零值
func (o Value[T]) OrZero() T {
	return o.val
}

// Ptr 返回值副本的指针，不存在时返回nil
func (o Value[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.val
	return &v
}

func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Value[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.val)
}

// NonBlank 在字符串存在且非空白时返回它和true。
// 返回的字符串保持原样，不做trim。
func NonBlank(o Value[string]) (string, bool) {
	s, ok := o.Get()
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
