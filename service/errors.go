package service

import "errors"

var (
	// ErrTargetNotFound 目标内容不存在（用户错误，不重试）
	ErrTargetNotFound = errors.New("目标内容不存在")
	// ErrInvalidTarget 目标类型或参数不合法
	ErrInvalidTarget = errors.New("目标类型不合法")
)
