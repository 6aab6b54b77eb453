package domain

import "errors"

// 业务失败的三类信号；"不存在"按约定返回 nil 结果而不是 error
var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountBanned         = errors.New("account banned")
	ErrInsufficientPrivilege = errors.New("insufficient privilege")
)
