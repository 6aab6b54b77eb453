package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID 32 位无连字符 uuid，作主键用
func NewID() string { return strings.ReplaceAll(uuid.NewString(), "-", "") }
