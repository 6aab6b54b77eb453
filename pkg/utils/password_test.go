package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"violethacks/pkg/utils"
)

func TestHashCheckPassword(t *testing.T) {
	h := utils.HashPassword("hunter2")
	assert.NotEmpty(t, h)
	assert.NotEqual(t, "hunter2", h)
	assert.True(t, utils.CheckPassword("hunter2", h))
	assert.False(t, utils.CheckPassword("hunter3", h))
}

func TestNewIDUnique(t *testing.T) {
	a, b := utils.NewID(), utils.NewID()
	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}
