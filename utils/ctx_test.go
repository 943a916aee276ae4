package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCurrentUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Zero(t, CurrentUserID(c))

	c.Set("userId", uint(7))
	assert.Equal(t, uint(7), CurrentUserID(c))

	c.Set("userId", float64(9))
	assert.Equal(t, uint(9), CurrentUserID(c))
}
