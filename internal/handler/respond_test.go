package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"Haven_Community/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestReplyErrStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err  error
		code int
	}{
		{authz.ErrNotFound, http.StatusNotFound},
		{gorm.ErrRecordNotFound, http.StatusNotFound},
		{authz.ErrUnauthorized, http.StatusUnauthorized},
		{authz.ErrForbidden, http.StatusForbidden},
		{authz.ErrConflict, http.StatusConflict},
		{authz.ErrUpstream, http.StatusBadGateway},
		{fmt.Errorf("%w: dial timeout", authz.ErrUpstream), http.StatusBadGateway},
		{errors.New("title required"), http.StatusBadRequest},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		replyErr(c, tc.err)
		assert.Equal(t, tc.code, w.Code, "err=%v", tc.err)
	}
}
