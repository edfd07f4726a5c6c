package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/cppla/community/models"
	"github.com/cppla/community/repository"
	"github.com/cppla/community/services"
)

func TestRespondErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"not found", fmt.Errorf("load: %w", repository.ErrNotFound), http.StatusNotFound, "Thing not found"},
		{"conflict", repository.ErrConflict, http.StatusConflict, "retry"},
		{"provider", &services.ProviderError{Kind: services.ErrProviderUnavailable, Detail: "timeout"}, http.StatusBadRequest, "timeout"},
		{"points", models.ErrPointsDecrease, http.StatusBadRequest, "total_points"},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(ctx, tc.err, "Thing not found")
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.detail)
			assert.NotContains(t, w.Body.String(), "disk on fire")
		})
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	for raw, want := range map[string]bool{"12": true, "0": false, "-1": false, "abc": false} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := pathID(ctx, "id")
		assert.Equal(t, want, ok, raw)
		if !want {
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	}
}
