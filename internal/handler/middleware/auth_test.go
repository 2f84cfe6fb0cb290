//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"host-pricing/internal/handler/middleware"
	"host-pricing/tests/common/httptest"
	usecasemock "host-pricing/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(m *middleware.AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", m.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetHostID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"host_id": id.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	hostID := uuid.New()

	testCases := []struct {
		name        string
		token       string
		setupMock   func(*usecasemock.MockTokenValidator)
		expectCode  int
		expectInMsg string
	}{
		{
			name:  "success: host id stored in context",
			token: "good-token",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("good-token").Return(hostID, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name:        "error: missing header",
			token:       "",
			setupMock:   func(m *usecasemock.MockTokenValidator) {},
			expectCode:  http.StatusUnauthorized,
			expectInMsg: "Access token required",
		},
		{
			name:  "error: invalid token",
			token: "expired",
			setupMock: func(m *usecasemock.MockTokenValidator) {
				m.EXPECT().ValidateToken("expired").Return(uuid.Nil, errors.New("token is expired"))
			},
			expectCode:  http.StatusUnauthorized,
			expectInMsg: "Invalid or expired token",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)
			router := newRouter(middleware.NewAuthMiddleware(validator))

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/whoami", nil, tc.token)

			if tc.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectInMsg)
				return
			}
			var body map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
			assert.Equal(t, hostID.String(), body["host_id"])
		})
	}
}

func TestGetHostID_WrongType(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(nil)
	c.Set("host_id", "not-a-uuid")

	_, ok := middleware.GetHostID(c)
	assert.False(t, ok)
}
