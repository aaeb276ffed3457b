package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"testpark/internal/dto"
	apperrors "testpark/pkg/errors"
	"testpark/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	tokens *dto.TokenPairDTO
	err    error
}

func (s *stubAuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	return s.tokens, s.err
}

func (s *stubAuthService) Refresh(ctx context.Context, payload dto.RefreshDTO) (*dto.TokenPairDTO, error) {
	return s.tokens, s.err
}

func newAuthTestContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLoginReturnsTokenPair(t *testing.T) {
	svc := &stubAuthService{tokens: &dto.TokenPairDTO{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User:         dto.ShortUserDTO{ID: 1, Name: "관리자"},
	}}
	ctrl := NewAuthController(svc, zap.NewNop())
	ctx, rec := newAuthTestContext(t, `{"username":"admin","password":"testpark123!"}`)

	require.NoError(t, ctrl.Login(ctx))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp utils.HTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	body := resp.Body.(map[string]interface{})
	assert.Equal(t, "access", body["access_token"])
}

func TestLoginRejectsMissingPassword(t *testing.T) {
	ctrl := NewAuthController(&stubAuthService{}, zap.NewNop())
	ctx, rec := newAuthTestContext(t, `{"username":"admin"}`)

	require.NoError(t, ctrl.Login(ctx))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp utils.HTTPResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
}

func TestLoginMapsInvalidCredentialsTo401(t *testing.T) {
	ctrl := NewAuthController(&stubAuthService{err: apperrors.ErrInvalidCredentials}, zap.NewNop())
	ctx, rec := newAuthTestContext(t, `{"username":"admin","password":"wrong"}`)

	require.NoError(t, ctrl.Login(ctx))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
