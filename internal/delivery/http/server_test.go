package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dating/config"
	deliverycontext "dating/internal/delivery/context"
	"dating/internal/delivery/http/middleware"
	"dating/internal/delivery/http/response"
	"dating/internal/delivery/http/router"
	"dating/internal/delivery/http/router/handler"
	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/service"
	"dating/internal/errors"
	"dating/internal/infra/blob"
	mockService "dating/internal/mocks/service"
	mockUsecase "dating/internal/mocks/usecase"
	"dating/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

const goodToken = "good-token"

var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

type fixture struct {
	e         *echo.Echo
	store     *blob.Store
	accountUC *mockUsecase.MockAccountUsecase
	memberUC  *mockUsecase.MockMemberUsecase
	photoUC   *mockUsecase.MockPhotoUsecase
	tokenSvc  *mockService.MockTokenService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.BasePath = "/api"
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Blob.MaxUploadBytes = 1 << 20
	cfg.Blob.PublicBaseURL = "http://localhost/photos"
	cfg.Blob.KeyPrefix = "photos/"

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	f := &fixture{
		store:     blob.NewStore(bucket, cfg.Blob),
		accountUC: mockUsecase.NewMockAccountUsecase(t),
		memberUC:  mockUsecase.NewMockMemberUsecase(t),
		photoUC:   mockUsecase.NewMockPhotoUsecase(t),
		tokenSvc:  mockService.NewMockTokenService(t),
	}

	f.e = newEcho(cfg, logger, router.RouterParams{
		AccountHandler: handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: f.accountUC, Logger: logger}),
		MemberHandler:  handler.NewMemberHandler(handler.MemberHandlerParams{MemberUC: f.memberUC, Logger: logger}),
		PhotoHandler: handler.NewPhotoHandler(handler.PhotoHandlerParams{
			PhotoUC:  f.photoUC,
			MemberUC: f.memberUC,
			Config:   cfg,
			Logger:   logger,
		}),
		PhotoFileHandler:     handler.NewPhotoFileHandler(f.store),
		AuthMiddleware:       middleware.NewAuthMiddleware(f.tokenSvc, logger),
		LastActiveMiddleware: middleware.NewLastActiveMiddleware(f.memberUC, logger),
		Config:               cfg,
	})

	return f
}

// authorize makes req carry a token that validates as accountID.
func (f *fixture) authorize(req *http.Request, accountID string) {
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+goodToken)
	f.tokenSvc.EXPECT().Validate(goodToken).Return(&service.Claims{
		DisplayName:      "Alice",
		RegisteredClaims: jwt.RegisteredClaims{Subject: accountID},
	}, nil)
	f.memberUC.EXPECT().TouchLastActive(mock.Anything, accountID).Return(nil)
}

func (f *fixture) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var body envelope
	if rec.Body.Len() > 0 && strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}

	return rec, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"status":"healthy"`)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, rec.Header().Get(deliverycontext.HeaderXRequestID), body.Meta.RequestID)
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	f := newFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec, body := f.do(t, req)

	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-42", body.Meta.RequestID)
}

func TestServer_UnloggableRequestIDIsReplaced(t *testing.T) {
	f := newFixture(t)

	for name, id := range map[string]string{
		"control characters": "req-42\nlevel=ERROR",
		"too long":           strings.Repeat("a", 129),
		"spaces":             "req 42",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			req.Header.Set(deliverycontext.HeaderXRequestID, id)
			rec, body := f.do(t, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEqual(t, id, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
			assert.Equal(t, got, body.Meta.RequestID)
		})
	}
}

func TestServer_AuthBoundary(t *testing.T) {
	f := newFixture(t)
	f.memberUC.EXPECT().ListMembers(mock.Anything).Return([]*entity.Member{{ID: "acc-1", DisplayName: "Alice"}}, nil)

	rec, body := f.do(t, httptest.NewRequest(http.MethodGet, "/api/members", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body.Data), `"id":"acc-1"`)

	protected := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/members/acc-1", nil),
		httptest.NewRequest(http.MethodGet, "/api/members/acc-1/photos", nil),
		jsonRequest(http.MethodPut, "/api/members", `{"city":"Lisbon"}`),
		httptest.NewRequest(http.MethodPost, "/api/members/add-photo", nil),
		httptest.NewRequest(http.MethodPut, "/api/members/set-main-photo/1", nil),
		httptest.NewRequest(http.MethodDelete, "/api/members/delete-photo/1", nil),
	}
	for _, req := range protected {
		t.Run(req.Method+" "+req.URL.Path, func(t *testing.T) {
			rec, body := f.do(t, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
			assert.Nil(t, body.Error.Details)
		})
	}

	t.Run("not a bearer credential", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/members/acc-1", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwdw==")

		rec, _ := f.do(t, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		f.tokenSvc.EXPECT().Validate("forged").
			Return(nil, domainerrors.ErrUnauthorized.WrapMessage("signature is invalid")).Once()
		req := httptest.NewRequest(http.MethodGet, "/api/members/acc-1", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer forged")

		rec, body := f.do(t, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", body.Error.Code)
	})
}

func TestServer_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		expiry := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		f.accountUC.EXPECT().
			Register(mock.Anything, mock.MatchedBy(func(in usecase.RegisterInput) bool {
				return in.Email == "alice@x.com" && in.Password == "pw1234" && in.DateOfBirth.Year() == 1990
			})).
			Return(&usecase.SessionOutput{
				Account: &entity.Account{ID: "acc-1", DisplayName: "Alice", Email: "alice@x.com"},
				Token:   &service.Token{Value: "tok", ExpiresAt: expiry},
			}, nil)

		rec, body := f.do(t, jsonRequest(http.MethodPost, "/api/account/register",
			`{"email":"alice@x.com","displayName":"Alice","password":"pw1234","dateOfBirth":"1990-05-01"}`))

		require.Equal(t, http.StatusOK, rec.Code)
		var session handler.SessionResponse
		require.NoError(t, json.Unmarshal(body.Data, &session))
		assert.Equal(t, "acc-1", session.ID)
		assert.Equal(t, "tok", session.Token)
		assert.Nil(t, session.MainImageURL)
		assert.True(t, expiry.Equal(session.TokenExpiry))
	})

	t.Run("field errors", func(t *testing.T) {
		f := newFixture(t)

		rec, body := f.do(t, jsonRequest(http.MethodPost, "/api/account/register",
			`{"email":"not-an-email","displayName":"","password":"pw"}`))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		details, ok := body.Error.Details.(map[string]any)
		require.True(t, ok)
		assert.Contains(t, details, "email")
		assert.Contains(t, details, "displayName")
		assert.Contains(t, details, "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)

		rec, body := f.do(t, jsonRequest(http.MethodPost, "/api/account/register", `{"email":`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)
		f.accountUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrEmailTaken.WithDetails("email: Email is already registered"))

		rec, body := f.do(t, jsonRequest(http.MethodPost, "/api/account/register",
			`{"email":"alice@x.com","displayName":"Alice","password":"pw1234"}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "EMAIL_TAKEN", body.Error.Code)
		assert.Equal(t, "email: Email is already registered", body.Error.Details)
	})
}

func TestServer_LoginInvalidCredentials(t *testing.T) {
	f := newFixture(t)
	f.accountUC.EXPECT().Login(mock.Anything, usecase.LoginInput{Email: "alice@x.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec, body := f.do(t, jsonRequest(http.MethodPost, "/api/account/login", `{"email":" alice@x.com ","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestServer_GetMember(t *testing.T) {
	mainURL := "http://localhost/photos/b.png"

	t.Run("found", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/api/members/acc-2", nil)
		f.authorize(req, "acc-1")
		f.memberUC.EXPECT().GetMember(mock.Anything, "acc-2").Return(&entity.Member{
			ID:           "acc-2",
			DisplayName:  "Bob",
			MainImageURL: &mainURL,
			Photos: []*entity.Photo{
				{ID: 1, URL: "http://localhost/photos/a.png", MemberID: "acc-2"},
				{ID: 2, URL: mainURL, MemberID: "acc-2"},
			},
		}, nil)

		rec, body := f.do(t, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var member handler.MemberResponse
		require.NoError(t, json.Unmarshal(body.Data, &member))
		assert.Equal(t, mainURL, *member.MainImageURL)
		require.Len(t, member.Photos, 2)
		assert.False(t, member.Photos[0].IsMain)
		assert.True(t, member.Photos[1].IsMain)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodGet, "/api/members/ghost", nil)
		f.authorize(req, "acc-1")
		f.memberUC.EXPECT().GetMember(mock.Anything, "ghost").Return(nil, domainerrors.ErrMemberNotFound)

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "MEMBER_NOT_FOUND", body.Error.Code)
	})
}

func TestServer_UpdateMemberUsesTokenIdentity(t *testing.T) {
	f := newFixture(t)
	req := jsonRequest(http.MethodPut, "/api/members", `{"id":"someone-else","city":"Lisbon"}`)
	f.authorize(req, "acc-1")
	f.memberUC.EXPECT().
		UpdateMember(mock.Anything, "acc-1", mock.MatchedBy(func(u entity.MemberUpdate) bool {
			return u.City != nil && *u.City == "Lisbon" && u.DisplayName == nil
		})).
		Return(nil)

	rec, _ := f.do(t, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_UpdateMemberNothingSaved(t *testing.T) {
	f := newFixture(t)
	req := jsonRequest(http.MethodPut, "/api/members", `{}`)
	f.authorize(req, "acc-1")
	f.memberUC.EXPECT().UpdateMember(mock.Anything, "acc-1", entity.MemberUpdate{}).
		Return(errors.Wrap(domainerrors.ErrMemberUpdateFailed, "failed to update member"))

	rec, body := f.do(t, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "MEMBER_UPDATE_FAILED", body.Error.Code)
}

func multipartUpload(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/members/add-photo", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestServer_AddPhoto(t *testing.T) {
	t.Run("first photo reports main", func(t *testing.T) {
		f := newFixture(t)
		req := multipartUpload(t, "file", pngBytes)
		f.authorize(req, "acc-1")
		photo := &entity.Photo{ID: 7, URL: "http://localhost/photos/x.png", MemberID: "acc-1"}
		f.photoUC.EXPECT().UploadPhoto(mock.Anything, "acc-1", pngBytes).Return(photo, nil)
		f.memberUC.EXPECT().GetMember(mock.Anything, "acc-1").
			Return(&entity.Member{ID: "acc-1", MainImageURL: &photo.URL, Photos: []*entity.Photo{photo}}, nil)

		rec, body := f.do(t, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp handler.PhotoResponse
		require.NoError(t, json.Unmarshal(body.Data, &resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.True(t, resp.IsMain)
	})

	t.Run("missing file part", func(t *testing.T) {
		f := newFixture(t)
		req := multipartUpload(t, "image", pngBytes)
		f.authorize(req, "acc-1")

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})

	t.Run("blob store failure", func(t *testing.T) {
		f := newFixture(t)
		req := multipartUpload(t, "file", pngBytes)
		f.authorize(req, "acc-1")
		f.photoUC.EXPECT().UploadPhoto(mock.Anything, "acc-1", pngBytes).
			Return(nil, errors.Wrap(domainerrors.ErrUploadFailed, "bucket unavailable"))

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "UPLOAD_FAILED", body.Error.Code)
	})
}

func TestServer_SetMainPhoto(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "success", wantCode: http.StatusNoContent},
		{name: "already main", err: domainerrors.ErrPhotoAlreadyMain, wantCode: http.StatusBadRequest, wantErr: "PHOTO_ALREADY_MAIN"},
		{name: "not owned", err: domainerrors.ErrPhotoNotFound, wantCode: http.StatusNotFound, wantErr: "PHOTO_NOT_FOUND"},
		{name: "lost every retry", err: domainerrors.ErrConcurrentUpdate, wantCode: http.StatusConflict, wantErr: "CONCURRENT_UPDATE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			req := httptest.NewRequest(http.MethodPut, "/api/members/set-main-photo/12", nil)
			f.authorize(req, "acc-1")
			f.photoUC.EXPECT().SetMainPhoto(mock.Anything, "acc-1", int64(12)).Return(tc.err)

			rec, body := f.do(t, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, body.Error.Code)
			}
		})
	}

	t.Run("non numeric id", func(t *testing.T) {
		f := newFixture(t)
		req := httptest.NewRequest(http.MethodPut, "/api/members/set-main-photo/abc", nil)
		f.authorize(req, "acc-1")

		rec, body := f.do(t, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	})
}

func TestServer_DeletePhoto(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/members/delete-photo/3", nil)
	f.authorize(req, "acc-1")
	f.photoUC.EXPECT().DeletePhoto(mock.Anything, "acc-1", int64(3)).Return(nil)

	rec, _ := f.do(t, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_InternalErrorsAreOpaque(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/members/delete-photo/3", nil)
	f.authorize(req, "acc-1")
	f.photoUC.EXPECT().DeletePhoto(mock.Anything, "acc-1", int64(3)).
		Return(errors.New("pq: relation photos is locked by pid 4242"))

	rec, body := f.do(t, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.Nil(t, body.Error.Details)
	assert.NotContains(t, rec.Body.String(), "pid 4242")
}

func TestServer_LastActiveFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodDelete, "/api/members/delete-photo/3", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+goodToken)
	f.tokenSvc.EXPECT().Validate(goodToken).
		Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "acc-1"}}, nil)
	f.memberUC.EXPECT().TouchLastActive(mock.Anything, "acc-1").Return(errors.New("db down"))
	f.photoUC.EXPECT().DeletePhoto(mock.Anything, "acc-1", int64(3)).Return(nil)

	rec, _ := f.do(t, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_ServePhoto(t *testing.T) {
	f := newFixture(t)
	stored, err := f.store.Put(context.Background(), pngBytes, "image/png")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/"+stored.StorageID, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())

	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/photos/photos/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
