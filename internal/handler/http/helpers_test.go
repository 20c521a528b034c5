package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cols/internal/config"
	"github.com/MKhiriev/go-cols/internal/logger"
	"github.com/MKhiriev/go-cols/internal/mock"
	"github.com/MKhiriev/go-cols/internal/service"
	"github.com/MKhiriev/go-cols/internal/utils"
	"github.com/MKhiriev/go-cols/models"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "valid-token"
	viewerID   = "0190f7a0-0000-7000-8000-00000000000a"
	otherID    = "0190f7a0-0000-7000-8000-00000000000b"
	galibierID = "0190f7a0-0000-7000-8000-000000000002"
)

type serviceMocks struct {
	auth       *mock.MockAuthService
	cols       *mock.MockColService
	ascensions *mock.MockAscensionService
	explorer   *mock.MockExplorerService
	dashboard  *mock.MockDashboardService
	appInfo    *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		auth:       mock.NewMockAuthService(ctrl),
		cols:       mock.NewMockColService(ctrl),
		ascensions: mock.NewMockAscensionService(ctrl),
		explorer:   mock.NewMockExplorerService(ctrl),
		dashboard:  mock.NewMockDashboardService(ctrl),
		appInfo:    mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:      m.auth,
		ColService:       m.cols,
		AscensionService: m.ascensions,
		ExplorerService:  m.explorer,
		DashboardService: m.dashboard,
		AppInfoService:   m.appInfo,
	}

	return NewHandler(services, config.Server{HTTPAddress: ":8080"}, logger.Nop()), m
}

// authorize makes testToken resolve to viewerID.
func (m *serviceMocks) authorize() {
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).Return(models.Token{UserID: viewerID}, nil).AnyTimes()
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, authorized bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body.Error
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
