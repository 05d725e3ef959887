package handlers_test

import (
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Local light mocks
type hMockItemRepo struct{ mock.Mock }

func (m *hMockItemRepo) ListAll(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) Create(ctx context.Context, patch model.ItemPatch) (*model.Item, error) {
	args := m.Called(ctx, patch)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) UpdateByID(ctx context.Context, id string, patch model.ItemPatch) (*model.Item, error) {
	args := m.Called(ctx, id, patch)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockItemRepo) DeleteByID(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.ItemRepository = (*hMockItemRepo)(nil)

func newHandlersTestRouter(t *testing.T, ping handlers.PingFunc) (http.Handler, *hMockItemRepo) {
	t.Helper()
	logger := zap.NewNop().Sugar()
	ir := &hMockItemRepo{}
	h := handlers.NewHandler(service.NewItemService(ir, logger), ping, logger)
	return h.Router, ir
}

// newStoreTestRouter собирает роутер поверх настоящего in-memory SQLite хранилища.
func newStoreTestRouter(t *testing.T) http.Handler {
	t.Helper()
	ctx := context.Background()
	st, err := repo.Open(ctx, ":memory:", "")
	require.NoError(t, err)
	require.NoError(t, st.Ping(ctx))
	t.Cleanup(func() { _ = st.Close(ctx) })

	logger := zap.NewNop().Sugar()
	h := handlers.NewHandler(service.NewItemService(st.Items(), logger), st.Ping, logger)
	return h.Router
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&v), rr.Body.String())
	return v
}

func ptrStr(s string) *string   { return &s }
func ptrF64(v float64) *float64 { return &v }
