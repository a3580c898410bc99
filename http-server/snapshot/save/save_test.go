package save

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"produksi-golang/internal/storage"
)

type MockSnapshotSaver struct {
	mock.Mock
}

func (m *MockSnapshotSaver) Save(ctx context.Context, name string, cfg storage.PlanConfig, records []storage.ShiftRecord) (string, error) {
	args := m.Called(ctx, name, cfg, records)
	return args.String(0), args.Error(1)
}

func TestSaveSnapshot_Success(t *testing.T) {
	mockSaver := new(MockSnapshotSaver)
	mockSaver.On("Save", mock.Anything, "rencana januari", mock.Anything, mock.MatchedBy(func(records []storage.ShiftRecord) bool {
		return len(records) == 1 && records[0].ID == "1-1"
	})).Return("snap-uuid", nil)

	handler := SaveSnapshot(slog.Default(), mockSaver)

	body := `{
		"name": "rencana januari",
		"config": {"base_pieces_time": 257, "delivery_target": 5100},
		"records": [{"id": "1-1", "day": 1, "shift": "1", "pcs": 56}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan/save", strings.NewReader(body))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "snap-uuid")
	mockSaver.AssertExpectations(t)
}

func TestSaveSnapshot_NameRequired(t *testing.T) {
	handler := SaveSnapshot(slog.Default(), new(MockSnapshotSaver))

	req := httptest.NewRequest(http.MethodPost, "/api/plan/save", strings.NewReader(`{"name": "  "}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
