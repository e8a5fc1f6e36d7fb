package safety

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Hoist/internal/observability"
	"Hoist/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock repository ---

type mockRepo struct {
	saved    int
	saveErr  error
	lastRisk string
	lastSafe bool
}

func (m *mockRepo) CreateUser(_ context.Context, _, _, _ string) (int, error) { return 0, nil }
func (m *mockRepo) GetBylogin(_ context.Context, _ string) (int, string, error) {
	return 0, "", nil
}
func (m *mockRepo) SaveEvaluation(_ context.Context, _ int, riskLevel string, safeToLift bool, _, _ []byte) (int, error) {
	m.saved++
	m.lastRisk = riskLevel
	m.lastSafe = safeToLift
	return m.saved, m.saveErr
}
func (m *mockRepo) ListEvaluations(_ context.Context, _, _ int) ([]repo.Evaluation, error) {
	return nil, nil
}
func (m *mockRepo) GetEvaluation(_ context.Context, _, _ int) (repo.Evaluation, error) {
	return repo.Evaluation{}, nil
}
func (m *mockRepo) ListCriticalSince(_ context.Context, _ time.Time) ([]repo.Evaluation, error) {
	return nil, nil
}

// --- tests ---

func postConfig(t *testing.T, h *Handler, cfg LiftConfiguration, userID int) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/tools/safety/calc", bytes.NewReader(body))
	if userID != 0 {
		req = req.WithContext(context.WithValue(req.Context(), "userID", userID))
	}
	w := httptest.NewRecorder()
	h.Calc(w, req)
	return w
}

func TestHandlerCalc(t *testing.T) {
	mock := &mockRepo{}
	h := &Handler{Repo: mock, Metrics: observability.NewMetricsForTesting()}

	w := postConfig(t, h, validConfig(), 7)

	require.Equal(t, http.StatusOK, w.Code)
	var rep SafetyReport
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rep))
	assert.Equal(t, RiskLow, rep.RiskLevel)
	assert.True(t, rep.SafeToLift)

	assert.Equal(t, 1, mock.saved)
	assert.Equal(t, RiskLow, mock.lastRisk)
	assert.True(t, mock.lastSafe)
}

func TestHandlerCalc_BadPayload(t *testing.T) {
	h := &Handler{}
	req := httptest.NewRequest(http.MethodPost, "/tools/safety/calc", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	h.Calc(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCalc_CalculationError(t *testing.T) {
	cfg := validConfig()
	cfg.DeformationLimitM = -1

	w := postConfig(t, &Handler{}, cfg, 0)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandlerCalc_HistoryFailureStillResponds(t *testing.T) {
	mock := &mockRepo{saveErr: assert.AnError}
	h := &Handler{Repo: mock, Metrics: observability.NewMetricsForTesting()}

	w := postConfig(t, h, validConfig(), 7)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, mock.saved)
}
