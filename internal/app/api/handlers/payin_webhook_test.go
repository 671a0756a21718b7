package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fatflowers/payin-gateway/internal/app/service/payin"
	"github.com/fatflowers/payin-gateway/internal/models"
	cfgpkg "github.com/fatflowers/payin-gateway/pkg/config"
)

const webhookTestToken = "secret"

type stubOrderLookup struct{ orders map[string]*models.Order }

func (s *stubOrderLookup) GetByID(_ context.Context, id string) (*models.Order, error) {
	return s.orders[id], nil
}

type stubPaymentStore struct{ created []*models.Payment }

func (s *stubPaymentStore) Create(_ context.Context, p *models.Payment) error {
	s.created = append(s.created, p)
	return nil
}

type noopAudit struct{}

func (noopAudit) SaveRaw(context.Context, map[string]string) {}

func webhookTestProcessor(store *stubPaymentStore) *payin.Processor {
	cfg := &cfgpkg.Config{
		Payin: cfgpkg.PayinConfig{
			APIToken: webhookTestToken,
			AgentID:  "42",
			Mode:     cfgpkg.GatewayModeTest,
		},
	}
	orders := &stubOrderLookup{orders: map[string]*models.Order{"1001": {ID: "1001"}}}
	return payin.NewProcessor(cfg, orders, store, noopAudit{}, zap.NewNop().Sugar())
}

func webhookForm(tamper func(url.Values)) url.Values {
	form := url.Values{}
	form.Set("orderId", "1001")
	form.Set("agentId", "42")
	form.Set("amount", "99.90")
	form.Set("paymentId", "P-77")
	form.Set("paymentStatus", "0")
	form.Set("paymentDate", "14:05:09 31.12.2024")
	form.Set("outputId", "OUT-555")
	form.Set("phone", "+79001234567")
	form.Set("currency", "RUB")
	form.Set("sign", payin.Sign([]string{
		form.Get("agentId"), form.Get("orderId"), form.Get("paymentId"),
		form.Get("amount"), form.Get("phone"), form.Get("paymentStatus"), form.Get("paymentDate"),
	}, webhookTestToken))
	if tamper != nil {
		tamper(form)
	}
	return form
}

func postNotify(t *testing.T, store *stubPaymentStore, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/v1/payin/notify", ApiPayinNotify(webhookTestProcessor(store)))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payin/notify", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApiPayinNotify_AcceptedReturnsAckXML(t *testing.T) {
	store := &stubPaymentStore{}
	w := postNotify(t, store, webhookForm(nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "text/xml", w.Header().Get("Content-Type"))
	require.Equal(t, `<?xml version="1.0" encoding="UTF-8"?><response><result>0</result></response>`, w.Body.String())
	require.Len(t, store.created, 1)
	require.Equal(t, "OUT-555", store.created[0].RemoteID)
}

func TestApiPayinNotify_MissingFieldNoAck(t *testing.T) {
	store := &stubPaymentStore{}
	w := postNotify(t, store, webhookForm(func(f url.Values) { f.Del("sign") }))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, w.Body.String())
	require.Empty(t, store.created)
}

func TestApiPayinNotify_BadSignatureNoAck(t *testing.T) {
	store := &stubPaymentStore{}
	w := postNotify(t, store, webhookForm(func(f url.Values) { f.Set("sign", "ffffffffffffffffffffffffffffffff") }))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, w.Body.String())
	require.Empty(t, store.created)
}

func TestApiPayinNotify_FailedOutcomeNoAck(t *testing.T) {
	store := &stubPaymentStore{}
	w := postNotify(t, store, webhookForm(func(f url.Values) { f.Set("paymentStatus", "2") }))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Empty(t, store.created)
}
