package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/fatflowers/payin-gateway/internal/app/service/payment"
	"github.com/fatflowers/payin-gateway/internal/models"
	"github.com/fatflowers/payin-gateway/pkg/response"
	"github.com/fatflowers/payin-gateway/pkg/types"
)

type ListPaymentsRequest struct {
	OrderID string                `json:"order_id"`
	Filters []*types.CommonFilter `json:"filters"`
}

type PaymentItem struct {
	ID          string    `json:"id"`
	RemoteID    string    `json:"remote_id"`
	RemoteState string    `json:"remote_state"`
	OrderID     string    `json:"order_id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	State       string    `json:"state"`
	GatewayMode string    `json:"gateway_mode"`
	CreatedAt   time.Time `json:"created_at"`
}

// @Summary      List payments
// @Description  Lists payment records created for an order, newest first.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body handlers.ListPaymentsRequest true "Listing request"
// @Success      200  {object}  handlers.RespListPayments
// @Router       /api/v1/admin/payments/list [post]
func ApiAdminListPayments(svc *payment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ListPaymentsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, err.Error()))
			return
		}
		if req.OrderID == "" {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "order_id is required"))
			return
		}

		records, err := svc.ListByOrder(c.Request.Context(), req.OrderID, req.Filters)
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		items := lo.Map(records, func(p *models.Payment, _ int) *PaymentItem {
			return &PaymentItem{
				ID:          p.ID,
				RemoteID:    p.RemoteID,
				RemoteState: p.RemoteState,
				OrderID:     p.OrderID,
				Amount:      p.Amount,
				Currency:    p.Currency,
				State:       p.State,
				GatewayMode: p.GatewayMode,
				CreatedAt:   p.CreatedAt,
			}
		})
		c.JSON(http.StatusOK, response.OKT(items))
	}
}

func RegisterAdminPaymentRoutes(r gin.IRouter, svc *payment.Service) {
	r.POST("/payments/list", ApiAdminListPayments(svc))
}
