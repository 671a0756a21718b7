package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fatflowers/payin-gateway/internal/app/service/payin"
	"github.com/fatflowers/payin-gateway/pkg/logctx"
)

// @Summary      Payin-Payout Webhook
// @Description  Consumes the provider's asynchronous payment notification. Form-encoded body with the ten documented fields. Answers the provider's XML acknowledgement only when the notification is fully accepted.
// @Tags         Webhook
// @Accept       x-www-form-urlencoded
// @Produce      xml
// @Success      200  {string}  string  "XML acknowledgement"
// @Failure      400  {string}  string  "empty body; provider keeps retrying"
// @Router       /api/v1/payin/notify [post]
// ApiPayinNotify handles Payin-Payout payment status notifications.
func ApiPayinNotify(p *payin.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			logctx.FromGin(c, p.Logger).Warnw("payin_notify_bad_form", "error", err.Error())
			c.Status(http.StatusBadRequest)
			return
		}
		payload := make(map[string]string, len(c.Request.PostForm))
		for k, vs := range c.Request.PostForm {
			if len(vs) > 0 {
				payload[k] = vs[0]
			}
		}

		if err := p.Process(c.Request.Context(), payload); err != nil {
			logctx.FromGin(c, p.Logger).Warnw("payin_notify_rejected", "error", err.Error())
			// Anything but the ack body: the provider is free to retry.
			c.Status(http.StatusBadRequest)
			return
		}

		c.Data(http.StatusOK, "text/xml", []byte(payin.AckXML))
	}
}

func RegisterPayinWebhookRoutes(r gin.IRouter, p *payin.Processor) {
	// Mount under provided group, expected at "/api/v1/payin"
	r.POST("/notify", ApiPayinNotify(p))
}
