package handlers

import (
	"bytes"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fatflowers/payin-gateway/internal/app/service/payin"
	"github.com/fatflowers/payin-gateway/pkg/logctx"
	"github.com/fatflowers/payin-gateway/pkg/response"
)

// redirectPage auto-submits the signed payload to the provider, the
// offsite form-POST handoff. The noscript button covers clients without JS.
var redirectPage = template.Must(template.New("redirect").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.forms[0].submit()">
<form method="{{.Method}}" action="{{.URL}}">
{{- range .Fields}}
<input type="hidden" name="{{.Name}}" value="{{.Value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// @Summary      Checkout redirect
// @Description  Builds the signed Payin-Payout payload for an order and returns an auto-submitting form POST page pointing at the provider.
// @Tags         Checkout
// @Produce      html
// @Param        order_id path string true "Order ID"
// @Success      200  {string}  string  "redirect page"
// @Router       /api/v1/checkout/{order_id}/redirect [post]
func ApiCheckoutRedirect(orders payin.OrderLookup, builder *payin.RedirectBuilder) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logctx.FromGin(c, builder.Logger)

		o, err := orders.GetByID(c.Request.Context(), c.Param("order_id"))
		if err != nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		if o == nil {
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeBadRequest, "order not found"))
			return
		}

		payload, err := builder.Build(c.Request.Context(), o, time.Now())
		if err != nil {
			log.Errorw("checkout_redirect_build_error", "order_id", o.ID, "error", err.Error())
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}

		var buf bytes.Buffer
		if err := redirectPage.Execute(&buf, payload); err != nil {
			log.Errorw("checkout_redirect_render_error", "order_id", o.ID, "error", err.Error())
			c.JSON(http.StatusOK, response.ErrorT[any](response.APIResponseCodeError, err.Error()))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func RegisterCheckoutRoutes(r gin.IRouter, orders payin.OrderLookup, builder *payin.RedirectBuilder) {
	r.POST("/:order_id/redirect", ApiCheckoutRedirect(orders, builder))
}
