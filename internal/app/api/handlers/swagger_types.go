package handlers

import (
	"github.com/fatflowers/payin-gateway/pkg/response"
)

// RespOK is a generic OK envelope for endpoints returning no specific data.
type RespOK struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    interface{}              `json:"data"`
}

// RespListPayments wraps the admin payment listing in the standard envelope.
type RespListPayments struct {
	Code    response.APIResponseCode `json:"code"`
	Message string                   `json:"message"`
	Data    []PaymentItem            `json:"data"`
}
