package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validPayin() PayinConfig {
	return PayinConfig{
		APIToken:               "token",
		AgentID:                "42",
		AgentName:              "Shop",
		CustomerPhoneFieldName: "field_customer_phone",
		Mode:                   GatewayModeTest,
	}
}

func TestPayinConfig_Validate(t *testing.T) {
	v := validPayin()
	require.NoError(t, v.Validate())

	c := validPayin()
	c.Mode = GatewayModeLive
	require.NoError(t, c.Validate())
}

func TestPayinConfig_ValidateRejectsUnknownMode(t *testing.T) {
	c := validPayin()
	c.Mode = "sandbox"
	err := c.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid mode")
}

func TestPayinConfig_ValidateRequiredFields(t *testing.T) {
	c := validPayin()
	c.APIToken = ""
	require.Error(t, c.Validate())

	c = validPayin()
	c.AgentID = ""
	require.Error(t, c.Validate())

	c = validPayin()
	c.CustomerPhoneFieldName = ""
	require.Error(t, c.Validate())
}
