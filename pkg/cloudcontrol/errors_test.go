package cloudcontrol_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tintoy/cloudcontrol-client-core/pkg/cloudcontrol"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &cloudcontrol.APIError{
		ResponseCode: cloudcontrol.ResponseCodeResourceNotFound,
		Message:      "Network Domain with id xyz does not exist.",
		StatusCode:   404,
	}

	assert.Equal(t, "RESOURCE_NOT_FOUND: Network Domain with id xyz does not exist. (HTTP 404)", err.Error())
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := &cloudcontrol.APIError{ResponseCode: cloudcontrol.ResponseCodeResourceNotFound}
	assert.True(t, cloudcontrol.IsNotFound(notFound))

	// Wrapped errors must still match.
	assert.True(t, cloudcontrol.IsNotFound(fmt.Errorf("getting network domain: %w", notFound)))

	busy := &cloudcontrol.APIError{ResponseCode: cloudcontrol.ResponseCodeResourceBusy}
	assert.False(t, cloudcontrol.IsNotFound(busy))

	assert.False(t, cloudcontrol.IsNotFound(errors.New("some error")))
	assert.False(t, cloudcontrol.IsNotFound(nil))
}

func TestIsUnauthorized(t *testing.T) {
	t.Parallel()

	unauthorized := &cloudcontrol.APIError{ResponseCode: cloudcontrol.ResponseCodeUnauthorized}
	assert.True(t, cloudcontrol.IsUnauthorized(unauthorized))
	assert.True(t, cloudcontrol.IsUnauthorized(fmt.Errorf("listing VLANs: %w", unauthorized)))

	assert.False(t, cloudcontrol.IsUnauthorized(&cloudcontrol.APIError{
		ResponseCode: cloudcontrol.ResponseCodeUnexpectedError,
	}))
}

func TestParseAPIResponse(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"operation": "DEPLOY_NETWORK_DOMAIN",
		"responseCode": "IN_PROGRESS",
		"message": "Request accepted.",
		"info": [
			{"name": "networkDomainId", "value": "f14a871f-9a25-470c-aef8-51e13202e1aa"}
		],
		"requestId": "na9_20260829T120000"
	}`)

	response, err := cloudcontrol.ParseAPIResponse(payload)
	require.NoError(t, err)
	assert.Equal(t, cloudcontrol.ResponseCodeInProgress, response.ResponseCode)
	assert.Equal(t, "f14a871f-9a25-470c-aef8-51e13202e1aa", response.InfoValue("networkDomainId"))
	assert.Empty(t, response.InfoValue("missing"))

	_, err = cloudcontrol.ParseAPIResponse([]byte("<html>nope</html>"))
	require.Error(t, err)
}
