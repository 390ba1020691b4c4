package auth

import "ripple-cli/types"

var apiClient types.ApiClient

// SetApiClient injects the gateway at startup (avoids a circular import
// between auth and api).
func SetApiClient(client types.ApiClient) {
	apiClient = client
}
