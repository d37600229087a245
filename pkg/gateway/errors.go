package gateway

import "fmt"

// GatewayError is returned for transport failures and remote 4xx/5xx
// responses from the LLM gateway. Status is 0 for transport errors.
type GatewayError struct {
	Status  int
	Message string
}

func (e *GatewayError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("gateway error: %s", e.Message)
	}
	return fmt.Sprintf("gateway error (HTTP %d): %s", e.Status, e.Message)
}
