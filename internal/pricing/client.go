package pricing

import (
	"net/http"
	"strconv"
	"time"
)

const defaultTimeout = 10 * time.Second

func newHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// formatDecimal prints the shortest representation: 12.5 -> "12.5", 3 -> "3".
func formatDecimal(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
