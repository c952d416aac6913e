package metrics

import (
	"context"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"testing"
)

func TestCollector_Serve(t *testing.T) {
	c := New()
	c.Succeeded(0.01, 12)
	server, err := c.Serve("127.0.0.1:0")
	if !assert.NoError(t, err) {
		return
	}
	response, err := http.Get("http://" + server.Addr + "/metrics")
	if assert.NoError(t, err) {
		body, _ := io.ReadAll(response.Body)
		_ = response.Body.Close()
		assert.Contains(t, string(body), "tasksetgen_last_hyperperiod 12")
	}
	assert.NoError(t, server.Shutdown(context.Background()))
}
