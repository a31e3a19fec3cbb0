package handlers

import (
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"
)

const rootMessage = "This route does not do anything. Use GET /list to get a paginated list of collages (id, thumbnail), GET /get/{id} to get collage data or POST /save."

func Root(c *drift.Context) {
	c.Response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.Response.WriteHeader(http.StatusOK)
	_, _ = c.Response.Write([]byte(rootMessage))
	c.Abort()
}

func Health(c *drift.Context) {
	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
