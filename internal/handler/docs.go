package handler

import (
	_ "embed"
	"net/http"
	"os"
	"sync"

	"github.com/gin-gonic/gin"
)

// Minimal HTML that loads Swagger UI from a CDN and points to /openapi.yaml.
// This avoids bundling assets and keeps the binary small.
//
//go:embed swagger.html
var swaggerHTML string

// openAPIPath is resolved relative to the working directory, same place the
// config file lives. embed cannot reach outside the package directory, so
// the contract file is read lazily instead.
const openAPIPath = "api/openapi.yaml"

var openAPISpec struct {
	mu   sync.Mutex
	data []byte
}

// readOpenAPISpec caches the contract after the first successful read;
// failed reads retry on the next request.
func readOpenAPISpec() ([]byte, error) {
	openAPISpec.mu.Lock()
	defer openAPISpec.mu.Unlock()
	if openAPISpec.data != nil {
		return openAPISpec.data, nil
	}
	data, err := os.ReadFile(openAPIPath)
	if err != nil {
		return nil, err
	}
	openAPISpec.data = data
	return data, nil
}

// RegisterDocs mounts documentation endpoints at the root:
//   - GET /openapi.yaml: raw OpenAPI contract read from api/openapi.yaml
//   - GET /docs: Swagger UI rendering of the contract
func RegisterDocs(r *gin.Engine) {
	r.GET("/openapi.yaml", func(c *gin.Context) {
		data, err := readOpenAPISpec()
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to read openapi spec: %v", err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}
