// Package openapi exposes the generated OpenAPI document and a Swagger UI
// page for it.
package openapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"
)

// SpecPath is where huma serves the JSON document.
const SpecPath = "/openapi.json"

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Dealer Catalog API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "` + SpecPath + `",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes adds the Swagger UI page to the Echo instance.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/swagger/index.html", serveUI)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

// Write renders the API's OpenAPI document as json or yaml.
func Write(w io.Writer, api huma.API, format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "json", "":
		data, err = json.MarshalIndent(api.OpenAPI(), "", "  ")
	case "yaml":
		data, err = api.OpenAPI().YAML()
	default:
		return fmt.Errorf("unsupported format %q (want json or yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding openapi document: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func serveUI(c echo.Context) error {
	return c.HTML(http.StatusOK, swaggerUIHTML)
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
