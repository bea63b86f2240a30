package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"islm-sim/internal/api/models"
	"islm-sim/internal/chart"
	"islm-sim/internal/logger"

	"github.com/gin-gonic/gin"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

type pageData struct {
	Title    string
	Subtitle string
	Controls []models.ControlInfo
	XLabel   string
	YLabel   string
}

// Dashboard handles GET /
func Dashboard(c *gin.Context) {
	var buf bytes.Buffer
	err := pageTemplate.Execute(&buf, pageData{
		Title:    "IS-LM Model: Interactive Simulation",
		Subtitle: "Closed-economy model after Olivier Blanchard.",
		Controls: controlInfos(),
		XLabel:   chart.XLabel,
		YLabel:   chart.YLabel,
	})
	if err != nil {
		logger.Error("dashboard template failed", "error", err)
		writeError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to render dashboard")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}
