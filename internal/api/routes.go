package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/diffusion"
	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/generate-wireframe").
			To(handler.GenerateWireframe).
			Doc("Generate a wireframe from a natural language prompt").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wireframe"}).
			Reads(models.WireframeRequest{}).
			Writes(models.WireframeResponse{}).
			Returns(200, "OK", models.WireframeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/wireframe-styles").
			To(handler.WireframeStyles).
			Doc("List available wireframe styles").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wireframe"}).
			Writes(StylesResponse{}).
			Returns(200, "OK", StylesResponse{}))

	ws.
		Route(ws.GET("/layout-types").
			To(handler.LayoutTypes).
			Doc("List available layout types").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wireframe"}).
			Writes(LayoutTypesResponse{}).
			Returns(200, "OK", LayoutTypesResponse{}))

	ws.
		Route(ws.POST("/analyze-prompt").
			To(handler.AnalyzePrompt).
			Doc("Analyze a prompt and suggest generation parameters").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wireframe"}).
			Reads(AnalyzeRequest{}).
			Writes(AnalyzeResponse{}).
			Returns(200, "OK", AnalyzeResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/templates").
			To(handler.Templates).
			Doc("List predefined wireframe templates").
			Metadata(restfulspec.KeyOpenAPITags, []string{"wireframe"}).
			Writes(TemplatesResponse{}).
			Returns(200, "OK", TemplatesResponse{}))

	ws.
		Route(ws.GET("/ai/status").
			To(handler.AIStatus).
			Doc("Diffusion backend status").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ai"}).
			Writes(diffusion.Status{}).
			Returns(200, "OK", diffusion.Status{}))

	ws.
		Route(ws.POST("/ai/load-models").
			To(handler.AILoadModels).
			Doc("Probe and load the diffusion backend").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ai"}).
			Writes(AIActionResponse{}).
			Returns(200, "OK", AIActionResponse{}).
			Returns(502, "Bad Gateway", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/ai/unload-models").
			To(handler.AIUnloadModels).
			Doc("Unload the diffusion backend").
			Metadata(restfulspec.KeyOpenAPITags, []string{"ai"}).
			Writes(AIActionResponse{}).
			Returns(200, "OK", AIActionResponse{}))

	ws.
		Route(ws.GET("/stats").
			To(handler.Stats).
			Doc("Service usage statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"stats"}).
			Writes(StatsResponse{}).
			Returns(200, "OK", StatsResponse{}))

	container.Add(ws)
}
