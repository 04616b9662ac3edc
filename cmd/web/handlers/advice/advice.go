// Package advice exposes the LLM-backed recommendation endpoints. Every
// handler builds a deterministic prompt, relays it through OpenRouter and
// returns both the raw markdown and a sanitized HTML rendering.
package advice

import (
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"thirdcoast.systems/tubescan/cmd/web/handlers/common"
	"thirdcoast.systems/tubescan/internal/config"
	"thirdcoast.systems/tubescan/internal/openrouter"
	"thirdcoast.systems/tubescan/pkg/utils/language"
	"thirdcoast.systems/tubescan/pkg/utils/markdown"
)

type adviceResponse struct {
	Advice string        `json:"advice"`
	HTML   template.HTML `json:"html"`
}

type seoAdviceRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Hashtags     []string `json:"hashtags"`
	ViewCount    int64    `json:"viewCount"`
	LikeCount    int64    `json:"likeCount"`
	CommentCount int64    `json:"commentCount"`
	Language     string   `json:"language"`
}

// HandleSEOAdvice generates improvement suggestions for a video's title,
// description and hashtags.
func HandleSEOAdvice(llm *openrouter.Client, conf *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req seoAdviceRequest
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid request body")
		}
		if strings.TrimSpace(req.Title) == "" {
			return common.ErrBadRequest("title is required")
		}

		prompt := openrouter.SEOAdvicePrompt(openrouter.SEOAdviceParams{
			Title:        req.Title,
			Description:  req.Description,
			Hashtags:     req.Hashtags,
			ViewCount:    req.ViewCount,
			LikeCount:    req.LikeCount,
			CommentCount: req.CommentCount,
		})

		return relay(c, llm, conf, req.Language, prompt)
	}
}

type captionRequest struct {
	Caption  string `json:"caption"`
	Language string `json:"language"`
}

// HandleCaptionAdvice critiques a caption or comment draft.
func HandleCaptionAdvice(llm *openrouter.Client, conf *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req captionRequest
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid request body")
		}
		if strings.TrimSpace(req.Caption) == "" {
			return common.ErrBadRequest("caption is required")
		}

		return relay(c, llm, conf, req.Language, openrouter.CaptionAdvicePrompt(req.Caption))
	}
}

// HandleParody rewrites a caption as a parody.
func HandleParody(llm *openrouter.Client, conf *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req captionRequest
		if err := c.Bind(&req); err != nil {
			return common.ErrBadRequest("invalid request body")
		}
		if strings.TrimSpace(req.Caption) == "" {
			return common.ErrBadRequest("caption is required")
		}

		return relay(c, llm, conf, req.Language, openrouter.ParodyPrompt(req.Caption))
	}
}

func relay(c echo.Context, llm *openrouter.Client, conf *config.Config, lang, prompt string) error {
	if strings.TrimSpace(conf.OpenRouterAPIKey) == "" {
		return common.ErrBadRequest("openrouter api key is not configured")
	}

	if lang == "" {
		lang = conf.AnalysisLanguage
	}

	text, err := llm.Chat(c.Request().Context(), openrouter.ChatParams{
		APIKey:   conf.OpenRouterAPIKey,
		Model:    conf.OpenRouterModel,
		Language: language.Normalize(lang),
		Prompt:   prompt,
	})
	if err != nil {
		slog.Error("openrouter request failed", "error", err)
		return common.ErrBadGateway("advice generation failed")
	}

	return c.JSON(http.StatusOK, adviceResponse{
		Advice: text,
		HTML:   markdown.New(text).Render(),
	})
}
