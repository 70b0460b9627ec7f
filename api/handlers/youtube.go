// ABOUTME: YouTube handlers for the Huma API
// ABOUTME: Resolves video links and builds embed and thumbnail URLs

package handlers

import (
	"context"
	"net/http"

	"textkit/api/dto/requests"
	"textkit/api/dto/responses"
	"textkit/core/errors"
	"textkit/pkg/utils/youtube"

	"github.com/danielgtaylor/huma/v2"
)

// YouTubeHandler handles video link requests
type YouTubeHandler struct{}

// NewYouTubeHandler creates a new YouTube handler
func NewYouTubeHandler() *YouTubeHandler {
	return &YouTubeHandler{}
}

// RegisterRoutes registers all YouTube routes
func (h *YouTubeHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "resolveVideo",
		Method:      http.MethodPost,
		Path:        "/youtube/resolve",
		Summary:     "Resolve a YouTube link",
		Description: "Extracts the video ID from a bare ID, a v= query parameter or the last path segment",
		Tags:        []string{"YouTube"},
	}, h.Resolve)

	huma.Register(api, huma.Operation{
		OperationID: "videoEmbed",
		Method:      http.MethodGet,
		Path:        "/youtube/{id}/embed",
		Summary:     "Build iframe markup for a video",
		Tags:        []string{"YouTube"},
	}, h.Embed)

	huma.Register(api, huma.Operation{
		OperationID: "videoThumbnail",
		Method:      http.MethodGet,
		Path:        "/youtube/{id}/thumbnail",
		Summary:     "Build a thumbnail URL for a video",
		Tags:        []string{"YouTube"},
	}, h.Thumbnail)
}

// ResolveInput defines the input for the Resolve operation
type ResolveInput struct {
	Body requests.ResolveVideoRequest
}

// ResolveOutput defines the output for the Resolve operation
type ResolveOutput struct {
	Body responses.VideoResponse
}

// EmbedInput defines the input for the Embed operation
type EmbedInput struct {
	ID          string `path:"id" doc:"Video ID"`
	Width       int    `query:"width" default:"560" minimum:"1" maximum:"7680" doc:"iframe width"`
	Height      int    `query:"height" default:"315" minimum:"1" maximum:"4320" doc:"iframe height"`
	HideRelated bool   `query:"hide_related" doc:"Suppress related videos"`
	HTML5       bool   `query:"html5" doc:"Force the HTML5 player"`
	Autoplay    bool   `query:"autoplay" doc:"Start playback on load"`
}

// EmbedOutput defines the output for the Embed operation
type EmbedOutput struct {
	Body responses.EmbedResponse
}

// ThumbnailInput defines the input for the Thumbnail operation
type ThumbnailInput struct {
	ID      string `path:"id" doc:"Video ID"`
	Quality string `query:"quality" default:"default" enum:"default,mqdefault,hqdefault,sddefault,maxresdefault" doc:"Thumbnail rendition"`
}

// ThumbnailOutput defines the output for the Thumbnail operation
type ThumbnailOutput struct {
	Body responses.ThumbnailResponse
}

func videoNotFound(id string) error {
	return toHumaError(&errors.NotFoundError{Resource: "video", ID: id})
}

// Resolve handles POST /youtube/resolve
func (h *YouTubeHandler) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	id, ok := youtube.VideoID(input.Body.URL)
	if !ok {
		return nil, videoNotFound(input.Body.URL)
	}

	out := &ResolveOutput{}
	out.Body.VideoID = id
	out.Body.WatchURL, _ = youtube.WatchURL(id)
	out.Body.EmbedURL, _ = youtube.EmbedURL(id, youtube.EmbedOptions{})
	out.Body.Thumbnail, _ = youtube.Thumbnail(id, youtube.ThumbnailHigh)
	return out, nil
}

// Embed handles GET /youtube/{id}/embed
func (h *YouTubeHandler) Embed(ctx context.Context, input *EmbedInput) (*EmbedOutput, error) {
	opts := youtube.EmbedOptions{
		HideRelated: input.HideRelated,
		HTML5:       input.HTML5,
		Autoplay:    input.Autoplay,
	}
	markup, ok := youtube.Embed(input.ID, input.Width, input.Height, opts)
	if !ok {
		return nil, videoNotFound(input.ID)
	}

	out := &EmbedOutput{}
	out.Body.HTML = markup
	out.Body.URL, _ = youtube.EmbedURL(input.ID, opts)
	return out, nil
}

// Thumbnail handles GET /youtube/{id}/thumbnail
func (h *YouTubeHandler) Thumbnail(ctx context.Context, input *ThumbnailInput) (*ThumbnailOutput, error) {
	url, ok := youtube.Thumbnail(input.ID, youtube.ThumbnailQuality(input.Quality))
	if !ok {
		return nil, videoNotFound(input.ID)
	}

	out := &ThumbnailOutput{}
	out.Body.URL = url
	return out, nil
}
