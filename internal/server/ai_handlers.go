package server

import (
	"errors"
	"net/http"

	"fluidcontent/internal/core"
	"fluidcontent/internal/tts"
)

// handleProcessContent handles POST /api/process-content. It runs the full
// adaptation pipeline for one profile/content pair.
func (s *Server) handleProcessContent(w http.ResponseWriter, r *http.Request) {
	var req core.AdaptationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	adapted, err := s.deps.Adapter.Adapt(r.Context(), req.Profile, req.Content)
	if err != nil {
		s.respondAdaptationError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, adapted)
}

// ExtractTagsRequest is the payload for POST /api/extract-tags.
type ExtractTagsRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	// ArticleID, when set, persists the extracted tags on the stored article.
	ArticleID string `json:"article_id,omitempty"`
}

// ExtractTagsResponse carries the normalized tag labels.
type ExtractTagsResponse struct {
	Tags []string `json:"general_tags"`
}

// handleExtractTags handles POST /api/extract-tags
func (s *Server) handleExtractTags(w http.ResponseWriter, r *http.Request) {
	var req ExtractTagsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" || req.Body == "" {
		s.respondError(w, http.StatusBadRequest, "Title and body are required")
		return
	}

	extracted, err := s.deps.Tagger.Extract(r.Context(), req.Title, req.Body)
	if err != nil {
		s.respondAdaptationError(w, err)
		return
	}

	if req.ArticleID != "" {
		if err := s.store.UpdateArticleTags(req.ArticleID, extracted); err != nil {
			s.log.Warn("Failed to persist tags on article", "article_id", req.ArticleID, "error", err)
		}
	}

	s.respondJSON(w, http.StatusOK, ExtractTagsResponse{Tags: extracted})
}

// InteractiveHTMLResponse is the payload returned by POST /api/interactive-html.
type InteractiveHTMLResponse struct {
	ID         string                    `json:"id"`
	Filename   string                    `json:"filename"`
	HTML       string                    `json:"html"`
	Confidence core.ExtractionConfidence `json:"confidence"`
}

// handleInteractiveHTML handles POST /api/interactive-html. The generated
// document is returned immediately; disk persistence happens in the
// background so a slow filesystem never delays the response.
func (s *Server) handleInteractiveHTML(w http.ResponseWriter, r *http.Request) {
	var req core.AdaptationRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	artifact, err := s.deps.Generator.Generate(r.Context(), req.Profile, req.Content)
	if err != nil {
		s.respondAdaptationError(w, err)
		return
	}

	s.deps.Writer.WriteAsync(artifact)
	if err := s.store.SaveArtifactMeta(*artifact); err != nil {
		s.log.Warn("Failed to index artifact", "artifact_id", artifact.ID, "error", err)
	}

	s.respondJSON(w, http.StatusOK, InteractiveHTMLResponse{
		ID:         artifact.ID,
		Filename:   artifact.Filename,
		HTML:       artifact.HTML,
		Confidence: artifact.Confidence,
	})
}

// VoiceSelectionResponse carries the resolved synthesis voice.
type VoiceSelectionResponse struct {
	VoiceID string `json:"voice_id"`
}

// handleVoiceSelection handles POST /api/voice-selection. Selection is a
// pure lookup and always succeeds.
func (s *Server) handleVoiceSelection(w http.ResponseWriter, r *http.Request) {
	var profile core.UserProfile
	if !s.decodeJSON(w, r, &profile) {
		return
	}

	s.respondJSON(w, http.StatusOK, VoiceSelectionResponse{
		VoiceID: tts.SelectVoice(profile),
	})
}

// respondAdaptationError maps pipeline errors onto HTTP statuses. Malformed
// model output is logged with a bounded preview so the raw response is
// never echoed to clients.
func (s *Server) respondAdaptationError(w http.ResponseWriter, err error) {
	var malformed *core.MalformedResponseError
	switch {
	case errors.Is(err, core.ErrMissingTitle), errors.Is(err, core.ErrEmptyContent):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &malformed):
		s.log.Error("Model returned malformed response", "preview", malformed.RawPreview(500))
		s.respondError(w, http.StatusInternalServerError, "Model returned a malformed response")
	case errors.Is(err, core.ErrGenerationFailed):
		s.log.Error("Generation failed", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Content generation failed")
	default:
		s.log.Error("Unexpected pipeline error", "error", err)
		s.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
