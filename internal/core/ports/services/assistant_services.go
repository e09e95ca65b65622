package services

import (
	"context"

	"github.com/bukupintar/bukupintar_app/internal/dto"
)

// AssistantSvcFacade defines the AI business assistant surface
type AssistantSvcFacade interface {
	// Query answers a free-text question about the business, grounding
	// the model on the serialized business snapshot. Failures of the
	// underlying completion call are recovered into a fixed fallback
	// reply, never an error to the caller.
	Query(ctx context.Context, userText string) (*dto.AssistantReplyResponse, error)
}

// AssistantCompleter is the capability interface over the external
// generative-language API: one prompt in, one free-text reply out.
type AssistantCompleter interface {
	Complete(ctx context.Context, systemPrompt, userText string) (string, error)
}
