package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"postdeck/internal/api"
	"postdeck/internal/transfer"
)

type AIService interface {
	GenerateText(ctx context.Context, prompt, provider string) (*transfer.AITextResponse, error)
	GenerateImage(ctx context.Context, prompt, provider string) (*transfer.AIImageResponse, error)
}

type aiService struct {
	c *api.Client
}

func NewAIService(c *api.Client) AIService {
	return &aiService{
		c: c,
	}
}

func (s *aiService) GenerateText(ctx context.Context, prompt, provider string) (*transfer.AITextResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		err := errors.New("prompt cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.AITextResponse
	err := s.c.Do(ctx, http.MethodPost, "ai/generate-text", &transfer.AIGenerationRequest{
		Prompt:   prompt,
		Provider: provider,
	}, true, &resp)
	if err != nil {
		// Generation failures keep the server's wording; the provider's
		// message is the only useful diagnostic.
		return nil, err
	}
	return &resp, nil
}

func (s *aiService) GenerateImage(ctx context.Context, prompt, provider string) (*transfer.AIImageResponse, error) {
	if strings.TrimSpace(prompt) == "" {
		err := errors.New("prompt cannot be empty")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.AIImageResponse
	err := s.c.Do(ctx, http.MethodPost, "ai/generate-image", &transfer.AIGenerationRequest{
		Prompt:   prompt,
		Provider: provider,
	}, true, &resp)
	if err != nil {
		return nil, err
	}
	if resp.URL != "" {
		resp.URL = s.c.FileURL(resp.URL)
	}
	return &resp, nil
}
