package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"postdeck/internal/api"
	"postdeck/internal/session"
	"postdeck/internal/transfer"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (*transfer.AuthResponse, error)
	Register(ctx context.Context, r *transfer.RegisterRequest) (*transfer.AuthResponse, error)
	Logout() error
}

type authService struct {
	c *api.Client
	s *session.Session
}

func NewAuthService(c *api.Client, s *session.Session) AuthService {
	return &authService{
		c: c,
		s: s,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*transfer.AuthResponse, error) {
	if email == "" || password == "" {
		err := errors.New("email and password are required")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.AuthResponse
	err := s.c.Do(ctx, http.MethodPost, "auth/login", &transfer.LoginRequest{
		Email:    email,
		Password: password,
	}, false, &resp)
	if err != nil {
		return nil, err
	}

	// Stored-credential side effect: only a login establishes the session.
	if resp.Token != "" {
		if err := s.s.SetToken(resp.Token); err != nil {
			return nil, err
		}
	}

	return &resp, nil
}

func (s *authService) Register(ctx context.Context, r *transfer.RegisterRequest) (*transfer.AuthResponse, error) {
	if r == nil {
		err := errors.New("registration data is nil")
		slog.Error(err.Error())
		return nil, err
	}
	if strings.TrimSpace(r.Name) == "" || r.Email == "" || r.Password == "" {
		err := errors.New("name, email and password are required")
		slog.Info(err.Error())
		return nil, err
	}
	if r.ConfirmPassword != "" && r.Password != r.ConfirmPassword {
		err := errors.New("passwords do not match")
		slog.Info(err.Error())
		return nil, err
	}

	var resp transfer.AuthResponse
	if err := s.c.Do(ctx, http.MethodPost, "auth/register", r, false, &resp); err != nil {
		return nil, err
	}

	return &resp, nil
}

func (s *authService) Logout() error {
	return s.s.Clear()
}
