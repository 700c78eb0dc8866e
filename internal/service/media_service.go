package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/h2non/filetype"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"postdeck/internal/api"
	"postdeck/internal/transfer"
)

// Extensions the upload endpoint accepts. Sniffed from content, not from
// the file name.
var allowedMediaTypes = map[string]struct{}{
	"mp4": {}, "mov": {}, "jpeg": {}, "png": {}, "jpg": {}, "gif": {},
}

type MediaService interface {
	Upload(ctx context.Context, file *transfer.UploadFile) (*transfer.UploadResponse, error)
}

type mediaService struct {
	c *api.Client
}

func NewMediaService(c *api.Client) MediaService {
	return &mediaService{
		c: c,
	}
}

// Upload sends one file to the upload endpoint. Callers issue one call
// per file and put the results back in selection order themselves.
func (s *mediaService) Upload(ctx context.Context, file *transfer.UploadFile) (*transfer.UploadResponse, error) {
	if file == nil || len(file.Data) == 0 {
		err := errors.New("no file data provided")
		slog.Info(err.Error())
		return nil, err
	}

	kind, err := filetype.Match(file.Data)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	if _, ok := allowedMediaTypes[kind.Extension]; !ok {
		err = fmt.Errorf("unsupported media type: %s", kind.Extension)
		slog.Info(err.Error())
		return nil, err
	}

	key, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	name := key + filepath.Ext(file.Name)
	if filepath.Ext(file.Name) == "" {
		name = key + "." + kind.Extension
	}

	fields := map[string]string{
		"postId":    file.PostID,
		"projectId": file.ProjectID,
	}

	var resp transfer.UploadResponse
	if err := s.c.Upload(ctx, "posts/upload", "file", name, file.Data, fields, &resp); err != nil {
		return nil, err
	}
	if resp.Location() == "" {
		return nil, api.NewError(api.KindServerError, "upload response carries no file reference")
	}
	return &resp, nil
}
