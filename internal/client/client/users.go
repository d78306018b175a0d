package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/vidhub/internal/client/models"
)

const (
	PathCurrentUser = "/users/get-current-user"
	PathLogin       = "/users/login"
	PathRegister    = "/users/register"
	PathUpdate      = "/users/update"
	PathAvatar      = "/users/avatar"
	PathCoverImage  = "/users/coverimage"
)

func channelPath(id string) string { return "/users/channel/" + url.PathEscape(id) }

// CurrentUser resolves the holder of the attached credential.
func (c *APIClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.getJSON(ctx, PathCurrentUser, nil, &u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		return nil, fmt.Errorf("current user: %w", ErrEmptyResponse)
	}
	return &u, nil
}

func (c *APIClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	var s models.Session
	if err := c.postJSON(ctx, PathLogin, models.LoginForm{Email: email, Password: password}, &s); err != nil {
		return nil, err
	}
	if s.Credential() == "" {
		return nil, fmt.Errorf("login: no credential in response: %w", ErrEmptyResponse)
	}
	return &s, nil
}

// Register posts the form as multipart/form-data. Image paths that are set
// are attached as files.
func (c *APIClient) Register(ctx context.Context, form models.RegisterForm) (*models.Session, error) {
	fields := map[string]string{
		"userName":        form.UserName,
		"email":           form.Email,
		"password":        form.Password,
		"confirmPassword": form.ConfirmPassword,
		"fullName":        form.FullName,
	}
	files := map[string]string{
		"avatar":     form.AvatarPath,
		"coverImage": form.CoverImagePath,
	}

	var s models.Session
	if err := c.postMultipart(ctx, PathRegister, fields, files, &s); err != nil {
		return nil, err
	}
	if s.Credential() == "" {
		return nil, fmt.Errorf("register: no credential in response: %w", ErrEmptyResponse)
	}
	return &s, nil
}

func (c *APIClient) ChannelProfile(ctx context.Context, channelID string) (*models.Channel, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, channelPath(channelID), nil, &raw); err != nil {
		return nil, err
	}
	var ch models.Channel
	if err := decodeFirst(raw, &ch); err != nil {
		return nil, fmt.Errorf("channel %s: %w", channelID, err)
	}
	return &ch, nil
}

func (c *APIClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	var u models.User
	if err := c.postJSON(ctx, PathUpdate, upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *APIClient) UpdateAvatar(ctx context.Context, imagePath string) (*models.User, error) {
	return c.updateImage(ctx, PathAvatar, "avatar", imagePath)
}

func (c *APIClient) UpdateCover(ctx context.Context, imagePath string) (*models.User, error) {
	return c.updateImage(ctx, PathCoverImage, "coverImage", imagePath)
}

func (c *APIClient) updateImage(ctx context.Context, path, field, imagePath string) (*models.User, error) {
	if imagePath == "" {
		return nil, errors.New("image path is required")
	}
	var u models.User
	if err := c.postMultipart(ctx, path, nil, map[string]string{field: imagePath}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *APIClient) postMultipart(ctx context.Context, path string, fields, files map[string]string, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("multipart field %s: %w", name, err)
		}
	}
	for name, filePath := range files {
		if filePath == "" {
			continue
		}
		if err := attachFile(mw, name, filePath); err != nil {
			return err
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("multipart close: %w", err)
	}

	return c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		body:        &buf,
		contentType: mw.FormDataContentType(),
	}, out)
}

func attachFile(mw *multipart.Writer, field, filePath string) error {
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", filePath, err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(filePath))
	if err != nil {
		return fmt.Errorf("multipart file %s: %w", field, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy %s: %w", filePath, err)
	}
	return nil
}
