package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"wedump/internal/delivery/api/response"
	"wedump/internal/domain/entity"
	domainerrors "wedump/internal/domain/errors"
	"wedump/internal/errors"
	"wedump/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	Feed   usecase.FeedUsecase
	Logger *slog.Logger
}

// FeedHandler serves the wall, the user list and the photo actions.
type FeedHandler struct {
	feed   usecase.FeedUsecase
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feed:   params.Feed,
		logger: params.Logger,
	}
}

// PhotoIDParam is the photo id path parameter.
type PhotoIDParam struct {
	ID string `param:"id" validate:"required"`
}

// CommentRequest is the body of a comment post.
type CommentRequest struct {
	PhotoIDParam
	Text string `json:"text" form:"text"`
}

// PreviewResponse carries an inline preview of an image.
type PreviewResponse struct {
	DataURL string `json:"data_url"`
}

// ListPhotos returns the current wall
func (h *FeedHandler) ListPhotos(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.Photos())
}

// ReloadPhotos reloads the wall from the store and returns it
func (h *FeedHandler) ReloadPhotos(c echo.Context) error {
	if err := h.feed.LoadPhotos(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.feed.Photos())
}

// ListUsers returns the loaded user profiles
func (h *FeedHandler) ListUsers(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.Users())
}

// GetStats returns the sidebar counters
func (h *FeedHandler) GetStats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.feed.Stats())
}

// UploadPhoto stores a multipart image with its caption
func (h *FeedHandler) UploadPhoto(c echo.Context) error {
	file, err := readImageFile(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	photo, err := h.feed.UploadPhoto(c.Request().Context(), usecase.UploadPhotoInput{
		File:    file,
		Caption: c.FormValue("caption"),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusCreated, photo, response.ToastSuccess, "Photo uploaded successfully!")
}

// PreviewPhoto validates a multipart image and returns it as a data URL
func (h *FeedHandler) PreviewPhoto(c echo.Context) error {
	file, err := readImageFile(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	preview, err := h.feed.PreviewImage(c.Request().Context(), file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PreviewResponse{DataURL: preview})
}

// ToggleLike likes or unlikes a photo
func (h *FeedHandler) ToggleLike(c echo.Context) error {
	var req PhotoIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.feed.ToggleLike(c.Request().Context(), req.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// DeletePhoto removes one of the caller's photos
func (h *FeedHandler) DeletePhoto(c echo.Context) error {
	var req PhotoIDParam
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.feed.DeletePhoto(c.Request().Context(), req.ID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithToast(c, http.StatusOK, nil, response.ToastSuccess, "Photo deleted")
}

// CommentOnPhoto posts a comment on a photo
func (h *FeedHandler) CommentOnPhoto(c echo.Context) error {
	var req CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.feed.CommentOnPhoto(c.Request().Context(), req.ID, req.Text); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

// readImageFile reads the "file" part of a multipart form.
func readImageFile(c echo.Context) (*entity.ImageFile, error) {
	header, err := c.FormFile("file")
	if err != nil {
		if errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart) {
			return nil, domainerrors.ErrNoFileSelected
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	data, err := readPart(header)
	if err != nil {
		return nil, errors.Wrap(err, "read upload")
	}

	return &entity.ImageFile{
		Name:        header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Data:        data,
	}, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	src, err := header.Open()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)

	return data, errors.WithStack(err)
}
