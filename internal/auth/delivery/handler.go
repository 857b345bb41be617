package delivery

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	authdto "task-manager-api/internal/auth/dto"
	"task-manager-api/internal/auth/usecase"
	"task-manager-api/pkg/avatar"

	"github.com/gin-gonic/gin"
)

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(authUsecase usecase.AuthUsecase) *UserHandler {
	return &UserHandler{
		authUsecase: authUsecase,
	}
}

// Signup creates a new account
// POST /users
func (h *UserHandler) Signup(c *gin.Context) {
	var req authdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authUsecase.Signup(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login verifies credentials and issues a token
// POST /users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token
// POST /users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(CurrentToken(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// LogoutAll revokes every session of the caller
// POST /users/logoutAll
func (h *UserHandler) LogoutAll(c *gin.Context) {
	if err := h.authUsecase.LogoutAll(CurrentUser(c).ID); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// Me returns the caller's own record
// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}

// UpdateProfile applies an allow-listed profile update
// PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	// DisallowUnknownFields enforces the update allow-list at the decoding
	// boundary: any key outside {name, email, password, age} is rejected.
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()

	var req authdto.UpdateProfileRequest
	if err := dec.Decode(&req); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid update operation"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	user, err := h.authUsecase.UpdateProfile(CurrentUser(c), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteProfile removes the caller's account, tasks included
// DELETE /users/me
func (h *UserHandler) DeleteProfile(c *gin.Context) {
	user := CurrentUser(c)
	if err := h.authUsecase.DeleteProfile(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadAvatar stores a normalized 250x250 PNG avatar
// POST /users/me/avatar
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "avatar file is required"})
		return
	}

	if !avatar.AllowedFilename(fileHeader.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": avatar.ErrNotAnImage.Error()})
		return
	}
	if fileHeader.Size > avatar.MaxBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the maximum size of 1000000 bytes"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	normalized, err := avatar.Normalize(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authUsecase.SetAvatar(CurrentUser(c), normalized); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteAvatar clears the stored avatar
// DELETE /users/me/avatar
func (h *UserHandler) DeleteAvatar(c *gin.Context) {
	if err := h.authUsecase.ClearAvatar(CurrentUser(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// GetAvatar serves any user's avatar, no auth required
// GET /users/:id/avatar
func (h *UserHandler) GetAvatar(c *gin.Context) {
	data, err := h.authUsecase.GetAvatar(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "404!Not found!"})
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "image/png", data)
}
