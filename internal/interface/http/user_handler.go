package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/pradiptara/devconnect/internal/application"
	"github.com/pradiptara/devconnect/pkg/response"
	"github.com/pradiptara/devconnect/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// registerMessages are the caller-facing validation messages, keyed by
// JSON field name.
var registerMessages = map[string]string{
	"name":     "Name is required",
	"email":    "Please include a valid email",
	"password": "Please enter a password with 6 or more characters",
}

// Register handles POST /api/users. On success the response body is
// {"token": "..."}; validation and duplicate failures return a 400 with an
// errors array; anything else is an opaque 500.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Errors(c, http.StatusBadRequest, validation.ToFieldErrors(err, registerMessages))
		return
	}

	_, token, err := h.Svc.Register(c.Request.Context(), userapp.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrUserExists) {
			response.ErrorMsg(c, http.StatusBadRequest, "User already exists")
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).WithFields(logrus.Fields{
				"request_id": c.GetString("request_id"),
				"email":      req.Email,
			}).Error("registration failed")
		}
		response.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
