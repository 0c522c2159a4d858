package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/pradiptara/devconnect/internal/interface/http"
)

// UserModule wires user HTTP handlers into routes.
// Public: POST /api/users (registration).
type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)
}
