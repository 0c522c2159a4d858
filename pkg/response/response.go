package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// FieldError is one entry of the errors array returned to the caller.
// Param and Location are filled for validation failures; duplicate-account
// errors carry only Msg.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param,omitempty"`
	Location string `json:"location,omitempty"`
}

// Errors writes a 400-style body: {"errors":[{...}, ...]}
func Errors(c *gin.Context, status int, errs []FieldError) {
	c.JSON(status, gin.H{"errors": errs})
}

// ErrorMsg writes a single-message errors body, e.g. a duplicate account.
func ErrorMsg(c *gin.Context, status int, msg string) {
	Errors(c, status, []FieldError{{Msg: msg}})
}

// ServerError writes the opaque failure signal. No internal detail is ever
// echoed to the caller; the underlying error is logged server-side.
func ServerError(c *gin.Context) {
	c.String(http.StatusInternalServerError, "Server error")
}
