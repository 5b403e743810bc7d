package response

import (
	goerrors "errors"
	"fmt"
	"net/http"

	"engagement-srv/pkg/discord"
	"engagement-srv/pkg/errors"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: 0,
		Message:   "Success",
		Data:      data,
	})
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

// Error writes an error response. Mapped HTTPErrors keep their status code;
// anything else becomes a 500 and is reported to Discord when configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	var httpErr *errors.HTTPError
	if goerrors.As(err, &httpErr) {
		c.JSON(httpErr.StatusCode, Resp{
			ErrorCode: httpErr.StatusCode,
			Message:   httpErr.Message,
		})
		return
	}

	if d != nil {
		_ = d.ReportBug(c.Request.Context(),
			fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}

// PanicError writes a 500 for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.ReportBug(c.Request.Context(),
			fmt.Sprintf("panic at %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: http.StatusInternalServerError,
		Message:   "Internal server error",
	})
}
