package public

import (
	"github.com/gin-gonic/gin"

	"github.com/binimoy-shop/internal/http/handlers/shared"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	shared.RespondError(c, code, msg, err)
}
