package theme

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type view struct {
	Mode    Mode    `json:"mode"`
	Palette Palette `json:"palette"`
}

func viewOf(m Mode) view {
	return view{Mode: m, Palette: PaletteFor(m)}
}

// RegisterRoutes mounts the theme endpoints. Only these handlers hold the
// writable Context; everything else receives a Reader.
func RegisterRoutes(r *gin.Engine, c *Context) {
	api := r.Group("/api/theme")

	api.GET("", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, viewOf(c.Mode()))
	})

	api.POST("/toggle", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, viewOf(c.Toggle()))
	})

	api.PUT("", func(ctx *gin.Context) {
		var req struct {
			Mode string `json:"mode"`
		}
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		m, err := ParseMode(req.Mode)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.Set(m)
		ctx.JSON(http.StatusOK, viewOf(m))
	})
}
