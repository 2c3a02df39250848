package payments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xaitan80/academy/internal/paging"
	"github.com/xaitan80/academy/internal/theme"
)

type row struct {
	Payment
	Amount string `json:"amount"`
	Badge  string `json:"badge"`
}

func badge(p theme.Palette, s Status) string {
	if s == Paid {
		return p.Success
	}
	return p.Error
}

func RegisterRoutes(r *gin.Engine, repo *Repo, th theme.Reader, pageSize int) {
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	api := r.Group("/api")

	api.GET("/payments", func(c *gin.Context) {
		crit, err := ParseCriteria(c.Query("status"), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		list, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		filtered := Filter(list, crit)
		number, size := paging.FromQuery(c.Request, pageSize)
		page := paging.Paginate(filtered, number, size)

		pal := th.Palette()
		items := make([]row, 0, len(page.Items))
		for _, p := range page.Items {
			items = append(items, row{Payment: p, Amount: p.Amount(), Badge: badge(pal, p.Status)})
		}
		c.JSON(http.StatusOK, gin.H{
			"criteria": crit,
			"items":    items,
			"total":    page.Total,
			"page":     page.Number,
			"size":     page.Size,
			"pages":    page.Pages(),
			"summary":  Summarize(filtered),
		})
	})
}
