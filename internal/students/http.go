package students

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xaitan80/academy/internal/paging"
)

type registrationReq struct {
	UnitID    int64      `json:"unit_id"`
	Class     string     `json:"class"`
	Student   Form       `json:"student"`
	Guardians []Guardian `json:"guardians"`
}

func guardianUpdates(g Guardian) []GuardianUpdate {
	return []GuardianUpdate{
		SetGuardianName(g.Name), SetGuardianCPF(g.CPF), SetGuardianEmail(g.Email),
		SetGuardianPhone(g.Phone), SetGuardianAddress(g.Address),
	}
}

func RegisterRoutes(r *gin.Engine, repo *Repo, pageSize int) {
	if pageSize < 1 {
		pageSize = paging.DefaultPageSize
	}
	api := r.Group("/api/students")

	api.GET("", func(c *gin.Context) {
		crit, err := ParseCriteria(c.Query("unit"), c.Query("class"), c.Query("birth_year"), c.Query("position"), c.Query("q"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		list, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		number, size := paging.FromQuery(c.Request, pageSize)
		page := paging.Paginate(Filter(list, crit), number, size)
		c.JSON(http.StatusOK, gin.H{
			"criteria": crit,
			"items":    page.Items,
			"total":    page.Total,
			"page":     page.Number,
			"size":     page.Size,
			"pages":    page.Pages(),
		})
	})

	api.POST("/registrations", func(c *gin.Context) {
		var req registrationReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
			return
		}
		var reg Registration
		reg.Update(FormUpdates(req.Student)...)
		for _, g := range req.Guardians {
			if err := reg.AddGuardian(guardianUpdates(g)...); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		s, err := reg.ToStudent(req.UnitID, req.Class)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := repo.Register(c.Request.Context(), &s, time.Now().Year()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, s)
	})
}
