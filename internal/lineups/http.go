package lineups

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xaitan80/academy/internal/matches"
)

func RegisterRoutes(r *gin.Engine, repo *Repo) {
	api := r.Group("/api")
	{
		api.GET("/units/:id/fixtures", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad unit id"})
				return
			}
			list, err := repo.FixturesByUnit(c.Request.Context(), id)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, list)
		})

		api.GET("/fixtures/:id/lineups/:category", func(c *gin.Context) {
			id, cat, ok := lineupKey(c)
			if !ok {
				return
			}
			l, err := repo.LineupFor(c.Request.Context(), id, cat)
			if err != nil {
				lineupError(c, err)
				return
			}
			c.JSON(http.StatusOK, l)
		})

		api.PUT("/fixtures/:id/lineups/:category/:position", func(c *gin.Context) {
			id, cat, ok := lineupKey(c)
			if !ok {
				return
			}
			position := strings.ToUpper(strings.TrimSpace(c.Param("position")))
			var p matches.Player
			if err := c.BindJSON(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			if p.ID <= 0 || strings.TrimSpace(p.Name) == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "player needs id and name"})
				return
			}
			l, err := repo.Assign(c.Request.Context(), id, cat, position, p)
			if err != nil {
				lineupError(c, err)
				return
			}
			c.JSON(http.StatusOK, l)
		})
	}
}

func lineupKey(c *gin.Context) (int64, matches.Category, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad fixture id"})
		return 0, "", false
	}
	cat, err := matches.ParseCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return 0, "", false
	}
	return id, cat, true
}

func lineupError(c *gin.Context, err error) {
	if errors.Is(err, ErrFixtureNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "fixture not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
