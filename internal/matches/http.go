package matches

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xaitan80/academy/internal/fetch"
	"github.com/xaitan80/academy/internal/paging"
	"github.com/xaitan80/academy/internal/theme"
)

type Options struct {
	PageSize int
	// Latency delays every browser reload, like the remote call it stands in for.
	Latency time.Duration
	// SessionIdle drops a browser session nobody used for this long.
	SessionIdle time.Duration
}

const defaultSessionIdle = 30 * time.Minute

// ----- Response shapes -----

type row struct {
	Match
	Result Outcome `json:"result"`
	Accent string  `json:"accent"`
}

func accent(p theme.Palette, o Outcome) string {
	switch o {
	case Win:
		return p.Success
	case Loss:
		return p.Error
	}
	return p.TextLight
}

func toRows(list []Match, p theme.Palette) []row {
	out := make([]row, 0, len(list))
	for _, m := range list {
		o := m.Outcome()
		out = append(out, row{Match: m, Result: o, Accent: accent(p, o)})
	}
	return out
}

func resultJSON(res Result, p theme.Palette) gin.H {
	return gin.H{
		"criteria": res.View.Criteria,
		"items":    toRows(res.Page.Items, p),
		"total":    res.Page.Total,
		"page":     res.Page.Number,
		"size":     res.Page.Size,
		"pages":    res.Page.Pages(),
		"stats":    res.Stats,
	}
}

func criteriaFromQuery(c *gin.Context) (Criteria, error) {
	return ParseCriteria(c.Query("unit"), c.Query("kind"), c.Query("category"), c.Query("q"))
}

type criteriaReq struct {
	Unit     string `json:"unit"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Q        string `json:"q"`
}

// ----- Browser sessions -----

type session struct {
	b    *Browser
	seen time.Time
}

// sessions holds open browsers. Idle ones are swept whenever a new one is
// stored and are not returned by get.
type sessions struct {
	mu   sync.Mutex
	all  map[string]*session
	idle time.Duration
	now  func() time.Time
}

func newSessions(idle time.Duration) *sessions {
	return &sessions{all: map[string]*session{}, idle: idle, now: time.Now}
}

func (s *sessions) expired(e *session, now time.Time) bool {
	return now.Sub(e.seen) > s.idle
}

func (s *sessions) get(id string) (*Browser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.all[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(e, now) {
		delete(s.all, id)
		return nil, false
	}
	e.seen = now
	return e.b, true
}

func (s *sessions) put(id string, b *Browser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, e := range s.all {
		if s.expired(e, now) {
			delete(s.all, k)
		}
	}
	s.all[id] = &session{b: b, seen: now}
}

func (s *sessions) drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.all[id]
	delete(s.all, id)
	return ok
}

func (s *sessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.all)
}

func browserError(c *gin.Context, err error) {
	if errors.Is(err, fetch.ErrSuperseded) {
		c.JSON(http.StatusConflict, gin.H{"error": "superseded by a newer request"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// ----- Routes -----

func RegisterRoutes(r *gin.Engine, repo *Repo, th theme.Reader, opts Options) {
	if opts.PageSize < 1 {
		opts.PageSize = paging.DefaultPageSize
	}
	if opts.SessionIdle <= 0 {
		opts.SessionIdle = defaultSessionIdle
	}
	open := newSessions(opts.SessionIdle)

	filtered := func(c *gin.Context) ([]Match, bool) {
		crit, err := criteriaFromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
		list, err := repo.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return nil, false
		}
		return Filter(list, crit), true
	}

	api := r.Group("/api")
	{
		api.GET("/units", func(c *gin.Context) {
			units, err := repo.Units(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, units)
		})

		api.GET("/matches", func(c *gin.Context) {
			crit, err := criteriaFromQuery(c)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			list, err := repo.List(c.Request.Context())
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			page, size := paging.FromQuery(c.Request, opts.PageSize)
			v := ApplyFilterChange(NewView(size), crit).GotoPage(page)
			c.JSON(http.StatusOK, resultJSON(v.Run(list), th.Palette()))
		})

		api.GET("/matches/:id", func(c *gin.Context) {
			id, err := strconv.ParseInt(c.Param("id"), 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad id"})
				return
			}
			m, err := repo.Get(c.Request.Context(), id)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			o := m.Outcome()
			c.JSON(http.StatusOK, gin.H{
				"match":  m,
				"result": o,
				"accent": accent(th.Palette(), o),
				"goals":  m.Goals(),
			})
		})

		api.GET("/matches.csv", func(c *gin.Context) {
			list, ok := filtered(c)
			if !ok {
				return
			}
			filename := fmt.Sprintf("matches_%s.csv", time.Now().Format("2006-01-02"))
			c.Header("Content-Type", "text/csv; charset=utf-8")
			c.Header("Content-Disposition", "attachment; filename="+filename)
			if err := WriteCSV(c.Writer, list); err != nil {
				c.String(http.StatusInternalServerError, err.Error())
			}
		})

		api.GET("/matches.xlsx", func(c *gin.Context) {
			list, ok := filtered(c)
			if !ok {
				return
			}
			filename := fmt.Sprintf("matches_%s.xlsx", time.Now().Format("2006-01-02"))
			c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
			c.Header("Content-Disposition", "attachment; filename="+filename)
			if err := WriteXLSX(c.Writer, list); err != nil {
				c.String(http.StatusInternalServerError, err.Error())
			}
		})

		api.POST("/matches/import", func(c *gin.Context) {
			if err := c.Request.ParseMultipartForm(12 << 20); err != nil { // 12MB
				c.JSON(http.StatusBadRequest, gin.H{"error": "multipart too large"})
				return
			}
			fh, err := c.FormFile("file")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
				return
			}
			rows, rowErrs, err := parseImport(fh)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}

			imported := 0
			errs := make([]string, 0, len(rowErrs))
			for _, e := range rowErrs {
				errs = append(errs, e.Error())
			}
			for i := range rows {
				if err := repo.Create(c.Request.Context(), &rows[i]); err != nil {
					errs = append(errs, fmt.Sprintf("match %q: %v", rows[i].Opponent, err))
				} else {
					imported++
				}
			}
			c.JSON(http.StatusOK, gin.H{"imported": imported, "failed": len(errs), "errors": errs})
		})

		// Browser sessions keep a screen's filter and page on the server.
		api.POST("/matches/sessions", func(c *gin.Context) {
			b := NewBrowser(repo, opts.PageSize, opts.Latency)
			res, err := b.Refresh(c.Request.Context())
			if err != nil {
				browserError(c, err)
				return
			}
			id := uuid.NewString()
			open.put(id, b)
			body := resultJSON(res, th.Palette())
			body["session"] = id
			c.JSON(http.StatusCreated, body)
		})

		api.GET("/matches/sessions/:sid", func(c *gin.Context) {
			b, ok := open.get(c.Param("sid"))
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
				return
			}
			res, ok := b.Current()
			if !ok {
				var err error
				if res, err = b.Refresh(c.Request.Context()); err != nil {
					browserError(c, err)
					return
				}
			}
			c.JSON(http.StatusOK, resultJSON(res, th.Palette()))
		})

		api.PUT("/matches/sessions/:sid/criteria", func(c *gin.Context) {
			b, ok := open.get(c.Param("sid"))
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
				return
			}
			var req criteriaReq
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			crit, err := ParseCriteria(req.Unit, req.Kind, req.Category, req.Q)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			res, err := b.SetCriteria(c.Request.Context(), crit)
			if err != nil {
				browserError(c, err)
				return
			}
			c.JSON(http.StatusOK, resultJSON(res, th.Palette()))
		})

		api.PUT("/matches/sessions/:sid/page", func(c *gin.Context) {
			b, ok := open.get(c.Param("sid"))
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
				return
			}
			var req struct {
				Page int `json:"page"`
			}
			if err := c.BindJSON(&req); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "bad json"})
				return
			}
			res, err := b.SetPage(c.Request.Context(), req.Page)
			if err != nil {
				browserError(c, err)
				return
			}
			c.JSON(http.StatusOK, resultJSON(res, th.Palette()))
		})

		api.DELETE("/matches/sessions/:sid", func(c *gin.Context) {
			if !open.drop(c.Param("sid")) {
				c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
				return
			}
			c.Status(http.StatusNoContent)
		})
	}
}
