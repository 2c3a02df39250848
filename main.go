package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	dbpkg "github.com/xaitan80/academy/internal/db"
	"github.com/xaitan80/academy/internal/lineups"
	"github.com/xaitan80/academy/internal/matches"
	"github.com/xaitan80/academy/internal/mockdata"
	"github.com/xaitan80/academy/internal/paging"
	"github.com/xaitan80/academy/internal/payments"
	"github.com/xaitan80/academy/internal/students"
	"github.com/xaitan80/academy/internal/theme"
)

var version = "v0.1.0-dev"

var (
	dbFlag = &cli.StringFlag{
		Name:    "db",
		Usage:   "sqlite DSN for the mock data (default keeps it in memory)",
		Value:   dbpkg.MemoryDSN,
		EnvVars: []string{"DB_PATH"},
	}
	filterFlags = []cli.Flag{
		&cli.StringFlag{Name: "unit", Usage: "unit id or \"all\"", Value: "all"},
		&cli.StringFlag{Name: "kind", Usage: "Championship, Friendly or \"all\"", Value: "all"},
		&cli.StringFlag{Name: "category", Usage: "u11, u13, u15 or \"all\"", Value: "all"},
		&cli.StringFlag{Name: "q", Usage: "text to look for in the opponent name"},
	}
)

func main() {
	app := &cli.App{
		Name:    "academy",
		Usage:   "Back end of the academy console, with mock data",
		Version: version,
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Serve the console API",
				Flags: []cli.Flag{
					dbFlag,
					&cli.StringFlag{Name: "addr", Value: ":8080", EnvVars: []string{"ADDR"}},
					&cli.StringFlag{
						Name:    "trusted-proxies",
						Usage:   "comma-separated CIDRs/IPs",
						Value:   "127.0.0.1,::1",
						EnvVars: []string{"TRUSTED_PROXIES"},
					},
					&cli.IntFlag{Name: "page-size", Value: paging.DefaultPageSize, EnvVars: []string{"PAGE_SIZE"}},
					&cli.DurationFlag{
						Name:    "fetch-latency",
						Usage:   "simulated delay of match reloads",
						Value:   400 * time.Millisecond,
						EnvVars: []string{"FETCH_LATENCY"},
					},
					&cli.DurationFlag{
						Name:    "session-idle",
						Usage:   "drop match browser sessions unused for this long",
						Value:   30 * time.Minute,
						EnvVars: []string{"SESSION_IDLE"},
					},
					&cli.StringFlag{Name: "theme", Value: string(theme.Light), EnvVars: []string{"THEME"}},
				},
				Action: serve,
			},
			{
				Name:   "stats",
				Usage:  "Print match statistics for a filter as YAML",
				Flags:  append([]cli.Flag{dbFlag, outputFlag()}, filterFlags...),
				Action: stats,
			},
			{
				Name:   "export",
				Usage:  "Write the filtered match history to an .xlsx or .csv file",
				Flags:  append([]cli.Flag{dbFlag, outputFlag()}, filterFlags...),
				Action: export,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "file to write, or \"-\" for stdout",
		Value:   "-",
	}
}

func openSeeded(ctx context.Context, dsn string) (*gorm.DB, error) {
	d, err := dbpkg.Open(dsn)
	if err != nil {
		return nil, err
	}
	if err := mockdata.Seed(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func serve(cCtx *cli.Context) error {
	mode, err := theme.ParseMode(cCtx.String("theme"))
	if err != nil {
		return err
	}
	d, err := openSeeded(cCtx.Context, cCtx.String("db"))
	if err != nil {
		return err
	}
	th := theme.New(mode)
	pageSize := cCtx.Int("page-size")

	r := gin.Default()
	r.Use(requestID())
	tp := strings.Split(cCtx.String("trusted-proxies"), ",")
	for i := range tp {
		tp[i] = strings.TrimSpace(tp[i])
	}
	if err := r.SetTrustedProxies(tp); err != nil {
		return fmt.Errorf("trusted proxies: %w", err)
	}

	theme.RegisterRoutes(r, th)
	matches.RegisterRoutes(r, matches.NewRepo(d), th, matches.Options{
		PageSize:    pageSize,
		Latency:     cCtx.Duration("fetch-latency"),
		SessionIdle: cCtx.Duration("session-idle"),
	})
	payments.RegisterRoutes(r, payments.NewRepo(d), th, pageSize)
	students.RegisterRoutes(r, students.NewRepo(d), pageSize)
	lineups.RegisterRoutes(r, lineups.NewRepo(d))

	addr := cCtx.String("addr")
	log.Printf("listening on %s", addr)
	return r.Run(addr)
}

// requestID tags every request so log lines and responses can be matched.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func filteredMatches(cCtx *cli.Context) (matches.Criteria, []matches.Match, error) {
	crit, err := matches.ParseCriteria(cCtx.String("unit"), cCtx.String("kind"), cCtx.String("category"), cCtx.String("q"))
	if err != nil {
		return matches.Criteria{}, nil, err
	}
	d, err := openSeeded(cCtx.Context, cCtx.String("db"))
	if err != nil {
		return matches.Criteria{}, nil, err
	}
	all, err := matches.NewRepo(d).List(cCtx.Context)
	if err != nil {
		return matches.Criteria{}, nil, err
	}
	return crit, matches.Filter(all, crit), nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

type statsReport struct {
	Criteria matches.Criteria   `yaml:"criteria"`
	Stats    matches.Statistics `yaml:"statistics"`
}

func stats(cCtx *cli.Context) error {
	crit, list, err := filteredMatches(cCtx)
	if err != nil {
		return err
	}
	out, err := openOutput(cCtx.String("output"))
	if err != nil {
		return err
	}
	defer out.Close()

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(statsReport{Criteria: crit, Stats: matches.ComputeStatistics(list)}); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	return enc.Close()
}

func export(cCtx *cli.Context) error {
	_, list, err := filteredMatches(cCtx)
	if err != nil {
		return err
	}
	path := cCtx.String("output")
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if strings.HasSuffix(strings.ToLower(path), ".csv") || path == "-" {
		return matches.WriteCSV(out, list)
	}
	return matches.WriteXLSX(out, list)
}
