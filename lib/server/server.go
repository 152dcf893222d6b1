package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/stignore-agent/frontend"
	"github.com/pescuma/stignore-agent/lib/agent"
)

type Options struct {
	Port uint
}

func Run(a *agent.Agent, opts *Options) error {
	s := newServer(a, opts)

	a.Console().Printf("Monitoring content types: %v\n", a.ContentTypeNames())
	a.Console().Printf("Starting server on port %v...\n", s.opts.Port)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	s.init(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}

type server struct {
	opts  *Options
	agent *agent.Agent
}

func newServer(a *agent.Agent, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2427
	}

	return &server{
		opts:  opts,
		agent: a,
	}
}

func (s *server) init(r *gin.Engine) {
	r.Use(cors())

	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Data(http.StatusOK, "image/svg+xml", frontend.Favicon)
	})

	s.initContentTypes(r)
	s.initStignore(r)
	s.initFlush(r)
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
