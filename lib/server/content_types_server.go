package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
)

func (s *server) initContentTypes(r *gin.Engine) {
	r.GET("/api/v1/discover", get(s.discover))
	r.GET("/api/v1/:type/listing", getP[ContentTypeParams](s.listing))
}

func (s *server) discover() (gin.H, error) {
	return gin.H{
		"content_types": lo.Map(s.agent.ContentTypes(), func(ct *model.ContentType, _ int) gin.H {
			return s.toContentType(ct)
		}),
	}, nil
}

func (s *server) listing(params *ContentTypeParams) (gin.H, error) {
	folders, err := s.agent.Listing(params.ContentType)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"folders": lo.Map(folders, func(f *model.Folder, _ int) gin.H { return s.toFolder(f) }),
	}, nil
}
