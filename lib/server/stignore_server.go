package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
)

func (s *server) initStignore(r *gin.Engine) {
	r.GET("/api/v1/:type/stignore", getP[ContentTypeParams](s.stignoreList))
	r.POST("/api/v1/:type/stignore", postP[ModifyStignoreParams](s.stignoreModify))
}

func (s *server) stignoreList(params *ContentTypeParams) (gin.H, error) {
	entries, err := s.agent.IgnoreEntries(params.ContentType)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"entries": lo.Map(entries, func(e model.IgnoreEntry, _ int) gin.H { return s.toIgnoreEntry(&e) }),
	}, nil
}

func (s *server) stignoreModify(params *ModifyStignoreParams) (gin.H, error) {
	var edits *[]model.ActionRequest
	if params.Actions != nil {
		es := lo.Map(*params.Actions, func(a StignoreAction, _ int) model.ActionRequest {
			return model.ActionRequest{
				Operation: a.Action,
				Kind:      a.IgnoreType,
				Name:      a.Name,
			}
		})
		edits = &es
	}

	err := s.agent.ModifyIgnoreEntries(params.ContentType, edits)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"msg": "Actions applied",
	}, nil
}
