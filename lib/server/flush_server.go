package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
)

func (s *server) initFlush(r *gin.Engine) {
	r.GET("/api/v1/:type/stignore/flush", getP[ContentTypeParams](s.flushPreview))
	r.POST("/api/v1/:type/stignore/flush", postP[FlushParams](s.flushConfirm))
}

func (s *server) flushPreview(params *ContentTypeParams) (gin.H, error) {
	actions, err := s.agent.FlushPreview(params.ContentType)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"actions": s.toPendingActions(actions),
	}, nil
}

func (s *server) flushConfirm(params *FlushParams) (gin.H, error) {
	var confirmed *[]model.ConfirmedAction
	if params.Actions != nil {
		cs := lo.Map(*params.Actions, func(a FlushAction, _ int) model.ConfirmedAction {
			return model.ConfirmedAction{
				Name:          a.Name,
				Path:          a.Path,
				Operation:     a.Action,
				SizeMegabytes: a.SizeMegabytes,
			}
		})
		confirmed = &cs
	}

	applied, err := s.agent.FlushConfirm(params.ContentType, confirmed, nil)
	if err != nil {
		if len(applied) > 0 {
			return nil, &partialError{
				err:    err,
				result: gin.H{"actions": s.toPendingActions(applied)},
			}
		}
		return nil, err
	}

	return gin.H{
		"actions": s.toPendingActions(applied),
	}, nil
}
