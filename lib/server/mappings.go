package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/stignore-agent/lib/model"
)

func (s *server) toContentType(ct *model.ContentType) gin.H {
	return gin.H{
		"name": ct.Name,
	}
}

func (s *server) toFolder(f *model.Folder) gin.H {
	return gin.H{
		"name":           f.Name,
		"size_megabytes": f.SizeMegabytes,
	}
}

func (s *server) toIgnoreEntry(e *model.IgnoreEntry) gin.H {
	return gin.H{
		"raw":  e.Raw,
		"name": e.Name,
		"type": e.Kind.String(),
	}
}

func (s *server) toPendingActions(actions []*model.PendingAction) []gin.H {
	return lo.Map(actions, func(a *model.PendingAction, _ int) gin.H {
		return gin.H{
			"name":           a.Name,
			"path":           a.Path,
			"action":         a.Operation,
			"size_megabytes": a.SizeMegabytes,
		}
	})
}
