package server

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/pescuma/stignore-agent/lib/model"
	"github.com/pescuma/stignore-agent/lib/utils"
)

// partialError is a failure that happened after some changes were already made.
type partialError struct {
	err    error
	result gin.H
}

func (e *partialError) Error() string {
	return e.err.Error()
}

func (e *partialError) Unwrap() error {
	return e.err
}

func sendError(c *gin.Context, err error) {
	body := gin.H{
		"ok":  false,
		"msg": err.Error(),
	}

	var partial *partialError
	if errors.As(err, &partial) {
		for k, v := range partial.result {
			body[k] = v
		}
	}

	c.JSON(utils.IIf(model.IsClientError(err), http.StatusBadRequest, http.StatusInternalServerError), body)
}

func sendOk(c *gin.Context, result gin.H) {
	body := gin.H{"ok": true}
	for k, v := range result {
		body[k] = v
	}

	c.JSON(http.StatusOK, body)
}

func get(f func() (gin.H, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		result, err := f()
		if err != nil {
			sendError(c, err)
			return
		}

		sendOk(c, result)
	}
}

func getP[P any](f func(*P) (gin.H, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		sendOk(c, result)
	}
}

// postP binds the json body and then the uri params. An empty body leaves the
// body fields unset.
func postP[P any](f func(*P) (gin.H, error)) func(c *gin.Context) {
	return func(c *gin.Context) {
		var params P

		err := c.ShouldBindJSON(&params)
		if err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": "Invalid JSON payload: " + err.Error()})
			return
		}

		err = c.ShouldBindUri(&params)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "msg": err.Error()})
			return
		}

		result, err := f(&params)
		if err != nil {
			sendError(c, err)
			return
		}

		sendOk(c, result)
	}
}
