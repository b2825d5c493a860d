package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Bookmark struct {
	Config          *config.Config
	BookmarkService service.IBookmarkService
}

func (h *Bookmark) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	bookmarks := r.Group("/v1/bookmarks")
	bookmarks.POST("/toggle", authorize, context.Wrap(h.Toggle)) //收藏/取消收藏
	bookmarks.GET("/status", optional, context.Wrap(h.Status))
	bookmarks.POST("/batch", optional, context.Wrap(h.BatchStatus))
}

func (h *Bookmark) Toggle(c *gin.Context) error {
	var req types.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	status, err := h.BookmarkService.Toggle(c.Request.Context(), types.TargetKind(req.TargetKind), req.TargetID, userID)
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, status)
	return nil
}

func (h *Bookmark) Status(c *gin.Context) error {
	kind, targetID, err := parseTarget(c)
	if err != nil {
		return err
	}
	userID, _ := context.GetUserID(c)

	status, err := h.BookmarkService.Status(c.Request.Context(), kind, targetID, userID)
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, status)
	return nil
}

func (h *Bookmark) BatchStatus(c *gin.Context) error {
	var req types.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, _ := context.GetUserID(c)

	result, err := h.BookmarkService.BatchStatus(c.Request.Context(), types.TargetKind(req.TargetKind), req.TargetIDs, userID)
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, result)
	return nil
}
