package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/cursor"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Like struct {
	Config      *config.Config
	LikeService service.ILikeService
}

func (h *Like) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	likes := r.Group("/v1/likes")
	likes.POST("/toggle", authorize, context.Wrap(h.Toggle)) //点赞/取消点赞
	likes.GET("/status", optional, context.Wrap(h.Status))
	likes.POST("/batch", optional, context.Wrap(h.BatchStatus))
	likes.GET("/users", optional, context.Wrap(h.ListLikers)) //点赞用户列表
}

// Toggle 点赞开关，同一接口既点赞也取消
func (h *Like) Toggle(c *gin.Context) error {
	var req types.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	status, err := h.LikeService.Toggle(c.Request.Context(), types.TargetKind(req.TargetKind), req.TargetID, userID)
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, status)
	return nil
}

// Status 单个目标的点赞状态，未登录也可以看计数
func (h *Like) Status(c *gin.Context) error {
	kind, targetID, err := parseTarget(c)
	if err != nil {
		return err
	}
	userID, _ := context.GetUserID(c)

	status, err := h.LikeService.Status(c.Request.Context(), kind, targetID, userID)
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, status)
	return nil
}

// BatchStatus 批量取点赞状态，feed 列表页用
func (h *Like) BatchStatus(c *gin.Context) error {
	var req types.BatchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, _ := context.GetUserID(c)

	result, err := h.LikeService.BatchStatus(c.Request.Context(), types.TargetKind(req.TargetKind), req.TargetIDs, userID)
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, result)
	return nil
}

// ListLikers 点赞用户列表(游标分页)
func (h *Like) ListLikers(c *gin.Context) error {
	kind, targetID, err := parseTarget(c)
	if err != nil {
		return err
	}

	limit := 20
	if ps := c.Query("limit"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}

	page, err := h.LikeService.ListLikers(c.Request.Context(), kind, targetID, limit, c.Query("cursor"))
	if err != nil {
		return wrapInteractionError(err)
	}

	response.Success(c, page)
	return nil
}

// parseTarget 从 query 里解析目标类型和 ID
func parseTarget(c *gin.Context) (types.TargetKind, int64, error) {
	kind := types.TargetKind(c.Query("target_kind"))
	if !kind.Valid() {
		return "", 0, response.NewError(http.StatusBadRequest, "target_kind参数错误")
	}
	targetID, err := strconv.ParseInt(c.Query("target_id"), 10, 64)
	if err != nil || targetID == 0 {
		return "", 0, response.NewError(http.StatusBadRequest, "target_id参数错误")
	}
	return kind, targetID, nil
}

// wrapInteractionError 服务层错误翻译成业务错误码
func wrapInteractionError(err error) error {
	switch {
	case errors.Is(err, service.ErrTargetNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTarget), errors.Is(err, cursor.ErrInvalid):
		return response.NewError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
