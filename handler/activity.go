package handler

import (
	"Pulse/config"
	"Pulse/middleware"
	"Pulse/pkg/context"
	"Pulse/pkg/response"
	"Pulse/service"
	"Pulse/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Activity struct {
	Config          *config.Config
	ActivityService service.IActivityService
	LikeService     service.ILikeService
}

func (h *Activity) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	activities := r.Group("/v1/activities")
	activities.POST("/create", authorize, context.Wrap(h.CreateActivity))
	activities.GET("/feed", optional, context.Wrap(h.Feed))
	activities.GET("/:id", optional, context.Wrap(h.GetActivity))
}

func (h *Activity) CreateActivity(c *gin.Context) error {
	var req types.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	activity, err := h.ActivityService.CreateActivity(c.Request.Context(), &req, userID)
	if err != nil {
		return err
	}

	response.Success(c, activity)
	return nil
}

func (h *Activity) GetActivity(c *gin.Context) error {
	activityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || activityID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}
	userID, _ := context.GetUserID(c)

	activity, err := h.ActivityService.GetActivity(c.Request.Context(), activityID)
	if err != nil {
		return wrapInteractionError(err)
	}

	status, err := h.LikeService.Status(c.Request.Context(), types.TargetActivity, activityID, userID)
	if err != nil {
		return wrapInteractionError(err)
	}
	activity.IsLiked = status.IsLiked
	activity.LikesCount = status.Count

	response.Success(c, activity)
	return nil
}

// Feed 动态流：计数直接读冗余字段，"我是否点过"批量一次查完
func (h *Activity) Feed(c *gin.Context) error {
	offset, limit := parsePage(c)
	userID, _ := context.GetUserID(c)

	activities, err := h.ActivityService.Feed(c.Request.Context(), offset, limit)
	if err != nil {
		return err
	}

	if userID > 0 && len(activities) > 0 {
		ids := make([]int64, 0, len(activities))
		for _, activity := range activities {
			ids = append(ids, activity.ID)
		}
		statuses, err := h.LikeService.BatchStatus(c.Request.Context(), types.TargetActivity, ids, userID)
		if err != nil {
			return wrapInteractionError(err)
		}
		for _, activity := range activities {
			if st, ok := statuses[activity.ID]; ok {
				activity.IsLiked = st.IsLiked
			}
		}
	}

	response.Success(c, activities)
	return nil
}
