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

type Post struct {
	Config      *config.Config
	PostService service.IPostService
	LikeService service.ILikeService
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	posts := r.Group("/v1/posts")
	posts.POST("/create", authorize, context.Wrap(h.CreatePost))
	posts.GET("/list", optional, context.Wrap(h.ListPosts))
	posts.GET("/:id", optional, context.Wrap(h.GetPost))
}

func (h *Post) CreatePost(c *gin.Context) error {
	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	post, err := h.PostService.CreatePost(c.Request.Context(), &req, userID)
	if err != nil {
		return err
	}

	response.Success(c, post)
	return nil
}

// GetPost 文章详情，点赞数实时聚合
func (h *Post) GetPost(c *gin.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || postID == 0 {
		return response.NewError(http.StatusBadRequest, "id参数错误")
	}
	userID, _ := context.GetUserID(c)

	post, err := h.PostService.GetPost(c.Request.Context(), postID)
	if err != nil {
		return wrapInteractionError(err)
	}

	status, err := h.LikeService.Status(c.Request.Context(), types.TargetPost, postID, userID)
	if err != nil {
		return wrapInteractionError(err)
	}
	post.IsLiked = status.IsLiked
	post.LikeCount = status.Count

	response.Success(c, post)
	return nil
}

// ListPosts 文章列表，点赞状态批量装配
func (h *Post) ListPosts(c *gin.Context) error {
	offset, limit := parsePage(c)
	userID, _ := context.GetUserID(c)

	posts, err := h.PostService.ListPosts(c.Request.Context(), offset, limit)
	if err != nil {
		return err
	}

	if len(posts) > 0 {
		ids := make([]int64, 0, len(posts))
		for _, post := range posts {
			ids = append(ids, post.ID)
		}
		statuses, err := h.LikeService.BatchStatus(c.Request.Context(), types.TargetPost, ids, userID)
		if err != nil {
			return wrapInteractionError(err)
		}
		for _, post := range posts {
			if st, ok := statuses[post.ID]; ok {
				post.IsLiked = st.IsLiked
				post.LikeCount = st.Count
			}
		}
	}

	response.Success(c, posts)
	return nil
}

func parsePage(c *gin.Context) (offset, limit int) {
	limit = 20
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	page := 1
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	return (page - 1) * limit, limit
}
