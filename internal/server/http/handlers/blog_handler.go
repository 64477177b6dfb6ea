package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/servicebooking/internal/server/http/dto"
	"github.com/polkiloo/servicebooking/internal/server/http/middleware"
)

// BlogHandler serves the blog.
type BlogHandler struct {
	facade BlogFacade
}

// NewBlogHandler creates BlogHandler instance.
func NewBlogHandler(facade BlogFacade) *BlogHandler {
	return &BlogHandler{facade: facade}
}

// List handles GET /api/blogs?page=&pageSize=. Malformed paging values fall
// back to the defaults.
func (h *BlogHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))

	res, err := h.facade.Posts(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewPostPage(res), "")
}

// Latest handles GET /api/blogs/latest.
func (h *BlogHandler) Latest(c *gin.Context) {
	posts, err := h.facade.LatestPosts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewPostList(posts), "")
}

// Get handles GET /api/blogs/:id.
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.facade.Post(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewPostResponse(post), "")
}

// Create handles POST /api/admin/blogs.
func (h *BlogHandler) Create(c *gin.Context) {
	principal, ok := middleware.CurrentPrincipal(c)
	if !ok {
		respondFail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var req dto.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	post, err := h.facade.CreatePost(c.Request.Context(), principal.UserID, req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusCreated, dto.NewPostResponse(post), "blog created")
}

// Update handles PUT /api/admin/blogs/:id.
func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.PostChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	post, err := h.facade.UpdatePost(c.Request.Context(), c.Param("id"), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, dto.NewPostResponse(post), "blog updated")
}

// Delete handles DELETE /api/admin/blogs/:id.
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.facade.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respond(c, http.StatusOK, nil, "blog deleted")
}
