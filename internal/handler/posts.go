package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/ForumApp/content-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsCreate(c *gin.Context) {
	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	// The authenticated principal is the fallback author when the
	// payload carries none.
	if user := h.getUserFromRequest(c); user != nil && !input.AuthorID.Present {
		input.AuthorID = dto.OptionalID{Present: true, Valid: true, Int64: user.ID}
	}

	createdPost, err := h.services.Post.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, *createdPost)
}

func (h *Handler) postsGetAll(c *gin.Context) {
	var communityID *int64
	if communityIDString := strings.TrimSpace(c.Query("communityId")); communityIDString != "" {
		id, err := strconv.ParseInt(communityIDString, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommunityID.Error()))
			return
		}
		communityID = &id
	}

	posts, err := h.services.Post.FindAll(c.Request.Context(), communityID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsSearch(c *gin.Context) {
	posts, err := h.services.Post.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *Handler) postsGetByID(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	post, err := h.services.Post.FindByID(c.Request.Context(), postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *post)
}
