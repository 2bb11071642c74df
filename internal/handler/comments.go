package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/ForumApp/content-service/internal/service"
	"github.com/gin-gonic/gin"
)

func (h *Handler) commentsCreate(c *gin.Context) {
	var input dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	if user := h.getUserFromRequest(c); user != nil && !input.AuthorID.Present {
		input.AuthorID = dto.OptionalID{Present: true, Valid: true, Int64: user.ID}
	}

	createdComment, err := h.services.Comment.Create(c.Request.Context(), input)
	if err != nil {
		switch err {
		// A missing or unknown post is a rejected request, not a 404:
		// the client sent an unusable payload.
		case service.ErrPostIDRequired, service.ErrInvalidPostID, service.ErrPostNotFound:
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, *createdComment)
}

func (h *Handler) commentsGetByPost(c *gin.Context) {
	postIDString := strings.TrimSpace(c.Param("postID"))
	postID, err := strconv.ParseInt(postIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidPostID.Error()))
		return
	}

	comments, err := h.services.Comment.FindPostComments(c.Request.Context(), postID)
	if err != nil {
		if err == service.ErrPostNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (h *Handler) commentsGetReplies(c *gin.Context) {
	commentIDString := strings.TrimSpace(c.Param("commentID"))
	commentID, err := strconv.ParseInt(commentIDString, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errInvalidCommentID.Error()))
		return
	}

	replies, err := h.services.Comment.FindCommentReplies(c.Request.Context(), commentID)
	if err != nil {
		if err == service.ErrCommentNotFound {
			c.JSON(http.StatusNotFound, dto.NewBasicResponse(false, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, replies)
}
