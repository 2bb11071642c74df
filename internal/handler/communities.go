package handler

import (
	"net/http"
	"strconv"

	"github.com/ForumApp/content-service/internal/dto"
	"github.com/gin-gonic/gin"
)

func (h *Handler) communitiesGet(c *gin.Context) {
	page, err0 := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, err1 := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err0 != nil || err1 != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, errPageAndSizeMustBeInt.Error()))
		return
	}

	result, err := h.services.Community.FindPaginated(c.Request.Context(), page, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, *result)
}

func (h *Handler) communitiesSearch(c *gin.Context) {
	result, err := h.services.Community.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) flagsGet(c *gin.Context) {
	result, err := h.services.Community.FindAllFlags(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewBasicResponse(false, err.Error()))
		return
	}

	c.JSON(http.StatusOK, result)
}
