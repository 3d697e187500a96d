package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lwp3877/meetpin-server/internal/apperr"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// fail единая точка выхода для ошибок: бизнес-ошибки уходят с кодом
// и сообщением, всё неожиданное логируется и превращается в 500 без
// внутренних деталей
func fail(c *gin.Context, err error) {
	if e, ok := apperr.As(err); ok {
		c.JSON(e.HTTPStatus(), gin.H{"error": e.Message, "code": string(e.Code)})
		return
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "code": "not_found"})
		return
	}

	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal"})
}

func failValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message, "code": "validation"})
}

// parsePagination ?page=&limit= с дефолтами и верхней границей
func parsePagination(c *gin.Context) (page, limit, offset int) {
	page = 1
	if p, err := strconv.Atoi(c.Query("page")); err == nil && p > 0 {
		page = p
	}

	limit = defaultPageSize
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= maxPageSize {
		limit = l
	}

	offset = (page - 1) * limit
	return page, limit, offset
}
