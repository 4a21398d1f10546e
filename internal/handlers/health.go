// System handlers: health probe and the status-code reference.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/transrodar/backend/internal/response"
)

// Health returns 200 in the unified format (status, message, data).
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, "ok", nil)
}

// StatusCodeItem is one code/message pair for the reference list.
type StatusCodeItem struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusCodesList — every status code the API answers with.
var statusCodesList = []StatusCodeItem{
	{http.StatusOK, "success"},
	{http.StatusCreated, "created"},
	{http.StatusBadRequest, "bad request"},
	{http.StatusUnauthorized, "unauthorized"},
	{http.StatusForbidden, "forbidden"},
	{http.StatusNotFound, "not found"},
	{http.StatusConflict, "conflict"},
	{http.StatusTooManyRequests, "too many requests"},
	{http.StatusInternalServerError, "internal server error"},
}

// StatusCodes returns the status-code reference (GET /status-codes).
func StatusCodes(c *gin.Context) {
	response.Success(c, http.StatusOK, response.MsgSuccess, statusCodesList)
}
