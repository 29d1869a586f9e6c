package handlers

import (
	"net/http"

	"biodata-api/internal/policy"
	"biodata-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// GetPolicy godoc
// @Summary      Access policy
// @Description  Returns the route access table used by the API and by page guards.
// @Tags         policy
// @Produce      json
// @Success      200  {object}  dto.PolicyResponse
// @Router       /api/policy [get]
func GetPolicy(c *gin.Context) {
	c.JSON(http.StatusOK, dto.PolicyResponse{API: policy.APIRules, Pages: policy.PageRules})
}
