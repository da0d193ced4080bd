package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sivanandz/luminila-ERP-sub002/internal/gstin"
	"github.com/sivanandz/luminila-ERP-sub002/internal/states"
)

// GSTINHandler handles GSTIN validation and state registry lookups.
type GSTINHandler struct{}

// NewGSTINHandler creates a new GSTINHandler.
func NewGSTINHandler() *GSTINHandler {
	return &GSTINHandler{}
}

// Check handles GET /api/v1/gstin/:value
//
// The structural check runs always; pass ?strict=true to also verify the
// mod-36 checksum character. An invalid GSTIN is a successful check with
// valid=false, not an error response.
func (h *GSTINHandler) Check(c *gin.Context) {
	value := strings.ToUpper(strings.TrimSpace(c.Param("value")))

	var result gstin.Result
	if c.Query("strict") == "true" {
		result = gstin.ValidateStrict(value)
	} else {
		result = gstin.Validate(value)
	}

	RespondOK(c, gin.H{
		"gstin":   value,
		"valid":   result.Valid,
		"message": result.Message,
	})
}

// States handles GET /api/v1/states
func (h *GSTINHandler) States(c *gin.Context) {
	RespondOK(c, states.All())
}
