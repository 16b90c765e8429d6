package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/internhub/backend/internal/app/models/dto"
	"github.com/internhub/backend/internal/app/services"
	"github.com/internhub/backend/internal/middleware"
)

// TimePeriodController handles time period listing
type TimePeriodController struct {
	timePeriodService *services.TimePeriodService
	logger            zerolog.Logger
}

// NewTimePeriodController creates a new TimePeriodController
func NewTimePeriodController(timePeriodService *services.TimePeriodService, logger zerolog.Logger) *TimePeriodController {
	return &TimePeriodController{
		timePeriodService: timePeriodService,
		logger:            logger,
	}
}

// GetValid handles GET /time_periods. Only periods that have not started
// yet are listed; students cannot sign up for one already underway.
func (c *TimePeriodController) GetValid(ctx *gin.Context) {
	periods, err := c.timePeriodService.GetValid(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTimePeriodListResponse(periods))
}

// GetAll handles GET /time_periods/all
func (c *TimePeriodController) GetAll(ctx *gin.Context) {
	periods, err := c.timePeriodService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewTimePeriodListResponse(periods))
}
