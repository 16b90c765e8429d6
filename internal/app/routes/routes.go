// Package routes wires the HTTP endpoints to their controllers
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internhub/backend/internal/app/controllers"
	"github.com/internhub/backend/internal/app/models"
	"github.com/internhub/backend/internal/middleware"
	"github.com/internhub/backend/internal/pkg/auth"
	"github.com/internhub/backend/internal/pkg/metrics"
)

// Controllers bundles everything the router needs
type Controllers struct {
	Auth       *controllers.AuthController
	User       *controllers.UserController
	Internship *controllers.InternshipController
	TimePeriod *controllers.TimePeriodController
	Admin      *controllers.AdminController
	Upload     *controllers.UploadController
}

// SetupRoutes registers all API routes on the router
func SetupRoutes(router *gin.Engine, c *Controllers, jwtService *auth.JWTService, localUploadsDir string) {
	router.Use(metrics.Middleware())

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", metrics.Handler())

	// Files saved by the local storage backend
	if localUploadsDir != "" {
		router.Static("/uploads", localUploadsDir)
	}

	authRequired := middleware.JWTAuth(jwtService)
	adminOnly := middleware.RoleRequired(string(models.RoleAdmin))

	// Read-only listings stay open; every mutation requires a bearer token.
	users := router.Group("/users")
	{
		users.POST("/register", c.Auth.Register)
		users.POST("/login", c.Auth.Login)
		users.GET("", c.User.GetAll)
		users.GET("/students", c.User.GetStudents)
		users.GET("/:id", c.User.GetByID)

		users.GET("/get_current_user", authRequired, c.Auth.GetCurrentUser)
		users.GET("/favorites", authRequired, c.User.GetFavorites)
		users.PUT("/edit_profile", authRequired, c.User.EditProfile)
	}

	internships := router.Group("/internships")
	{
		internships.GET("", c.Internship.GetAll)
		internships.GET("/:id", c.Internship.GetByID)
		internships.GET("/by_author/:id", c.Internship.GetByAuthor)

		internships.POST("/add_internship", authRequired, c.Internship.Add)
		internships.PUT("/:id", authRequired, c.Internship.Update)
		internships.DELETE("/:id", authRequired, c.Internship.Delete)

		internships.PUT("/flag/:id", authRequired, c.Internship.Flag)
		internships.PUT("/unflag/:id", authRequired, c.Internship.Unflag)
		internships.PUT("/clear_flags/:id", authRequired, adminOnly, c.Internship.ClearFlags)

		internships.PUT("/favorite/:id", authRequired, c.Internship.Favorite)
		internships.PUT("/unfavorite/:id", authRequired, c.Internship.Unfavorite)
	}

	timePeriods := router.Group("/time_periods")
	{
		timePeriods.GET("", c.TimePeriod.GetValid)
		timePeriods.GET("/all", c.TimePeriod.GetAll)
	}

	admin := router.Group("/admin", authRequired, adminOnly)
	{
		admin.DELETE("/delete_user/:id", c.Admin.DeleteUser)
		admin.PUT("/change_role/:username", c.Admin.ChangeRole)
		admin.POST("/add_time_period", c.Admin.AddTimePeriod)
		admin.DELETE("/delete_time_period/:id", c.Admin.DeleteTimePeriod)
	}

	upload := router.Group("/upload", authRequired)
	{
		upload.PUT("/profile_picture", c.Upload.UploadProfilePicture)
		upload.DELETE("/profile_picture", c.Upload.DeleteProfilePicture)
		upload.PUT("/cv", c.Upload.UploadCV)
		upload.DELETE("/cv", c.Upload.DeleteCV)
		upload.PUT("/company_photo/:id", c.Upload.UploadCompanyPhoto)
		upload.DELETE("/company_photo/:id", c.Upload.DeleteCompanyPhoto)
	}
}
