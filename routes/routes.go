package routes

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/Ranayh14/Absen/config"
	"github.com/Ranayh14/Absen/handlers"
	"github.com/Ranayh14/Absen/metrics"
	"github.com/Ranayh14/Absen/middlewares"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config, col *metrics.Collector) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	mem := handlers.NewMemberHandler()
	att := handlers.NewAttendanceHandler(cfg.Location(), col)
	av := handlers.NewAvatarHandler()

	// ===== Public =====
	e.GET("/health", handlers.Health)
	e.GET("/metrics", echo.WrapHandler(col.Handler()))
	e.POST("/auth/login", auth.Login)
	e.POST("/auth/register", auth.Register)
	e.GET("/avatar", av.Avatar)
	e.GET("/icon", av.Icon)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Authenticated (admin + pegawai) =====
	api := e.Group("", authMW)
	api.GET("/members", mem.List) // foto dipakai face matching di browser
	api.GET("/members/:id/photo", av.MemberPhoto)
	api.GET("/attendance", att.List)
	// scanner wajah suka retry; 10 req/menit per IP cukup untuk manusia
	api.POST("/attendance", att.Record, middlewares.RateLimit(rate.Limit(10.0/60.0), 5))

	// ===== Admin =====
	admin := e.Group("/admin", authMW, middlewares.RequireRole("admin"))
	admin.POST("/members", mem.Save)
	admin.DELETE("/members/:id", mem.Delete)
	admin.GET("/attendance/recap", att.Recap)
	admin.DELETE("/attendance/:id", att.Delete)
}
