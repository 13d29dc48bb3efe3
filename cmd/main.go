package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Ranayh14/Absen/config"
	"github.com/Ranayh14/Absen/database"
	"github.com/Ranayh14/Absen/metrics"
	"github.com/Ranayh14/Absen/routes"
)

// @title           Absen API
// @version         1.0
// @description     Presensi wajah — Echo + PostgreSQL
// @BasePath        /
func main() {
	cfg := config.Load()

	// Koneksi DB (kalau DB belum up, program langsung error — early fail)
	database.Connect(cfg)

	col := metrics.NewCollector()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, cfg, col)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s (tz=%s)", addr, cfg.Timezone)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
