package app

import (
	"emis-backend/internal/auth"
	"emis-backend/internal/buildings"
	"emis-backend/internal/config"
	"emis-backend/internal/constants"
	"emis-backend/internal/dashboard"
	"emis-backend/internal/database"
	"emis-backend/internal/electricity"
	"emis-backend/internal/equipment"
	"emis-backend/internal/findings"
	"emis-backend/internal/fuel"
	"emis-backend/internal/health"
	"emis-backend/internal/lgus"
	"emis-backend/internal/middleware"
	"emis-backend/internal/projects"
	"emis-backend/internal/recommendations"
	"emis-backend/internal/reports"
	"emis-backend/internal/vehicles"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// gormPinger adapts gorm to the health check's Ping interface.
type gormPinger struct{ db *gorm.DB }

func (p gormPinger) Ping() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// CreateApp builds the Fiber app with all global middleware and route
// registration. The opened DB and Redis handles are returned so the caller
// can run startup checks and migrations.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage:   true,
		ErrorHandler:            middleware.ErrorHandler,
		EnableTrustedProxyCheck: true,
	})

	app.Use(middleware.CORS(middleware.CORSConfig{
		AllowedSuffix: cfg.FrontendURLEndsWith,
		DevPassword:   cfg.DevPassword,
	}))

	sessionCfg := middleware.SessionConfig{
		Secret:            cfg.SessionSecret,
		RedisURL:          cfg.RedisURL,
		AllowCrossSiteDev: cfg.AllowCrossSiteDev,
		IsProduction:      cfg.Env == "production",
	}
	sessionHandler, rdb, err := middleware.Session(sessionCfg)
	if err != nil {
		return nil, nil, nil, err
	}
	app.Use(sessionHandler)

	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	// Health (no auth)
	healthHandlers := &health.Handlers{Rdb: rdb}
	if db != nil {
		healthHandlers.DB = gormPinger{db: db}
	}
	app.Get("/health/live", healthHandlers.Live)
	app.Get("/health/json", healthHandlers.JSON)

	// Auth (no auth middleware)
	var userFinder auth.UserFinder
	if db != nil {
		userFinder = &auth.GormUserFinder{DB: db}
	}
	authHandlers := &auth.Handlers{
		UserFinder: userFinder,
		Rdb:        rdb,
		Config:     sessionCfg,
	}
	authGroup := app.Group("/api/v1/auth")
	authGroup.Post("/login", authHandlers.Login)
	authGroup.Get("/me", authHandlers.Me)
	authGroup.Delete("/logout", authHandlers.Logout)

	// db may be nil when DATABASE_URL is unset (e.g. tests); protected
	// modules are only mounted with a live store behind them.
	if db == nil {
		return app, nil, rdb, nil
	}

	read := func(moduleID string) fiber.Handler { return middleware.AuthorizeModule(moduleID, false) }
	write := func(moduleID string) fiber.Handler { return middleware.AuthorizeModule(moduleID, true) }

	// LGU module
	lguHandlers := &lgus.Handlers{Service: &lgus.Service{DB: db}}
	lguGroup := app.Group("/api/v1/lgus", middleware.RequireAuth())
	lguGroup.Post("/create-lgu", write(constants.ModuleLGUs), lguHandlers.CreateLGU)
	lguGroup.Get("/view-lgus", read(constants.ModuleLGUs), lguHandlers.ViewLGUs)
	lguGroup.Get("/view-lgu/:id", read(constants.ModuleLGUs), lguHandlers.ViewLGU)
	lguGroup.Patch("/update-lgu/:id", write(constants.ModuleLGUs), lguHandlers.UpdateLGU)
	lguGroup.Delete("/remove-lgu/:id", write(constants.ModuleLGUs), lguHandlers.RemoveLGU)

	// Buildings module
	buildingHandlers := &buildings.Handlers{Service: &buildings.Service{DB: db}}
	buildingGroup := app.Group("/api/v1/buildings", middleware.RequireAuth())
	buildingGroup.Post("/create-building", write(constants.ModuleBuildings), buildingHandlers.CreateBuilding)
	buildingGroup.Get("/view-buildings", read(constants.ModuleBuildings), buildingHandlers.ViewBuildings)
	buildingGroup.Get("/view-building/:id", read(constants.ModuleBuildings), buildingHandlers.ViewBuilding)
	buildingGroup.Patch("/update-building/:id", write(constants.ModuleBuildings), buildingHandlers.UpdateBuilding)
	buildingGroup.Delete("/remove-building/:id", write(constants.ModuleBuildings), buildingHandlers.RemoveBuilding)

	// Vehicles module
	vehicleHandlers := &vehicles.Handlers{Service: &vehicles.Service{DB: db}}
	vehicleGroup := app.Group("/api/v1/vehicles", middleware.RequireAuth())
	vehicleGroup.Post("/create-vehicle", write(constants.ModuleVehicles), vehicleHandlers.CreateVehicle)
	vehicleGroup.Get("/view-vehicles", read(constants.ModuleVehicles), vehicleHandlers.ViewVehicles)
	vehicleGroup.Get("/view-vehicle/:id", read(constants.ModuleVehicles), vehicleHandlers.ViewVehicle)
	vehicleGroup.Patch("/update-vehicle/:id", write(constants.ModuleVehicles), vehicleHandlers.UpdateVehicle)
	vehicleGroup.Delete("/remove-vehicle/:id", write(constants.ModuleVehicles), vehicleHandlers.RemoveVehicle)

	// Equipment module (scoped by building)
	equipmentHandlers := &equipment.Handlers{Service: &equipment.Service{DB: db}}
	equipmentGroup := app.Group("/api/v1/equipment", middleware.RequireAuth())
	equipmentGroup.Post("/create-equipment", write(constants.ModuleEquipment), equipmentHandlers.CreateEquipment)
	equipmentGroup.Get("/view-building-equipment/:fsbd_id", read(constants.ModuleEquipment), equipmentHandlers.ViewBuildingEquipment)
	equipmentGroup.Patch("/update-equipment/:id", write(constants.ModuleEquipment), equipmentHandlers.UpdateEquipment)
	equipmentGroup.Delete("/remove-equipment/:id", write(constants.ModuleEquipment), equipmentHandlers.RemoveEquipment)

	// Electricity reports (add/list/delete, no update)
	electricityHandlers := &electricity.Handlers{Service: &electricity.Service{DB: db}}
	electricityGroup := app.Group("/api/v1/electricity-reports", middleware.RequireAuth())
	electricityGroup.Post("/create-report", write(constants.ModuleElectricity), electricityHandlers.CreateReport)
	electricityGroup.Get("/view-building-reports/:fsbd_id", read(constants.ModuleElectricity), electricityHandlers.ViewBuildingReports)
	electricityGroup.Delete("/remove-report/:id", write(constants.ModuleElectricity), electricityHandlers.RemoveReport)

	// Fuel reports (add/list/delete, no update)
	fuelHandlers := &fuel.Handlers{Service: &fuel.Service{DB: db}}
	fuelGroup := app.Group("/api/v1/fuel-reports", middleware.RequireAuth())
	fuelGroup.Post("/create-report", write(constants.ModuleFuel), fuelHandlers.CreateReport)
	fuelGroup.Get("/view-vehicle-reports/:vehicle_id", read(constants.ModuleFuel), fuelHandlers.ViewVehicleReports)
	fuelGroup.Delete("/remove-report/:id", write(constants.ModuleFuel), fuelHandlers.RemoveReport)

	// SEU findings
	findingHandlers := &findings.Handlers{Service: &findings.Service{DB: db}}
	findingGroup := app.Group("/api/v1/seu-findings", middleware.RequireAuth())
	findingGroup.Post("/create-finding", write(constants.ModuleFindings), findingHandlers.CreateFinding)
	findingGroup.Get("/view-findings", read(constants.ModuleFindings), findingHandlers.ViewFindings)
	findingGroup.Patch("/update-finding/:id", write(constants.ModuleFindings), findingHandlers.UpdateFinding)
	findingGroup.Delete("/remove-finding/:id", write(constants.ModuleFindings), findingHandlers.RemoveFinding)

	// Recommendations (RIOs)
	recHandlers := &recommendations.Handlers{Service: &recommendations.Service{DB: db}}
	recGroup := app.Group("/api/v1/recommendations", middleware.RequireAuth())
	recGroup.Post("/create-recommendation", write(constants.ModuleRecommendations), recHandlers.CreateRecommendation)
	recGroup.Get("/view-recommendations", read(constants.ModuleRecommendations), recHandlers.ViewRecommendations)
	recGroup.Patch("/update-recommendation/:id", write(constants.ModuleRecommendations), recHandlers.UpdateRecommendation)
	recGroup.Delete("/remove-recommendation/:id", write(constants.ModuleRecommendations), recHandlers.RemoveRecommendation)

	// Projects (PPAs)
	projectHandlers := &projects.Handlers{Service: &projects.Service{DB: db}}
	projectGroup := app.Group("/api/v1/projects", middleware.RequireAuth())
	projectGroup.Post("/create-project", write(constants.ModuleProjects), projectHandlers.CreateProject)
	projectGroup.Get("/view-projects", read(constants.ModuleProjects), projectHandlers.ViewProjects)
	projectGroup.Patch("/update-project/:id", write(constants.ModuleProjects), projectHandlers.UpdateProject)
	projectGroup.Delete("/remove-project/:id", write(constants.ModuleProjects), projectHandlers.RemoveProject)

	// Compliance report
	reportHandlers := &reports.Handlers{Composer: &reports.Composer{DB: db}}
	reportGroup := app.Group("/api/v1/reports", middleware.RequireAuth())
	reportGroup.Get("/compile", read(constants.ModuleReports), reportHandlers.CompileReport)

	// Dashboard
	dashboardHandlers := &dashboard.Handlers{Service: &dashboard.Service{DB: db}}
	dashboardGroup := app.Group("/api/v1/dashboard", middleware.RequireAuth())
	dashboardGroup.Get("/summary", read(constants.ModuleDashboard), dashboardHandlers.ViewDashboard)

	return app, db, rdb, nil
}
