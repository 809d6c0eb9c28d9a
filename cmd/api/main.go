package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "casetrack-backend/internal/adapter/http"
	appmw "casetrack-backend/internal/adapter/middleware"
	"casetrack-backend/internal/adapter/repository/mysql"
	"casetrack-backend/internal/auth"
	"casetrack-backend/internal/config"
	userDomain "casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/infrastructure/cache"
	"casetrack-backend/internal/infrastructure/db"
	"casetrack-backend/internal/notify"
	assignmentUC "casetrack-backend/internal/usecase/assignment"
	auditUC "casetrack-backend/internal/usecase/audit"
	authUC "casetrack-backend/internal/usecase/auth"
	caseUC "casetrack-backend/internal/usecase/caserecord"
	evidenceUC "casetrack-backend/internal/usecase/evidence"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}
	if err := db.SeedStatuses(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	caseRepo := mysql.NewCaseRepository(gdb)
	caseStatusRepo := mysql.NewCaseStatusRepository(gdb)
	catalogRepo := mysql.NewCatalogRepository(gdb)
	evidenceRepo := mysql.NewEvidenceRepository(gdb)
	evidenceStatusRepo := mysql.NewEvidenceStatusRepository(gdb)
	userRepo := mysql.NewUserRepository(gdb)
	assignmentRepo := mysql.NewAssignmentRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	// services
	recorder := auditUC.NewService(auditRepo, evidenceRepo)
	notifier := notify.NewMailGateway(cfg.MailGatewayURL, cfg.MailGatewayFrom)
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	// usecases
	cases := caseUC.NewUsecase(caseRepo, caseStatusRepo, catalogRepo, userRepo, assignmentRepo, unit, recorder, notifier)
	evidences := evidenceUC.NewUsecase(evidenceRepo, evidenceStatusRepo, caseRepo, assignmentRepo, userRepo, recorder)
	assignments := assignmentUC.NewUsecase(assignmentRepo, userRepo, recorder)
	logins := authUC.NewUsecase(userRepo, issuer, recorder)

	// handlers
	cv := httpadp.NewValidator()
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(logins, cv)
	caseH := httpadp.NewCaseHandler(cases, cv)
	evidenceH := httpadp.NewEvidenceHandler(evidences, cv)
	assignmentH := httpadp.NewAssignmentHandler(assignments, cv)
	auditH := httpadp.NewAuditHandler(recorder)

	authMW := appmw.NewAuthMiddleware(issuer, userRepo)
	idemp := appmw.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	// public routes
	e.GET("/health", h.Health)
	e.POST("/auth/login", authH.Login)

	// authenticated routes
	api := e.Group("", authMW.Authenticate)

	api.GET("/cases", caseH.List)
	api.GET("/cases/:id", caseH.Get)
	api.GET("/cases/:id/history", auditH.CaseHistory)
	api.POST("/cases", caseH.Create, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor, userDomain.RoleTechnician), idemp)
	api.POST("/cases/with-evidence", caseH.CreateWithEvidence, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor, userDomain.RoleTechnician), idemp)
	api.PUT("/cases/:id", caseH.Update, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor))
	api.DELETE("/cases/:id", caseH.Delete, appmw.RequireRole(userDomain.RoleAdmin))
	api.POST("/cases/:id/approve", caseH.Approve, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor), idemp)
	api.POST("/cases/:id/reject", caseH.Reject, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor), idemp)

	api.GET("/evidence", evidenceH.List)
	api.GET("/evidence/:id", evidenceH.Get)
	api.POST("/evidence", evidenceH.Register, idemp)
	api.PUT("/evidence/:id", evidenceH.Update)
	api.DELETE("/evidence/:id", evidenceH.Delete, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor))

	api.GET("/assignments", assignmentH.List, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor))
	api.GET("/assignments/supervisors", assignmentH.ListSupervisors, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor))
	api.GET("/assignments/unassigned-technicians", assignmentH.ListUnassignedTechnicians, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor))
	api.POST("/assignments", assignmentH.Assign, appmw.RequireRole(userDomain.RoleAdmin))
	api.DELETE("/assignments/:technician_id", assignmentH.Unassign, appmw.RequireRole(userDomain.RoleAdmin))

	api.GET("/audit", auditH.Query, appmw.RequireRole(userDomain.RoleAdmin, userDomain.RoleSupervisor))

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
