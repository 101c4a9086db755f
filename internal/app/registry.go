package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/accounting"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/auth"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/billing"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/company"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/dispatch"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/driver"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/employee"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/hos"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/insights"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/messaging/kafka"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/payroll"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac/infra"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/recurring"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/reporting"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/counter"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/subscription"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/truck"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	driverRepo := driver.NewRepository(gormDB)
	truckRepo := truck.NewRepository(gormDB)
	hosRepo := hos.NewRepository(gormDB)
	dispatchRepo := dispatch.NewRepository(gormDB)
	billingRepo := billing.NewRepository(gormDB)
	accountingRepo := accounting.NewRepository(gormDB)
	recurringRepo := recurring.NewRepository(gormDB)
	reportingRepo := reporting.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	subscriptionRepo := subscription.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Services ---
	authService := auth.NewService(db, authRepo, companyRepo, rbacService)
	companyService := company.NewService(companyRepo)
	userService := user.NewService(userRepo)
	driverService := driver.NewService(driverRepo)
	truckService := truck.NewService(truckRepo)
	hosService := hos.NewService(db, hosRepo, driverRepo)
	dispatchService := dispatch.NewService(db, dispatchRepo, driverRepo, counterRepo, outboxRepo, logger)
	billingService := billing.NewService(db, billingRepo, dispatchRepo, outboxRepo, logger)
	accountingService := accounting.NewService(db, accountingRepo, counterRepo, logger)
	recurringService := recurring.NewService(db, recurringRepo, accountingRepo, counterRepo, outboxRepo, logger)
	reportingService := reporting.NewService(reportingRepo, accountingRepo, rdb, logger)
	completer := insights.NewOpenAICompleter(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	insightsService := insights.NewService(reportingService, completer, logger)
	subscriptionService := subscription.NewService(subscriptionRepo, nil, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo, rdb, logger)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, nil, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	companyHandler := company.NewHandler(companyService)
	userHandler := user.NewHandler(userService)
	driverHandler := driver.NewHandler(driverService)
	truckHandler := truck.NewHandler(truckService)
	hosHandler := hos.NewHandler(hosService)
	dispatchHandler := dispatch.NewHandler(dispatchService)
	billingHandler := billing.NewHandler(billingService)
	accountingHandler := accounting.NewHandler(accountingService)
	recurringHandler := recurring.NewHandler(recurringService)
	reportingHandler := reporting.NewHandler(reportingService)
	insightsHandler := insights.NewHandler(insightsService)
	subscriptionHandler := subscription.NewHandler(subscriptionService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		company.RegisterRoutes(api, companyHandler, rbacService)
		user.RegisterRoutes(api, userHandler, rbacService)
		driver.RegisterRoutes(api, driverHandler, rbacService)
		truck.RegisterRoutes(api, truckHandler, rbacService)
		hos.RegisterRoutes(api, hosHandler, rbacService)
		dispatch.RegisterRoutes(api, dispatchHandler, rbacService, rdb)
		billing.RegisterRoutes(api, billingHandler, rbacService)
		accounting.RegisterRoutes(api, accountingHandler, rbacService)
		recurring.RegisterRoutes(api, recurringHandler, rbacService)
		reporting.RegisterRoutes(api, reportingHandler, rbacService)
		insights.RegisterRoutes(api, insightsHandler, rbacService)
		subscription.RegisterRoutes(api, subscriptionHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
