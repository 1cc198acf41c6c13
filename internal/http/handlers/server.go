package handlers

import (
	"github.com/infocomm/inventory-backend/internal/auth"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/service"
)

var (
	productService   *service.ProductService
	alertService     *service.AlertService
	manufacturerRepo repo.ManufacturerRepository
	categoryRepo     repo.CategoryRepository
	clientRepo       repo.ClientRepository
	userRepo         repo.UserRepository
	metricsRepo      repo.MetricsRepository

	tokens  *auth.TokenManager
	revoker auth.Revoker

	appLogger logger.Logger = logger.NewDiscardLogger()
)

func SetProductService(s *service.ProductService) {
	productService = s
}

func SetAlertService(s *service.AlertService) {
	alertService = s
}

func SetManufacturerRepo(r repo.ManufacturerRepository) {
	manufacturerRepo = r
}

func SetCategoryRepo(r repo.CategoryRepository) {
	categoryRepo = r
}

func SetClientRepo(r repo.ClientRepository) {
	clientRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}

func SetTokenManager(tm *auth.TokenManager) {
	tokens = tm
}

func SetRevoker(r auth.Revoker) {
	revoker = r
}

func SetLogger(l logger.Logger) {
	appLogger = l
}
