package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"time"

	"github.com/infocomm/inventory-backend/internal/auth"
	handler "github.com/infocomm/inventory-backend/internal/http/handlers"
	"github.com/infocomm/inventory-backend/internal/http/router"
	"github.com/infocomm/inventory-backend/internal/logger"
	"github.com/infocomm/inventory-backend/internal/models"
	"github.com/infocomm/inventory-backend/internal/notify"
	"github.com/infocomm/inventory-backend/internal/repo"
	"github.com/infocomm/inventory-backend/internal/service"
	"github.com/infocomm/inventory-backend/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

const (
	adminEmail    = "admin@infocomm.local"
	adminPassword = "secret"
)

var (
	token         string
	admin         models.User
	productRepo   *repo.InMemoryProductRepository
	alertRepo     *repo.InMemoryAlertRepository
	movementRepo  *repo.InMemoryMovementRepository
	userRepo      *repo.InMemoryUserRepository
	tokenManager  *auth.TokenManager
	tokenRevoker  *auth.MemoryRevoker
	notifications *recordingNotifier

	// Seeded reference data.
	manufacturerID int64
	phonesID       int64
	tabletsID      int64
)

type recordingNotifier struct {
	events []notify.LowStockEvent
}

func (n *recordingNotifier) NotifyLowStock(_ context.Context, ev notify.LowStockEvent) error {
	n.events = append(n.events, ev)
	return nil
}

func init() {
	setupTestRepos(adminPassword)

	var err error
	token, err = generateToken(newRouter(), adminEmail, adminPassword)
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	ctx := context.Background()
	log := logger.NewDiscardLogger()

	productRepo = repo.NewInMemoryProductRepository()
	alertRepo = repo.NewInMemoryAlertRepository()
	movementRepo = repo.NewInMemoryMovementRepository()
	userRepo = repo.NewInMemoryUserRepository()
	manufacturerRepo := repo.NewInMemoryManufacturerRepository()
	categoryRepo := repo.NewInMemoryCategoryRepository()

	if _, err := auth.EnsureAdmin(ctx, userRepo, adminEmail, password); err != nil {
		panic(fmt.Sprintf("error creating admin: %v", err))
	}
	admin, _ = userRepo.GetByEmail(ctx, adminEmail)

	m, _ := manufacturerRepo.Create(ctx, models.Manufacturer{Name: "Acme"})
	manufacturerID = m.ID
	c1, _ := categoryRepo.Create(ctx, models.Category{Name: "Phones"})
	c2, _ := categoryRepo.Create(ctx, models.Category{Name: "Tablets"})
	phonesID, tabletsID = c1.ID, c2.ID

	notifications = &recordingNotifier{}
	validator := validation.NewValidator(manufacturerRepo, categoryRepo)
	productService := service.NewProductService(productRepo, validator, nil, log)
	alertService := service.NewAlertService(alertRepo, productRepo, userRepo, nil, notifications, log)
	productService.SetStockWatcher(alertService)
	productService.SetMovementLog(movementRepo)

	metricsRepo := repo.NewInMemoryMetricsRepository()
	metricsRepo.SetRepositories(productRepo, categoryRepo, alertRepo)

	tokenManager = auth.NewTokenManager("test-secret", 15*time.Minute)
	tokenRevoker = auth.NewMemoryRevoker()

	handler.SetProductService(productService)
	handler.SetAlertService(alertService)
	handler.SetManufacturerRepo(manufacturerRepo)
	handler.SetCategoryRepo(categoryRepo)
	handler.SetClientRepo(repo.NewInMemoryClientRepository())
	handler.SetUserRepo(userRepo)
	handler.SetMetricsRepo(metricsRepo)
	handler.SetTokenManager(tokenManager)
	handler.SetRevoker(tokenRevoker)
}

func newRouter() http.Handler {
	return router.NewRouter(router.Deps{Tokens: tokenManager, Revoker: tokenRevoker})
}

func clearAllProducts() {
	productRepo.Clear()
	alertRepo.Clear()
	movementRepo.Clear()
	notifications.events = nil
}

func generateToken(r http.Handler, email, password string) (string, error) {
	payload := handler.LoginRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doJSON(r http.Handler, method, path string, payload any, authorized bool) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		_ = json.NewEncoder(&body).Encode(payload)
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, in models.ProductInput) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/produits/post", in, false)
}

// mustCreateProduct creates a product and returns its id.
func mustCreateProduct(r http.Handler, in models.ProductInput) int64 {
	w := createProduct(r, in)
	if w.Code != http.StatusOK {
		panic(fmt.Sprintf("create product: status %d body %q", w.Code, w.Body.String()))
	}
	var id int64
	if err := json.NewDecoder(w.Body).Decode(&id); err != nil {
		panic(err)
	}
	return id
}

func listProducts(r http.Handler) []models.Product {
	w := doJSON(r, http.MethodGet, "/produits", nil, false)
	var products []models.Product
	_ = json.NewDecoder(w.Body).Decode(&products)
	return products
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func ptr[T any](v T) *T { return &v }

func createUser(email, password string) models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	u, err := userRepo.CreateUser(context.Background(), models.User{
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       models.RoleUser,
	})
	if err != nil {
		panic(err)
	}
	return u
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }

func newAuthorizedRequest(method, path, tok string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
