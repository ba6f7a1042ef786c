package integration

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	httpHandler "github.com/cedbrasil/enrolld/internal/adapter/http/handler"
	"github.com/cedbrasil/enrolld/internal/adapter/storage/memory"
	redisStorage "github.com/cedbrasil/enrolld/internal/adapter/storage/redis"
	"github.com/cedbrasil/enrolld/internal/core/domain"
	"github.com/cedbrasil/enrolld/internal/service"
	"github.com/cedbrasil/enrolld/pkg/apperror"
	"github.com/cedbrasil/enrolld/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack: real HTTP layer, middleware,
// services and Redis dedup store (miniredis), with in-memory fakes standing
// in for the external academic system, payment processor and notifier.

const (
	testWebhookSecret   = "integration-secret"
	testOperatorUser    = "admin"
	testOperatorPass    = "integration-pass"
	testAllocatorPrefix = "20254158"
)

// fakeAcademic is a stateful stand-in for the school management API.
type fakeAcademic struct {
	mu          sync.Mutex
	students    map[domain.RegistrationCode]string // code -> student id
	nextID      int
	createCalls int
	enrollments map[string][]int // student id -> discipline ids

	alwaysInUse bool
	failEnroll  bool
}

func newFakeAcademic() *fakeAcademic {
	return &fakeAcademic{
		students:    make(map[domain.RegistrationCode]string),
		enrollments: make(map[string][]int),
	}
}

func (f *fakeAcademic) CountStudents(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.students), nil
}

func (f *fakeAcademic) CountStudentsByCodePrefix(ctx context.Context, prefix string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for code := range f.students {
		if strings.HasPrefix(string(code), prefix) {
			count++
		}
	}
	return count, nil
}

func (f *fakeAcademic) FindStudentByCode(ctx context.Context, code domain.RegistrationCode) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.students[code], nil
}

func (f *fakeAcademic) CreateStudent(ctx context.Context, profile domain.StudentProfile) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	if f.alwaysInUse {
		return "", apperror.ErrCodeInUse(string(profile.RegistrationCode))
	}
	if _, taken := f.students[profile.RegistrationCode]; taken {
		return "", apperror.ErrCodeInUse(string(profile.RegistrationCode))
	}
	f.nextID++
	id := fmt.Sprintf("om-%d", f.nextID)
	f.students[profile.RegistrationCode] = id
	return id, nil
}

func (f *fakeAcademic) EnrollStudent(ctx context.Context, studentID string, disciplineIDs []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failEnroll {
		return apperror.ErrExternalRejected("matrícula indisponível")
	}
	f.enrollments[studentID] = append([]int(nil), disciplineIDs...)
	return nil
}

func (f *fakeAcademic) createCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.createCalls
}

func (f *fakeAcademic) disciplinesOf(studentID string) []int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enrollments[studentID]
}

func (f *fakeAcademic) setFailEnroll(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failEnroll = v
}

// fakePayments is a stand-in for the payment processor.
type fakePayments struct {
	mu        sync.Mutex
	resources map[string]*domain.PaymentResource // resource id -> state
	lastID    int
}

func newFakePayments() *fakePayments {
	return &fakePayments{resources: make(map[string]*domain.PaymentResource)}
}

func (f *fakePayments) CreateCheckout(ctx context.Context, summary domain.CheckoutSummary) (*domain.Checkout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastID++
	id := fmt.Sprintf("mp-%d", f.lastID)
	f.resources[id] = &domain.PaymentResource{
		ResourceID:    id,
		Status:        domain.PaymentPending,
		CorrelationID: summary.CorrelationID,
		PayerEmail:    summary.Email,
	}
	return &domain.Checkout{ResourceID: id, RedirectURL: "https://mp.test/checkout/" + id}, nil
}

func (f *fakePayments) GetResource(ctx context.Context, topic domain.EventTopic, resourceID string) (*domain.PaymentResource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok := f.resources[resourceID]
	if !ok {
		return nil, apperror.ErrExternalUnavailable("payment processor", fmt.Errorf("unknown resource %s", resourceID))
	}
	copied := *res
	return &copied, nil
}

func (f *fakePayments) setStatus(resourceID string, status domain.PaymentStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res, ok := f.resources[resourceID]; ok {
		res.Status = status
	}
}

func (f *fakePayments) dropReference(resourceID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if res, ok := f.resources[resourceID]; ok {
		res.CorrelationID = ""
	}
}

func (f *fakePayments) lastResourceID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("mp-%d", f.lastID)
}

// fakeNotifier records outbound messages.
type fakeNotifier struct {
	mu       sync.Mutex
	welcomes []string // contact numbers
	events   []string // titles
}

func (f *fakeNotifier) SendWelcome(ctx context.Context, contactNumber string, name string, code domain.RegistrationCode, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.welcomes = append(f.welcomes, contactNumber)
	return nil
}

func (f *fakeNotifier) LogEvent(ctx context.Context, title string, description string, success bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, title)
	return nil
}

func (f *fakeNotifier) welcomeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.welcomes)
}

type testApp struct {
	server   *httptest.Server
	redis    *miniredis.Miniredis
	repo     *memory.EnrollmentStore
	academic *fakeAcademic
	payments *fakePayments
	notifier *fakeNotifier
}

type appOption func(*appConfig)

type appConfig struct {
	maxAttempts int
}

func withMaxAttempts(n int) appOption {
	return func(c *appConfig) { c.maxAttempts = n }
}

func newTestApp(t *testing.T, opts ...appOption) *testApp {
	t.Helper()

	cfg := appConfig{maxAttempts: 100}
	for _, opt := range opts {
		opt(&cfg)
	}

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	log := logger.New("disabled", false)
	repo := memory.NewEnrollmentStore()
	dedup := redisStorage.NewDedupStore(rdb, time.Hour)
	academic := newFakeAcademic()
	payments := newFakePayments()
	notifier := &fakeNotifier{}

	catalog := service.NewCatalogService(domain.DefaultCourseTable(), 0.8, log)
	metrics := service.NewMetricsService()
	policy := service.AttemptPolicy{MaxAttempts: cfg.maxAttempts}
	allocator := service.NewAllocatorService(academic, testAllocatorPrefix, 3, policy, log)
	registrationSvc := service.NewRegistrationService(catalog, allocator, academic, notifier, "123456", policy, log)
	reconcilerSvc := service.NewReconcilerService(repo, dedup, payments, registrationSvc, notifier, metrics, log)
	enrollmentSvc := service.NewEnrollmentAppService(repo, catalog, payments, registrationSvc, notifier, metrics, log)

	hashSvc := service.NewArgon2HashService()
	passwordHash, err := hashSvc.Hash(testOperatorPass)
	require.NoError(t, err)
	tokenSvc := service.NewJWTTokenService("integration-jwt-secret-32bytes!!", time.Hour, "enrolld-test")
	authSvc := service.NewOperatorAuthService(testOperatorUser, passwordHash, hashSvc, tokenSvc)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		EnrollmentSvc: enrollmentSvc,
		Reconciler:    reconcilerSvc,
		AuthSvc:       authSvc,
		TokenSvc:      tokenSvc,
		Catalog:       catalog,
		Metrics:       metrics,
		WebhookSecret: testWebhookSecret,
		Logger:        log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:   server,
		redis:    mr,
		repo:     repo,
		academic: academic,
		payments: payments,
		notifier: notifier,
	}
}

// submit creates an intent through the public API and returns its
// correlation id and the checkout resource id.
func (a *testApp) submit(t *testing.T, name, whatsapp, email string, courses []string) (string, string) {
	t.Helper()

	body, _ := json.Marshal(map[string]any{
		"nome":     name,
		"whatsapp": whatsapp,
		"email":    email,
		"cursos":   courses,
	})
	resp, err := http.Post(a.server.URL+"/api/v1/matricula", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var envelope struct {
		Data struct {
			CorrelationID string `json:"id"`
			CheckoutURL   string `json:"checkout_url"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotEmpty(t, envelope.Data.CorrelationID)
	require.NotEmpty(t, envelope.Data.CheckoutURL)

	return envelope.Data.CorrelationID, a.payments.lastResourceID()
}

// deliverWebhook sends a signed query-shape notification.
func (a *testApp) deliverWebhook(t *testing.T, topic, resourceID string) int {
	t.Helper()

	ts := fmt.Sprintf("%d", time.Now().Unix())
	requestID := fmt.Sprintf("req-%s-%s", resourceID, ts)
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	fmt.Fprintf(mac, "id:%s;request-id:%s;ts:%s;", strings.ToLower(resourceID), requestID, ts)
	signature := hex.EncodeToString(mac.Sum(nil))

	url := fmt.Sprintf("%s/webhook/mp?topic=%s&id=%s&data.id=%s", a.server.URL, topic, resourceID, resourceID)
	req, err := http.NewRequest(http.MethodPost, url, nil)
	require.NoError(t, err)
	req.Header.Set("x-signature", "ts="+ts+",v1="+signature)
	req.Header.Set("x-request-id", requestID)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

// login returns an operator JWT.
func (a *testApp) login(t *testing.T) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"username": testOperatorUser,
		"password": testOperatorPass,
	})
	resp, err := http.Post(a.server.URL+"/api/v1/auth/login", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data.Token
}

// intent reads the intent straight from the store.
func (a *testApp) intent(t *testing.T, correlationID string) *domain.EnrollmentIntent {
	t.Helper()
	intent, err := a.repo.Get(context.Background(), correlationID)
	require.NoError(t, err)
	require.NotNil(t, intent)
	return intent
}
