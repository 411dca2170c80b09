package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/dephea/bitrix-task/internal/adapter/bitrix"
	httpadapter "github.com/dephea/bitrix-task/internal/adapter/http"
	"github.com/dephea/bitrix-task/internal/adapter/http/handlers"
	"github.com/dephea/bitrix-task/internal/adapter/http/middleware"
	"github.com/dephea/bitrix-task/internal/adapter/http/validation"
	appservice "github.com/dephea/bitrix-task/internal/app/service"
	"github.com/dephea/bitrix-task/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const webhookPath = "/rest/1/secret/"

type providerCall struct {
	Method string
	Body   string
}

type providerAnswer struct {
	Status int
	Body   string
}

// fakeBitrix stands in for the webhook endpoint and records every REST call it receives.
type fakeBitrix struct {
	mu      sync.Mutex
	answers map[string]providerAnswer
	calls   []providerCall
}

func (f *fakeBitrix) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := strings.TrimPrefix(r.URL.Path, webhookPath)
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.calls = append(f.calls, providerCall{Method: method, Body: string(body)})
	answer, ok := f.answers[method]
	f.mu.Unlock()

	if !ok {
		answer = providerAnswer{Status: http.StatusNotFound, Body: `{"error":"ERROR_METHOD_NOT_FOUND","error_description":"Method not found!"}`}
	}
	if answer.Status == 0 {
		answer.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(answer.Status)
	_, _ = w.Write([]byte(answer.Body))
}

type IntegrationSuiteBase struct {
	suite.Suite

	provider *fakeBitrix
	server   *httptest.Server
	Router   *gin.Engine
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{
		TranslationFolder:  "../../../../pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageRu, translator.LanguageEn},
	})
	validation.Register()

	s.provider = &fakeBitrix{}
	s.server = httptest.NewServer(s.provider)
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.provider.mu.Lock()
	s.provider.answers = map[string]providerAnswer{}
	s.provider.calls = nil
	s.provider.mu.Unlock()

	client, err := bitrix.NewClient(bitrix.Config{WebhookURL: s.server.URL + webhookPath})
	s.Require().NoError(err)
	gateway := bitrix.NewTaskGateway(client)
	taskService := appservice.NewTaskService(gateway)

	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	httpadapter.RegisterRoutes(
		router,
		handlers.NewHealthHandler(gateway),
		handlers.NewTaskHandler(taskService),
		handlers.NewCommentHandler(taskService),
	)
	s.Router = router
}

func (s *IntegrationSuiteBase) Answer(method string, status int, body string) {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	s.provider.answers[method] = providerAnswer{Status: status, Body: body}
}

func (s *IntegrationSuiteBase) Calls() []providerCall {
	s.provider.mu.Lock()
	defer s.provider.mu.Unlock()
	return append([]providerCall(nil), s.provider.calls...)
}
