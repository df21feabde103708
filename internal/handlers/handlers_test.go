package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_listing_app/internal/core/ports/services"
	"github.com/SscSPs/price_listing_app/internal/dto"
	"github.com/SscSPs/price_listing_app/internal/handlers"
	"github.com/SscSPs/price_listing_app/internal/middleware"
	"github.com/SscSPs/price_listing_app/internal/platform/config"
	"github.com/SscSPs/price_listing_app/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

type HandlersTestSuite struct {
	suite.Suite
	providers  *MockProviderService
	currencies *MockCurrencyService
	articles   *MockArticleService
	cfg        *config.Config
}

func (s *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(validation.RegisterWithGin())
}

func (s *HandlersTestSuite) SetupTest() {
	s.providers = new(MockProviderService)
	s.currencies = new(MockCurrencyService)
	s.articles = new(MockArticleService)
	s.cfg = &config.Config{
		IsProduction:       true,
		ArticlePageSize:    2,
		ArticleMaxPageSize: 10,
	}
}

func (s *HandlersTestSuite) router() *gin.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	failureStatus := http.StatusBadRequest
	if s.cfg.StandardStatusCodes {
		failureStatus = http.StatusInternalServerError
	}
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.Recovery(failureStatus))
	handlers.RegisterRoutes(r, s.cfg, &portssvc.ServiceContainer{
		Provider: s.providers,
		Currency: s.currencies,
		Article:  s.articles,
	})
	return r
}

func (s *HandlersTestSuite) do(method, path, body string) (*httptest.ResponseRecorder, envelope) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (s *HandlersTestSuite) assertFailed(w *httptest.ResponseRecorder, env envelope, status int, message string) {
	s.Equal(status, w.Code)
	s.Equal(dto.StatusFailed, env.Status)
	s.Equal(message, env.Message)
}

func (s *HandlersTestSuite) assertSuccessMessage(w *httptest.ResponseRecorder, env envelope, status int, message string) {
	s.Equal(status, w.Code)
	s.Equal(dto.StatusSuccess, env.Status)
	var data string
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(message, data)
}

func (s *HandlersTestSuite) TestHealth() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Equal("OK", w.Body.String())
}

// --- Currency ---

func (s *HandlersTestSuite) TestCreateCurrency_ThenDuplicate() {
	req := dto.CreateCurrencyRequest{CurrencyID: "USD", CurrencyName: "dola"}
	s.currencies.On("CreateCurrency", mock.Anything, req).
		Return(&domain.Currency{CurrencyID: "USD", CurrencyName: "dola"}, nil).Once()
	s.currencies.On("CreateCurrency", mock.Anything, req).
		Return(nil, apperrors.NewConflictError(domain.MsgCurrencyExists)).Once()

	body := `{"currency_id":"USD","currency_name":"dola"}`
	w, env := s.do(http.MethodPost, "/currency/", body)
	s.assertSuccessMessage(w, env, http.StatusCreated, "Currency created successfully")
	s.Equal("/currency/USD/", w.Header().Get("Location"))

	w, env = s.do(http.MethodPost, "/currency/", body)
	s.assertFailed(w, env, http.StatusBadRequest, "Currency with this data already exists")
	s.currencies.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestCreateCurrency_MissingName() {
	w, env := s.do(http.MethodPost, "/currency/", `{"currency_id":"USD"}`)

	s.assertFailed(w, env, http.StatusBadRequest, "Currency name cannot be empty")
	s.currencies.AssertNotCalled(s.T(), "CreateCurrency", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestCreateCurrency_EmptyBody() {
	w, env := s.do(http.MethodPost, "/currency/", "")

	s.assertFailed(w, env, http.StatusBadRequest, "Currency id cannot be empty")
}

func (s *HandlersTestSuite) TestCreateCurrency_MalformedBody() {
	for _, body := range []string{`{"currency_id":`, `{"currency_id":{"code":"USD"},"currency_name":"dola"}`, `[1]`} {
		w, env := s.do(http.MethodPost, "/currency/", body)

		s.assertFailed(w, env, http.StatusBadRequest, "Invalid request body")
		s.NotContains(env.Message, "json")
	}
	s.currencies.AssertNotCalled(s.T(), "CreateCurrency", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestListCurrencies_Empty() {
	s.currencies.On("ListCurrencies", mock.Anything).Return([]domain.Currency{}, nil).Once()

	w, env := s.do(http.MethodGet, "/currency/", "")

	s.assertFailed(w, env, http.StatusBadRequest, "No currency added yet")
}

func (s *HandlersTestSuite) TestGetCurrency() {
	s.currencies.On("GetCurrencyByID", mock.Anything, "usd").
		Return(&domain.Currency{CurrencyID: "USD", CurrencyName: "dola"}, nil).Once()

	w, env := s.do(http.MethodGet, "/currency/usd/", "")

	s.Equal(http.StatusOK, w.Code)
	var data dto.CurrencyResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(dto.CurrencyResponse{CurrencyID: "USD", CurrencyName: "dola"}, data)
}

func (s *HandlersTestSuite) TestUpdateCurrency_RejectsPrimaryKey() {
	s.currencies.On("GetCurrencyByID", mock.Anything, "USD").Return(&domain.Currency{CurrencyID: "USD"}, nil).Once()

	w, env := s.do(http.MethodPatch, "/currency/USD/", `{"currency_id":"EUR"}`)

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid field: currency_id")
	s.currencies.AssertNotCalled(s.T(), "UpdateCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestDeleteCurrency() {
	s.currencies.On("DeleteCurrency", mock.Anything, "USD").Return(nil).Once()

	w, env := s.do(http.MethodDelete, "/currency/USD/", "")

	s.assertSuccessMessage(w, env, http.StatusOK, "Currency deleted successfully")
}

// --- Provider ---

func (s *HandlersTestSuite) TestCreateProvider() {
	s.providers.On("CreateProvider", mock.Anything, dto.CreateProviderRequest{ProviderName: "Acme"}).
		Return(&domain.Provider{ProviderNo: "0001", ProviderName: "Acme"}, nil).Once()

	w, env := s.do(http.MethodPost, "/providers/", `{"provider_name":"Acme"}`)

	s.assertSuccessMessage(w, env, http.StatusCreated, "Provider created successfully")
	s.Equal("/providers/0001/", w.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestCreateProvider_NameTooLong() {
	w, env := s.do(http.MethodPost, "/providers/", `{"provider_name":"`+strings.Repeat("x", 51)+`"}`)

	s.assertFailed(w, env, http.StatusBadRequest, "Provider name must not exceed 50 characters")
}

func (s *HandlersTestSuite) TestCreateProvider_InternalErrorIsHidden() {
	s.providers.On("CreateProvider", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewAppError("failed to create provider", assert.AnError)).Twice()

	w, env := s.do(http.MethodPost, "/providers/", `{"provider_name":"Acme"}`)
	s.assertFailed(w, env, http.StatusBadRequest, apperrors.GenericMessage)

	s.cfg.StandardStatusCodes = true
	w, env = s.do(http.MethodPost, "/providers/", `{"provider_name":"Acme"}`)
	s.assertFailed(w, env, http.StatusInternalServerError, apperrors.GenericMessage)
}

func (s *HandlersTestSuite) TestGetProvider_Unknown() {
	s.providers.On("GetProviderByNo", mock.Anything, "0042").
		Return(nil, apperrors.NewNotFoundError(domain.MsgInvalidProviderID)).Twice()

	w, env := s.do(http.MethodGet, "/providers/0042/", "")
	s.assertFailed(w, env, http.StatusBadRequest, "Invalid provider id")

	s.cfg.StandardStatusCodes = true
	w, env = s.do(http.MethodGet, "/providers/0042/", "")
	s.assertFailed(w, env, http.StatusNotFound, "Invalid provider id")
}

func (s *HandlersTestSuite) TestListProviders() {
	s.providers.On("ListProviders", mock.Anything).Return([]domain.Provider{
		{ProviderNo: "0002", ProviderName: "Globex"},
		{ProviderNo: "0001", ProviderName: "Acme"},
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/providers/", "")

	s.Equal(http.StatusOK, w.Code)
	var data []dto.ProviderResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Len(data, 2)
	s.Equal("0002", data[0].ProviderNo)
}

func (s *HandlersTestSuite) TestUpdateProvider() {
	name := "Renamed"
	s.providers.On("GetProviderByNo", mock.Anything, "0001").Return(&domain.Provider{ProviderNo: "0001"}, nil).Once()
	s.providers.On("UpdateProvider", mock.Anything, "0001", dto.UpdateProviderRequest{ProviderName: &name}).
		Return(&domain.Provider{ProviderNo: "0001", ProviderName: name}, nil).Once()

	w, env := s.do(http.MethodPatch, "/providers/0001/", `{"provider_name":"Renamed"}`)

	s.assertSuccessMessage(w, env, http.StatusOK, "Provider updated successfully")
	s.providers.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestUpdateProvider_InvalidField() {
	s.providers.On("GetProviderByNo", mock.Anything, "0001").Return(&domain.Provider{ProviderNo: "0001"}, nil).Once()

	w, env := s.do(http.MethodPatch, "/providers/0001/", `{"provider_no":"0009"}`)

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid field: provider_no")
}

func (s *HandlersTestSuite) TestDeleteProvider() {
	s.providers.On("DeleteProvider", mock.Anything, "0001").Return(nil).Once()

	w, env := s.do(http.MethodDelete, "/providers/0001/", "")

	s.assertSuccessMessage(w, env, http.StatusOK, "Provider has been deleted successfully")
}

func (s *HandlersTestSuite) TestPanicBecomesFailureEnvelope() {
	s.providers.On("ListProviders", mock.Anything).Run(func(mock.Arguments) {
		panic("boom")
	}).Return(nil, nil).Once()

	w, env := s.do(http.MethodGet, "/providers/", "")

	s.assertFailed(w, env, http.StatusBadRequest, apperrors.GenericMessage)
}

// --- Article ---

func (s *HandlersTestSuite) TestCreateArticle_NumericValues() {
	s.articles.On("CreateArticle", mock.Anything, dto.CreateArticleRequest{
		CurrencyID: "USD", ProviderNo: "1", Price: "100.5",
	}).Return(nil, apperrors.NewValidationFailedError(domain.MsgInvalidProviderID)).Once()

	w, env := s.do(http.MethodPost, "/articles/", `{"currency_id":"USD","provider_no":1,"price":100.5}`)

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid provider id")
	s.articles.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestCreateArticle_BadPrice() {
	w, env := s.do(http.MethodPost, "/articles/", `{"currency_id":"USD","provider_no":"0001","price":"10.555"}`)

	s.assertFailed(w, env, http.StatusBadRequest, validation.PriceMessage)
	s.articles.AssertNotCalled(s.T(), "CreateArticle", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestCreateArticle() {
	s.articles.On("CreateArticle", mock.Anything, mock.AnythingOfType("dto.CreateArticleRequest")).
		Return(&domain.Article{ArticleNo: 101}, nil).Once()

	w, env := s.do(http.MethodPost, "/articles/", `{"currency_id":"USD","provider_no":"0001","price":"100.50"}`)

	s.assertSuccessMessage(w, env, http.StatusCreated, "Article created successfully")
	s.Equal("/articles/101/", w.Header().Get("Location"))
}

func (s *HandlersTestSuite) TestGetArticle_NonNumericNumber() {
	w, env := s.do(http.MethodGet, "/articles/abc/", "")

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid article number")
	s.articles.AssertNotCalled(s.T(), "GetArticleByNo", mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestGetArticle() {
	s.articles.On("GetArticleByNo", mock.Anything, int64(101)).Return(&domain.Article{
		ArticleNo: 101, CurrencyID: "USD", CurrencyName: "dola",
		ProviderNo: "0001", ProviderName: "Acme", Price: decimal.RequireFromString("100.5"),
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/articles/101/", "")

	s.Equal(http.StatusOK, w.Code)
	var data dto.ArticleResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("100.50", data.Price)
	s.Equal("Acme", data.ProviderName)
}

func (s *HandlersTestSuite) TestListArticles_Paginates() {
	s.articles.On("ListArticles", mock.Anything, 2, 2).Return(&domain.ArticlePage{
		Articles: []domain.Article{{ArticleNo: 103}, {ArticleNo: 102}},
		Total:    5,
	}, nil).Once()

	w, env := s.do(http.MethodGet, "/articles/?page=2", "")

	s.Equal(http.StatusOK, w.Code)
	var data dto.ListArticlesResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(int64(5), data.Count)
	s.Len(data.Results, 2)
	s.Require().NotNil(data.Next)
	s.Require().NotNil(data.Previous)
	s.Equal("http://example.com/articles/?page=3", *data.Next)
	s.Equal("http://example.com/articles/", *data.Previous)
}

func (s *HandlersTestSuite) TestListArticles_IgnoresForwardedProto() {
	s.articles.On("ListArticles", mock.Anything, 2, 0).Return(&domain.ArticlePage{
		Articles: []domain.Article{{ArticleNo: 105}, {ArticleNo: 104}},
		Total:    3,
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/articles/", nil)
	req.Header.Set("X-Forwarded-Proto", "javascript")
	w := httptest.NewRecorder()
	s.router().ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	var env envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	var data dto.ListArticlesResponse
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Require().NotNil(data.Next)
	s.Equal("http://example.com/articles/?page=2", *data.Next)
}

func (s *HandlersTestSuite) TestListArticles_Empty() {
	s.articles.On("ListArticles", mock.Anything, 2, 0).Return(&domain.ArticlePage{Articles: []domain.Article{}}, nil).Once()

	w, env := s.do(http.MethodGet, "/articles/", "")

	s.assertFailed(w, env, http.StatusBadRequest, "No article found")
}

func (s *HandlersTestSuite) TestListArticles_BadPage() {
	w, env := s.do(http.MethodGet, "/articles/?page=zero", "")

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid page.")
}

func (s *HandlersTestSuite) TestListArticles_HugePage() {
	w, env := s.do(http.MethodGet, "/articles/?page=9223372036854775807", "")

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid page.")
	s.articles.AssertNotCalled(s.T(), "ListArticles", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestUpdateArticle() {
	s.articles.On("GetArticleByNo", mock.Anything, int64(101)).Return(&domain.Article{ArticleNo: 101}, nil).Once()
	s.articles.On("UpdateArticle", mock.Anything, int64(101), mock.MatchedBy(func(req dto.UpdateArticleRequest) bool {
		return req.Price != nil && req.Price.String() == "7.25" && req.CurrencyKey() == nil
	})).Return(&domain.Article{ArticleNo: 101}, nil).Once()

	w, env := s.do(http.MethodPatch, "/articles/101/", `{"price":"7.25"}`)

	s.assertSuccessMessage(w, env, http.StatusOK, "Article updated successfully")
	s.articles.AssertExpectations(s.T())
}

func (s *HandlersTestSuite) TestDeleteArticle_Unknown() {
	s.articles.On("DeleteArticle", mock.Anything, int64(999)).
		Return(apperrors.NewNotFoundError(domain.MsgInvalidArticleNo)).Once()

	w, env := s.do(http.MethodDelete, "/articles/999/", "")

	s.assertFailed(w, env, http.StatusBadRequest, "Invalid article number")
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
