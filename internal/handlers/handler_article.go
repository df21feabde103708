package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/price_listing_app/internal/apperrors"
	"github.com/SscSPs/price_listing_app/internal/core/domain"
	portssvc "github.com/SscSPs/price_listing_app/internal/core/ports/services"
	"github.com/SscSPs/price_listing_app/internal/dto"
	"github.com/SscSPs/price_listing_app/internal/middleware"
	"github.com/SscSPs/price_listing_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

const (
	msgArticleCreated = "Article created successfully"
	msgArticleUpdated = "Article updated successfully"
	msgArticleDeleted = "Article deleted successfully"
	msgNoArticles     = "No article found"
	msgInvalidPage    = "Invalid page."
)

// articleHandler handles HTTP requests related to articles.
type articleHandler struct {
	responder
	articleService  portssvc.ArticleSvcFacade
	defaultPageSize int
	maxPageSize     int
}

func newArticleHandler(as portssvc.ArticleSvcFacade, r responder, defaultPageSize, maxPageSize int) *articleHandler {
	return &articleHandler{
		responder:       r,
		articleService:  as,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// registerArticleRoutes registers routes related to articles.
func registerArticleRoutes(rg gin.IRouter, articleService portssvc.ArticleSvcFacade, r responder, defaultPageSize, maxPageSize int) {
	h := newArticleHandler(articleService, r, defaultPageSize, maxPageSize)

	articles := rg.Group("/articles")
	{
		articles.GET("/", h.listArticles)
		articles.POST("/", h.createArticle)
		articles.GET("/:article_no/", h.getArticle)
		articles.PATCH("/:article_no/", h.updateArticle)
		articles.DELETE("/:article_no/", h.deleteArticle)
	}
}

// articleNoParam parses the article number path segment. Anything that is
// not a number cannot name an article.
func articleNoParam(c *gin.Context) (int64, error) {
	articleNo, err := strconv.ParseInt(c.Param("article_no"), 10, 64)
	if err != nil {
		return 0, apperrors.NewNotFoundError(domain.MsgInvalidArticleNo)
	}
	return articleNo, nil
}

// listArticles godoc
// @Summary List articles
// @Description Lists live articles one page at a time, newest first
// @Tags articles
// @Produce json
// @Param page query int false "Page number, from 1"
// @Param page_size query int false "Articles per page"
// @Success 200 {object} dto.SuccessResponse{data=dto.ListArticlesResponse}
// @Failure 400 {object} dto.FailureResponse "No article found"
// @Router /articles/ [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	var params dto.ListArticlesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.fail(c, apperrors.NewValidationFailedError(msgInvalidPage))
		return
	}
	page := pagination.NewPage(params.Page, params.PageSize, h.defaultPageSize, h.maxPageSize)
	if !page.Addressable() {
		h.fail(c, apperrors.NewNotFoundError(msgInvalidPage))
		return
	}

	result, err := h.articleService.ListArticles(c.Request.Context(), page.Limit(), page.Offset())
	if err != nil {
		h.fail(c, err)
		return
	}
	if result.Total == 0 {
		h.fail(c, apperrors.NewNotFoundError(msgNoArticles))
		return
	}
	if page.Number > page.LastPage(result.Total) {
		h.fail(c, apperrors.NewNotFoundError(msgInvalidPage))
		return
	}

	next, previous := page.Links(requestURL(c), result.Total)
	h.success(c, http.StatusOK, dto.ListArticlesResponse{
		Count:    result.Total,
		Next:     next,
		Previous: previous,
		Results:  dto.ToListArticleResponse(result.Articles),
	})
}

// createArticle godoc
// @Summary Create an article
// @Description Prices a currency for a provider. Both must exist; numbers start at 101.
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse
// @Router /articles/ [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := bindBody(c, &req, dto.ArticleValidationMessages); err != nil {
		h.fail(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Article created",
		slog.Int64("article_no", article.ArticleNo))
	c.Header("Location", "/articles/"+strconv.FormatInt(article.ArticleNo, 10)+"/")
	h.success(c, http.StatusCreated, msgArticleCreated)
}

// getArticle godoc
// @Summary Get an article
// @Tags articles
// @Produce json
// @Param article_no path int true "Article number" example(101)
// @Success 200 {object} dto.SuccessResponse{data=dto.ArticleResponse}
// @Failure 400 {object} dto.FailureResponse "Invalid article number"
// @Router /articles/{article_no}/ [get]
func (h *articleHandler) getArticle(c *gin.Context) {
	articleNo, err := articleNoParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	article, err := h.articleService.GetArticleByNo(c.Request.Context(), articleNo)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, dto.ToArticleResponse(article))
}

// updateArticle godoc
// @Summary Update an article
// @Description Partially updates an article. Accepts price, article_id or currency_id, provider_id or provider_no.
// @Tags articles
// @Accept json
// @Produce json
// @Param article_no path int true "Article number"
// @Param article body dto.UpdateArticleRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse
// @Router /articles/{article_no}/ [patch]
func (h *articleHandler) updateArticle(c *gin.Context) {
	articleNo, err := articleNoParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if _, err := h.articleService.GetArticleByNo(c.Request.Context(), articleNo); err != nil {
		h.fail(c, err)
		return
	}

	var req dto.UpdateArticleRequest
	if err := bindPatch(c, dto.ArticlePatchFields, &req, dto.ArticleValidationMessages); err != nil {
		h.fail(c, err)
		return
	}

	if _, err := h.articleService.UpdateArticle(c.Request.Context(), articleNo, req); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, msgArticleUpdated)
}

// deleteArticle godoc
// @Summary Delete an article
// @Tags articles
// @Produce json
// @Param article_no path int true "Article number"
// @Success 200 {object} dto.SuccessResponse{data=string}
// @Failure 400 {object} dto.FailureResponse "Invalid article number"
// @Router /articles/{article_no}/ [delete]
func (h *articleHandler) deleteArticle(c *gin.Context) {
	articleNo, err := articleNoParam(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.articleService.DeleteArticle(c.Request.Context(), articleNo); err != nil {
		h.fail(c, err)
		return
	}
	h.success(c, http.StatusOK, msgArticleDeleted)
}

// requestURL rebuilds the absolute URL of the current request. The scheme
// comes from the connection, never from forwarding headers.
func requestURL(c *gin.Context) *url.URL {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	u := *c.Request.URL
	u.Scheme = scheme
	u.Host = c.Request.Host
	return &u
}
