package routes

import (
	"hometheater_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog    = "/catalog"
	PathQuotes     = "/quotes"
	PathSubmitForm = "/submit-form"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	rg.GET(PathCatalog, quoteHandler.GetCatalog)
	rg.POST(PathSubmitForm, quoteHandler.SubmitForm)

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/wizard", quoteHandler.Transition)
		quotes.POST("/preview", quoteHandler.Preview)
	}
}
