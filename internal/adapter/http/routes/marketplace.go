package routes

import (
	"casamenteiro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCouples      = "/couples"
	PathCategories   = "/categories"
	PathCatalogItems = "/catalog-items"
	PathDemands      = "/demands"
	PathQuotes       = "/quotes"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	coupleHandler *handlers.CoupleHandler,
	catalogHandler *handlers.CatalogHandler,
	demandHandler *handlers.DemandHandler,
	quoteHandler *handlers.QuoteHandler,
) {
	couples := rg.Group(PathCouples)
	{
		couples.POST("", coupleHandler.CreateCouple)
		couples.GET("/:id", coupleHandler.GetCouple)
		couples.PUT("/:id", coupleHandler.UpdateCouple)
		couples.DELETE("/:id", coupleHandler.DeleteCouple)
		couples.GET("/by-member/:person_id", coupleHandler.GetCoupleByMember)
	}

	categories := rg.Group(PathCategories)
	{
		categories.POST("", catalogHandler.CreateCategory)
		categories.GET("", catalogHandler.ListCategories)
		categories.GET("/:id", catalogHandler.GetCategory)
		categories.PUT("/:id", catalogHandler.UpdateCategory)
		categories.PATCH("/:id/deactivate", catalogHandler.DeactivateCategory)
	}

	catalogItems := rg.Group(PathCatalogItems)
	{
		catalogItems.POST("", catalogHandler.CreateCatalogItem)
		catalogItems.GET("", catalogHandler.ListCatalogItems)
		catalogItems.GET("/:id", catalogHandler.GetCatalogItem)
		catalogItems.PUT("/:id", catalogHandler.UpdateCatalogItem)
		catalogItems.PATCH("/:id/deactivate", catalogHandler.DeactivateCatalogItem)
		catalogItems.GET("/by-supplier/:supplier_id", catalogHandler.ListCatalogItemsBySupplier)
	}

	demands := rg.Group(PathDemands)
	{
		demands.POST("", demandHandler.CreateDemand)
		demands.GET("", demandHandler.ListDemands)
		demands.GET("/visible", demandHandler.ListVisibleDemands)
		demands.GET("/:id", demandHandler.GetDemand)
		demands.PATCH("/:id/status", demandHandler.TransitionDemand)
		demands.DELETE("/:id", demandHandler.DeleteDemand)
		demands.GET("/:id/fulfillment", demandHandler.GetDemandFulfillment)
		demands.GET("/:id/items", demandHandler.ListDemandItems)
		demands.POST("/:id/items", demandHandler.AddDemandItem)
		demands.PUT("/:id/items/:item_id", demandHandler.UpdateDemandItem)
		demands.DELETE("/:id/items/:item_id", demandHandler.RemoveDemandItem)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.POST("/:id/items", quoteHandler.AddQuoteItem)
		quotes.DELETE("/:id/items/:item_id", quoteHandler.RemoveQuoteItem)
		quotes.PUT("/items/:item_id", quoteHandler.UpdateQuoteItem)
		quotes.PATCH("/items/:item_id/accept", quoteHandler.AcceptQuoteItem)
		quotes.PATCH("/items/:item_id/reject", quoteHandler.RejectQuoteItem)
	}
}
