package api_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/store_controller"
)

func SetupStoreRoutes(rg *gin.RouterGroup, ctl *store_controller.Controller) {
	store := rg.Group("/stores")

	store.POST("/initiate", ctl.InitiateStore)
	store.PUT("/reroute", ctl.RerouteSupplier)

	store.GET("/:storeId", ctl.GetStore)
	store.PUT("/:storeId", ctl.UpdateStore)
	store.GET("/:storeId/performance", ctl.GetStorePerformance)

	// Product association
	store.PUT("/:storeId/products", ctl.AddProductsToStore)
	store.DELETE("/:storeId/products/:productId", ctl.RemoveProductFromStore)
}
