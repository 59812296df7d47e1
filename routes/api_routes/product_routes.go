package api_routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jarradburge/optivana-vanthex-monorepo/controllers/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup, ctl *product_controller.Controller) {
	product := rg.Group("/products")

	product.GET("/trending", ctl.GetTrendingProducts)
	product.POST("", ctl.CreateProduct)
	product.POST("/analyze", ctl.AnalyzeProduct)
	product.GET("/:productId", ctl.GetProduct)
}
