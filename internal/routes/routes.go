package routes

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-inventory/internal/handlers"
)

// RegisterRoutes monta la API de productos en /products y en /api/products
func RegisterRoutes(router *gin.Engine, h *handlers.ProductHandler) {
	for _, prefix := range []string{"", "/api"} {
		products := router.Group(prefix + "/products")
		{
			products.GET("", h.ListProducts)
			products.GET("/:id", h.GetProduct)
			products.POST("", h.CreateProduct)
			products.PUT("/:id", h.UpdateProduct)
			products.DELETE("/:id", h.DeleteProduct)
		}
	}
}

// RegisterUI sirve la SPA; index.html en / y el resto de los assets por ruta
func RegisterUI(router *gin.Engine, assets fs.FS) {
	static := http.FS(assets)

	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", static)
	})
	router.StaticFS("/css", subFS(assets, "css"))
	router.StaticFS("/js", subFS(assets, "js"))
}

func subFS(assets fs.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
