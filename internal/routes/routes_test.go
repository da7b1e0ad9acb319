package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"product-inventory/internal/handlers"
	"product-inventory/internal/repository"
	"product-inventory/internal/service"
	"product-inventory/web"
)

func TestRegisterRoutesTable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r, handlers.NewProductHandler(service.NewProductService(repository.NewMemoryStore(), nil)))

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}
	for _, prefix := range []string{"", "/api"} {
		for _, want := range []string{
			"GET " + prefix + "/products",
			"GET " + prefix + "/products/:id",
			"POST " + prefix + "/products",
			"PUT " + prefix + "/products/:id",
			"DELETE " + prefix + "/products/:id",
		} {
			assert.True(t, got[want], want)
		}
	}
}

func TestRegisterUI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterUI(r, fstest.MapFS{
		"index.html":    {Data: []byte("<h1>inventory</h1>")},
		"css/style.css": {Data: []byte("body{}")},
		"js/app.js":     {Data: []byte("console.log(1)")},
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "inventory")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/js/app.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")
}

func TestEmbeddedAssets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterUI(r, web.Static())

	for _, path := range []string{"/", "/js/app.js", "/css/style.css"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}
