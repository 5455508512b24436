package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"catalog-admin/internal/forms"
	"catalog-admin/internal/repository"
	"catalog-admin/internal/service"
)

const (
	// sessionCookie holds the signed session token on the client.
	sessionCookie = "catalog_session"

	loginFailedMessage = "Incorrect username or password."
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	products service.ProductService
	auth     service.AuthService
	logger   *logrus.Logger
}

func NewHandler(products service.ProductService, auth service.AuthService, logger *logrus.Logger) *Handler {
	return &Handler{
		products: products,
		auth:     auth,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(requestLogger(h.logger))
	router.Use(h.resolveSession())

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/products/")
	})
	router.GET("/login/", h.loginPage)
	router.POST("/login/", h.loginSubmit)
	router.GET("/logout/", h.logout)
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})

	products := router.Group("/products")
	{
		products.GET("/", h.listProducts)
		products.GET("/:id/", h.productDetail)
	}

	protected := router.Group("/products", h.requireAuth())
	{
		protected.GET("/create/", h.createProductPage)
		protected.POST("/create/", h.createProduct)
		protected.GET("/:id/edit/", h.editProductPage)
		protected.POST("/:id/edit/", h.editProduct)
		protected.DELETE("/:id/delete/", h.deleteProduct)
	}

	router.NoRoute(func(c *gin.Context) {
		h.renderNotFound(c)
	})
}

func (h *Handler) loginPage(c *gin.Context) {
	if _, ok := currentUsername(c); ok {
		c.Redirect(http.StatusFound, "/products/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{"Username": ""})
}

func (h *Handler) loginSubmit(c *gin.Context) {
	if _, ok := currentUsername(c); ok {
		c.Redirect(http.StatusFound, "/products/")
		return
	}

	var form forms.LoginForm
	_ = c.ShouldBind(&form)
	if !form.Validate() {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    loginFailedMessage,
			"Username": form.Username,
		})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Error":    loginFailedMessage,
				"Username": form.Username,
			})
			return
		}
		h.renderInternalError(c, err)
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/products/")
}

func (h *Handler) logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/products/")
}

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.ListProducts(c.Request.Context())
	if err != nil {
		h.renderInternalError(c, err)
		return
	}

	_, authenticated := currentUsername(c)
	c.HTML(http.StatusOK, "product_list.html", gin.H{
		"Products":      products,
		"Authenticated": authenticated,
	})
}

func (h *Handler) productDetail(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderProductError(c, err)
		return
	}

	_, authenticated := currentUsername(c)
	c.HTML(http.StatusOK, "product_detail.html", gin.H{
		"Product":       product,
		"Authenticated": authenticated,
	})
}

func (h *Handler) createProductPage(c *gin.Context) {
	c.HTML(http.StatusOK, "product_form.html", gin.H{
		"Action": "/products/create/",
		"Form":   forms.ProductForm{},
	})
}

func (h *Handler) createProduct(c *gin.Context) {
	var form forms.ProductForm
	_ = c.ShouldBind(&form)

	fields, fieldErrs := form.Validate()
	if fieldErrs != nil {
		c.HTML(http.StatusOK, "product_form.html", gin.H{
			"Action": "/products/create/",
			"Form":   form,
			"Errors": fieldErrs,
		})
		return
	}

	if _, err := h.products.CreateProduct(c.Request.Context(), fields); err != nil {
		h.renderInternalError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/products/")
}

func (h *Handler) editProductPage(c *gin.Context) {
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderProductError(c, err)
		return
	}

	c.HTML(http.StatusOK, "product_form.html", gin.H{
		"Action": "/products/" + product.ID + "/edit/",
		"Form":   forms.FromProduct(*product),
	})
}

func (h *Handler) editProduct(c *gin.Context) {
	// Resolve the product first so an unknown id is a not-found page even when
	// the submitted fields are invalid.
	product, err := h.products.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderProductError(c, err)
		return
	}

	var form forms.ProductForm
	_ = c.ShouldBind(&form)

	fields, fieldErrs := form.Validate()
	if fieldErrs != nil {
		c.HTML(http.StatusOK, "product_form.html", gin.H{
			"Action": "/products/" + product.ID + "/edit/",
			"Form":   form,
			"Errors": fieldErrs,
		})
		return
	}

	if err := h.products.UpdateProduct(c.Request.Context(), product.ID, fields); err != nil {
		h.renderProductError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/products/"+product.ID+"/")
}

func (h *Handler) deleteProduct(c *gin.Context) {
	deleted, err := h.products.DeleteProduct(c.Request.Context(), c.Param("id"))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		h.logger.WithError(err).Error("delete product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusNotFound, gin.H{"status": "Not Found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// renderProductError maps repository errors to responses in one place:
// not-found (including malformed ids) becomes the shared not-found page,
// anything else a generic failure.
func (h *Handler) renderProductError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		h.renderNotFound(c)
		return
	}
	h.renderInternalError(c, err)
}

func (h *Handler) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}

func (h *Handler) renderInternalError(c *gin.Context, err error) {
	h.logger.WithError(err).Error("request failed")
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(h.auth.TTL().Seconds()), "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
