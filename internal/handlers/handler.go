package handlers

import (
	"dealership_review/internal/logger"
	"dealership_review/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultCookieName = "session_token"

// Options holds HTTP-level settings.
type Options struct {
	CookieName   string
	CookieSecure bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. A nil log
// discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	if opts.CookieName == "" {
		opts.CookieName = defaultCookieName
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(h.sessionMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerDealerRoutes(router)
	h.registerCatalogRoutes(router)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	r.Any("/login", requirePost, h.login)
	r.Any("/logout", h.logout)
	r.Any("/register", requirePost, h.register)
}

func (h *Handler) registerDealerRoutes(r *gin.Engine) {
	r.GET("/dealerships", h.getDealerships)
	r.GET("/dealerships/:state", h.getDealerships)

	// The id-less forms exist so a missing id gets the Bad Request envelope.
	r.GET("/dealer", h.getDealerDetails)
	r.GET("/dealer/:dealerId", h.getDealerDetails)
	r.GET("/reviews/dealer", h.getDealerReviews)
	r.GET("/reviews/dealer/:dealerId", h.getDealerReviews)

	r.POST("/review", h.addReview)

	r.GET("/ws/reviews/dealer/:dealerId", h.streamDealerReviews)
}

func (h *Handler) registerCatalogRoutes(r *gin.Engine) {
	r.GET("/cars", h.getCars)
}
