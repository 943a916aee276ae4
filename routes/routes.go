package routes

import (
	"sabor-backend/configs"
	"sabor-backend/controllers"
	"sabor-backend/middlewares"
	"sabor-backend/repository"
	"sabor-backend/services"
	"sabor-backend/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.LiveHub) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	tableRepo := repository.NewTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	discountRepo := repository.NewDiscountRepository(db)

	// Services
	tableSvc := services.NewTableService(tableRepo, hub)
	menuSvc := services.NewMenuService(productRepo, hub)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	discountSvc := services.NewDiscountService(discountRepo)
	checkoutSvc := services.NewCheckoutService(cartRepo, orderRepo, discountRepo, tableSvc)
	orderSvc := services.NewOrderService(orderRepo)
	authSvc := services.NewAuthService(userRepo, cartRepo, tableSvc, cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	tableCtrl := controllers.NewTableController(tableSvc, cfg.BaseURL)
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc, discountSvc, userRepo, tableRepo)
	orderCtrl := controllers.NewOrderController(orderSvc, userRepo)
	productCtrl := controllers.NewProductController(menuSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Live feed + table QR are reachable before login
	r.GET("/ws", hub.Serve)
	r.GET("/tables/:id/qrcode", tableCtrl.QRCode)

	// Session setup
	u := r.Group("/", auth())
	{
		u.GET("/menu", menuCtrl.Menu)
		u.GET("/menu/:id/image", menuCtrl.Image)
		u.GET("/tables", tableCtrl.List)
		u.POST("/tables/:id/select", tableCtrl.Select)
		u.POST("/tables/:id/release", tableCtrl.Release)
		u.GET("/orders/my", orderCtrl.MyHistory)
		u.POST("/discounts/validate", checkoutCtrl.ValidateDiscount)
	}

	// Cart + checkout are client-session territory
	cart := r.Group("/cart", auth("client"))
	{
		cart.GET("", cartCtrl.Get)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/items", cartCtrl.Add)
		cart.POST("/items/:productId/increase", cartCtrl.Increase)
		cart.POST("/items/:productId/decrease", cartCtrl.Decrease)
		cart.DELETE("/items/:productId", cartCtrl.Remove)
	}
	r.POST("/checkout", auth("client"), checkoutCtrl.Checkout)

	// Admin
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/orders", orderCtrl.AdminHistory)
		admin.GET("/products", productCtrl.List)
		admin.POST("/products", productCtrl.Create)
		admin.PATCH("/products/:id", productCtrl.Update)
		admin.DELETE("/products/:id", productCtrl.Delete)
		admin.GET("/tables", tableCtrl.List)
		admin.POST("/tables", tableCtrl.Create)
		admin.DELETE("/tables/:id", tableCtrl.Delete)
	}
}
