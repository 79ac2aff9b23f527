package routes

import (
	"srinufoods/auth"
	"srinufoods/cart"
	"srinufoods/catalog"
	"srinufoods/dashboard"
	"srinufoods/middleware"
	"srinufoods/orders"
	"srinufoods/profile"
	"srinufoods/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter, svc *auth.Service) {
	router.POST("/api/auth/register", middleware.Metrics("/api/auth/register", rl.Limit(svc.Register)))
	router.POST("/api/auth/login", middleware.Metrics("/api/auth/login", rl.Limit(svc.Login)))
	router.POST("/api/auth/logout", middleware.Metrics("/api/auth/logout", middleware.Authenticate(svc.Logout)))
	router.POST("/api/auth/token/refresh", middleware.Metrics("/api/auth/token/refresh", rl.Limit(svc.Refresh)))
}

func AddProfileRoutes(router *httprouter.Router, svc *profile.Service) {
	router.GET("/api/auth/profile", middleware.Metrics("/api/auth/profile", middleware.Authenticate(svc.Get)))
	router.PUT("/api/auth/update-profile", middleware.Metrics("/api/auth/update-profile", middleware.Authenticate(svc.Update)))
}

func AddMenuRoutes(router *httprouter.Router, store *catalog.Store) {
	router.GET("/api/menu/categories", middleware.Metrics("/api/menu/categories", store.GetCategories))
	router.GET("/api/menu/items", middleware.Metrics("/api/menu/items", store.GetMenuItems))
	router.GET("/api/menu/items/:itemid", middleware.Metrics("/api/menu/items/:itemid", store.GetMenuItem))
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handlers) {
	router.GET("/api/menu/cart", middleware.Metrics("/api/menu/cart", middleware.Authenticate(h.GetCart)))
	router.POST("/api/menu/cart/add", middleware.Metrics("/api/menu/cart/add", middleware.Authenticate(h.AddToCart)))
	router.PUT("/api/menu/cart/update/:itemid", middleware.Metrics("/api/menu/cart/update/:itemid", middleware.Authenticate(h.UpdateCartItem)))
	router.DELETE("/api/menu/cart/remove/:itemid", middleware.Metrics("/api/menu/cart/remove/:itemid", middleware.Authenticate(h.RemoveFromCart)))
	router.DELETE("/api/menu/cart/clear", middleware.Metrics("/api/menu/cart/clear", middleware.Authenticate(h.ClearCart)))
}

func AddOrderRoutes(router *httprouter.Router, h *orders.Handlers, agg *dashboard.Aggregator) {
	router.POST("/api/orders/create", middleware.Metrics("/api/orders/create", middleware.Authenticate(h.CreateOrder)))
	router.GET("/api/orders/my-orders", middleware.Metrics("/api/orders/my-orders", middleware.Authenticate(h.MyOrders)))
	router.GET("/api/orders/order/:orderid", middleware.Metrics("/api/orders/order/:orderid", middleware.Authenticate(h.GetOrder)))

	adminChain := middleware.Chain(middleware.Authenticate, middleware.RequireAdmin)
	router.GET("/api/orders/admin/all", middleware.Metrics("/api/orders/admin/all", adminChain(h.AllOrders)))
	router.PUT("/api/orders/admin/order/:orderid/status", middleware.Metrics("/api/orders/admin/order/:orderid/status", adminChain(h.UpdateOrderStatus)))
	router.GET("/api/orders/admin/dashboard/stats", middleware.Metrics("/api/orders/admin/dashboard/stats", adminChain(agg.GetStats)))
}
