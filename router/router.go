package router

import (
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/chat"
	"github.com/venuehub/backend/controllers"
	"github.com/venuehub/backend/middlewares"
	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/storage"
)

func SetupRouter(db *gorm.DB, store storage.ObjectStorage) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Per-IP limiter for the HTTP surface. The websocket group stays
	// outside it: a chat connection is held open for its whole lifetime
	// and must not occupy a rate-limiter slot.
	rateLimiter := middlewares.NewRateLimiter(50, 1)

	approvalSvc := services.NewApprovalService(db)
	chatSvc := services.NewChatService(db)
	hub := chat.NewHub(chatSvc)

	authCtrl := controllers.NewAuthController(approvalSvc)
	signupCtrl := controllers.NewSignupController(approvalSvc)
	customerCtrl := controllers.NewCustomerController(db)
	postCtrl := controllers.NewPostController(db, store)
	notificationCtrl := controllers.NewNotificationController(db)
	supplierCtrl := controllers.NewSupplierController(db)
	chatCtrl := controllers.NewChatController(chatSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(rateLimiter.RateLimit())
	{
		public.GET("/login", authCtrl.LoginForm)
		public.GET("/signup/owner", signupCtrl.OwnerForm)
		public.GET("/signup/employee", signupCtrl.EmployeeForm)

		// Credential endpoints get the strict limiter on top
		creds := public.Group("/")
		creds.Use(middlewares.NewStrictRateLimiter())
		{
			creds.POST("/login", authCtrl.Login)
			creds.POST("/signup/owner", signupCtrl.RegisterOwner)
			creds.POST("/signup/employee", signupCtrl.RegisterEmployee)
			creds.POST("/verify-venue", signupCtrl.VerifyVenue)
		}
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	session := r.Group("/")
	session.Use(rateLimiter.RateLimit(), middlewares.SessionAuth())
	{
		session.POST("/logout", authCtrl.Logout)

		// Customers
		session.GET("/list", customerCtrl.List)
		session.GET("/list/:page", customerCtrl.Page)
		session.GET("/detail/:id", customerCtrl.Detail)
		session.GET("/edit/:id", customerCtrl.EditForm)
		session.PUT("/edit", customerCtrl.Update)
		session.DELETE("/delete", customerCtrl.Delete)

		// Posts
		session.POST("/write", postCtrl.Create)
		session.GET("/showimg/:id", postCtrl.Show)

		// Suppliers
		session.GET("/orderlist", supplierCtrl.OrderList)

		// Notifications
		session.GET("/notifications", notificationCtrl.List)
		session.PATCH("/notifications/:id/read", notificationCtrl.MarkRead)

		// Chat snapshot (persisted members + recent messages)
		session.GET("/chat", chatCtrl.Room)

		// Owner-only approval workflow
		owner := session.Group("/")
		owner.Use(middlewares.RequireOwner())
		{
			owner.GET("/pending-employees", signupCtrl.PendingEmployees)
			owner.POST("/approve-employee/:email", signupCtrl.ApproveEmployee)
		}
	}

	// ----------------------------------------------------------------
	//                      WEBSOCKET
	// ----------------------------------------------------------------
	ws := r.Group("/ws")
	ws.Use(middlewares.WebSocketAuth())
	{
		ws.GET("/chat", hub.HandleWebSocket)
	}

	return r
}
