package router

import (
	"Haven_Community/internal/handler"
	"Haven_Community/internal/middleware"
	"Haven_Community/internal/pkg"
	"Haven_Community/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func InitRouter(db *gorm.DB, media service.MediaStore, emailCfg pkg.SMTPConfig) *gin.Engine {
	r := gin.Default()

	emailSvc := service.NewEmailService(emailCfg)

	account := handler.NewAccountHandler(service.NewAccountService(db, emailSvc, media))
	email := handler.NewEmailHandler(emailSvc)
	community := handler.NewCommunityHandler(service.NewCommunityService(db, media))
	membership := handler.NewMembershipHandler(service.NewMembershipService(db))
	post := handler.NewPostHandler(service.NewPostService(db))
	comment := handler.NewCommentHandler(service.NewCommentService(db))
	reaction := handler.NewReactionHandler(service.NewReactionService(db))
	subscription := handler.NewSubscriptionHandler(service.NewSubscriptionService(db))

	// 邮件相关接口
	emailGroup := r.Group("/api/email")
	{
		emailGroup.POST("/code", email.SendCode)
	}

	// 账号相关接口
	accountGroup := r.Group("/api/account")
	{
		accountGroup.POST("/register", account.Register)
		accountGroup.POST("/login", account.Login)
		accountGroup.POST("/reset", account.ResetPassword)
	}

	// token相关接口
	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", account.TokenRefresh)
	}

	// 登录态账号接口
	authGroup := r.Group("/api/auth")
	authGroup.Use(middleware.AuthMiddleware())
	{
		authGroup.POST("/logout", account.Logout)
		authGroup.POST("/change-password", account.ChangePassword)
		authGroup.PUT("/profile", account.UpdateProfile)
		authGroup.POST("/avatar", account.UploadAvatar)
	}

	// 读接口：未登录也放行，可见性由策略引擎决定
	readGroup := r.Group("/api")
	readGroup.Use(middleware.OptionalAuthMiddleware())
	{
		readGroup.GET("/community/list", community.List)
		readGroup.GET("/community/:id", community.Get)
		readGroup.GET("/community/:id/members", community.ListMembers)
		readGroup.GET("/post/:id", post.GetPost)
		readGroup.GET("/post/list/:id", post.ListByCommunity)
		readGroup.GET("/comment/list/:id", comment.ListByPost)
	}

	// 社区相关接口
	communityGroup := r.Group("/api/community")
	communityGroup.Use(middleware.AuthMiddleware())
	{
		communityGroup.POST("/create", community.Create)
		communityGroup.PUT("/:id", community.Update)
		communityGroup.POST("/:id/media", community.UploadMedia)
		communityGroup.DELETE("/:id", community.Delete)

		communityGroup.POST("/:id/join", membership.Join)
		communityGroup.POST("/:id/leave", membership.Leave)
		communityGroup.PUT("/:id/role", membership.SetRole)
		communityGroup.POST("/:id/remove", membership.Remove)
		communityGroup.PUT("/:id/premium-publish", membership.SetPremiumPublish)

		communityGroup.POST("/:id/subscribe", subscription.Subscribe)
		communityGroup.POST("/:id/unsubscribe", subscription.Unsubscribe)
	}

	// 帖子相关接口
	postGroup := r.Group("/api/post")
	postGroup.Use(middleware.AuthMiddleware())
	{
		postGroup.POST("/create", post.CreatePost)
		postGroup.PUT("/:id", post.UpdatePost)
		postGroup.DELETE("/:id", post.DeletePost)
		postGroup.POST("/:id/like", reaction.Toggle)
		postGroup.GET("/:id/like", reaction.Status)
	}

	// 评论相关接口
	commentGroup := r.Group("/api/comment")
	commentGroup.Use(middleware.AuthMiddleware())
	{
		commentGroup.POST("/create", comment.Create)
		commentGroup.PUT("/:id", comment.Update)
		commentGroup.DELETE("/:id", comment.Delete)
	}

	return r
}
