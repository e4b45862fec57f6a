package router

import (
	"context"

	"Club_Portal/internal/handler"
	"Club_Portal/internal/middleware"
	"Club_Portal/internal/model"
	"Club_Portal/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Deps struct {
	Log *zap.Logger

	Resolver *service.WalletResolver
	Auth     *service.AuthService
	Members  *service.MemberService
	Projects *service.ProjectService
	Events   *service.EventService
	Finance  *service.FinanceService
	Bounties *service.BountyService
	Library  *service.LibraryService
	Contact  *service.ContactService

	ContactLimiter    *service.Limiter
	AllowWalletHeader bool
	Ping              func(ctx context.Context) error
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(d.Log), middleware.Metrics(), middleware.RequestLogger(d.Log))

	authn := middleware.WalletAuth(middleware.WalletAuthConfig{
		Auth:              d.Auth,
		Resolver:          d.Resolver,
		AllowWalletHeader: d.AllowWalletHeader,
		Log:               d.Log,
	})
	can := middleware.RequireCapability

	auth := handler.NewAuthHandler(d.Auth, d.Log)
	member := handler.NewMemberHandler(d.Members, d.Log)
	project := handler.NewProjectHandler(d.Projects, d.Log)
	event := handler.NewEventHandler(d.Events, d.Log)
	finance := handler.NewFinanceHandler(d.Finance, d.Log)
	bounty := handler.NewBountyHandler(d.Bounties, d.Log)
	library := handler.NewLibraryHandler(d.Library, d.Log)
	contact := handler.NewContactHandler(d.Contact, d.Log)

	r.GET("/health", handler.Health(d.Ping, d.Log))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// 登录相关接口
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/nonce", auth.Nonce)
		authGroup.POST("/login", auth.Login)
		authGroup.POST("/refresh", auth.Refresh)
		authGroup.POST("/logout", authn, auth.Logout)
		authGroup.GET("/me", authn, auth.Me)
	}

	// 管理员登记成员，走共享密钥而不是钱包身份
	api.POST("/admin/members", member.Register)

	memberGroup := api.Group("/members")
	{
		memberGroup.GET("", member.List)
		memberGroup.PUT("/me", authn, member.UpdateMe)
		memberGroup.GET("/:id", member.Get)
	}

	projectGroup := api.Group("/projects")
	{
		projectGroup.GET("", project.List)
		projectGroup.GET("/:id", project.Get)
		projectGroup.POST("", authn, can(model.ActionProjectCreate), project.Create)
		projectGroup.PUT("/:id", authn, project.Update)
		projectGroup.DELETE("/:id", authn, can(model.ActionProjectDelete), project.Delete)
	}

	eventGroup := api.Group("/events")
	{
		eventGroup.GET("", event.List)
		eventGroup.GET("/:id", event.Get)
		eventGroup.POST("", authn, can(model.ActionEventManage), event.Create)
		eventGroup.PUT("/:id", authn, can(model.ActionEventManage), event.Update)
		eventGroup.DELETE("/:id", authn, can(model.ActionEventManage), event.Delete)
	}

	financeGroup := api.Group("/finance")
	{
		financeGroup.GET("", finance.List)
		financeGroup.GET("/:id", finance.Get)
		financeGroup.POST("", authn, can(model.ActionFinanceCreate), finance.Create)
		financeGroup.POST("/:id/approve", authn, can(model.ActionFinanceReview), finance.Approve)
		financeGroup.POST("/:id/reject", authn, can(model.ActionFinanceReview), finance.Reject)
	}

	bountyGroup := api.Group("/bounties")
	{
		bountyGroup.GET("", bounty.List)
		bountyGroup.GET("/:id", bounty.Get)
		bountyGroup.POST("", authn, can(model.ActionBountyManage), bounty.Create)
		bountyGroup.POST("/:id/claim", authn, can(model.ActionBountyClaim), bounty.Claim)
		bountyGroup.POST("/:id/complete", authn, can(model.ActionBountyManage), bounty.Complete)
		bountyGroup.DELETE("/:id", authn, can(model.ActionBountyManage), bounty.Delete)
	}

	repoGroup := api.Group("/repositories")
	{
		repoGroup.GET("", library.ListRepositories)
		repoGroup.POST("", authn, can(model.ActionRepositoryCreate), library.CreateRepository)
		repoGroup.DELETE("/:id", authn, can(model.ActionRepositoryDelete), library.DeleteRepository)
	}

	resourceGroup := api.Group("/resources")
	{
		resourceGroup.GET("", library.ListResources)
		resourceGroup.POST("", authn, can(model.ActionResourceCreate), library.CreateResource)
		resourceGroup.DELETE("/:id", authn, can(model.ActionResourceDelete), library.DeleteResource)
	}

	api.POST("/contact", middleware.RateLimit(d.ContactLimiter, d.Log), contact.Submit)

	return r
}
