package main

import (
	"smartparking/be/biz/handler"
	"smartparking/be/biz/middleware/jwt"
	"smartparking/be/biz/middleware/security"
	_ "smartparking/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

func register(r *server.Hertz) {
	r.GET("/healthz", handler.Healthz)
	r.GET("/metrics", handler.Metrics)
	r.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler))

	usuarios := r.Group("/api/usuarios")
	{
		usuarios.POST("/registro", handler.Register)
		usuarios.POST("/login", security.NewLoginProtection(), handler.Login)
		usuarios.GET("", handler.ListUsers)
		usuarios.GET("/perfil", jwt.ValidateMW(), handler.Perfil)
		usuarios.POST("/logout", jwt.ValidateMW(), handler.Logout)
		usuarios.GET("/:id", handler.GetUser)
		usuarios.PUT("/:id", handler.UpdateUser)
		usuarios.DELETE("/:id", handler.DeleteUser)
	}
}
