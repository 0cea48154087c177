package v1

import (
	"github.com/gin-gonic/gin"

	"supportchat/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates chat route registration.
type Routes struct {
	handlers *handlers.Provider
}

func NewRoutes(provider *handlers.Provider) *Routes {
	return &Routes{handlers: provider}
}

// Register attaches the chat routes.
func (r *Routes) Register(router gin.IRouter) {
	group := router.Group("/chat")
	group.POST("/message", r.handlers.Chat.SubmitMessage)
	group.GET("/history/:session_id", r.handlers.Chat.GetHistory)
}
