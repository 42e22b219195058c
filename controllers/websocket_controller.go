package controllers

import (
	"errors"
	"net/http"
	"slices"

	"pharmacy-chatbot-backend/models"
	"pharmacy-chatbot-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

type WebSocketController struct {
	chatbot  ChatProcessor
	upgrader websocket.Upgrader
}

// NewWebSocketController accepts connections from allowedOrigins; "*" allows
// any origin.
func NewWebSocketController(chatbot ChatProcessor, allowedOrigins []string) *WebSocketController {
	allowAll := slices.Contains(allowedOrigins, "*")
	return &WebSocketController{
		chatbot: chatbot,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowAll || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// HandleWebSocket answers each {message, context} frame with the same
// payload as the chat endpoint.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	logger := log.Ctx(c.Request.Context())

	conn, err := wc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	for {
		var req models.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug().Err(err).Msg("WebSocket read ended")
			}
			return
		}

		response, err := wc.chatbot.ProcessMessage(c.Request.Context(), req)
		if err != nil {
			message := "Failed to process message"
			if errors.Is(err, services.ErrEmptyMessage) {
				message = "message is required"
			}
			err = conn.WriteJSON(gin.H{"success": false, "message": message, "error": err.Error()})
		} else {
			err = conn.WriteJSON(response)
		}
		if err != nil {
			logger.Warn().Err(err).Msg("WebSocket write failed")
			return
		}
	}
}
