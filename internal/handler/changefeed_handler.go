package handler

import (
	"todonotediary-be/internal/pkg/logger"
	"todonotediary-be/internal/pkg/serverutils"
	internalWS "todonotediary-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ChangeFeedHandler upgrades authenticated clients onto the websocket change
// feed. Auth happens during the handshake because browsers cannot set an
// Authorization header on a websocket request.
type ChangeFeedHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewChangeFeedHandler(hub *internalWS.Hub, log logger.ILogger) *ChangeFeedHandler {
	return &ChangeFeedHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *ChangeFeedHandler) ServeWs(c *fiber.Ctx) error {
	// Priority 1: Query Param (Browser standard)
	tokenStr := c.Query("token")

	// Priority 2: Authorization Header (Tooling/Non-browser standard)
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return serverutils.JWTSecret(), nil
	})

	if err != nil || !token.Valid {
		h.logger.Warn("ChangeFeedHandler", "Invalid Token in WS Handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(c *websocket.Conn) {
			h.logger.Info("ChangeFeedHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, c, userID)
			h.logger.Info("ChangeFeedHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the change feed websocket endpoint.
func (h *ChangeFeedHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws", h.ServeWs)
}
