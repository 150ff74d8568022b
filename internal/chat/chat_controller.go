package chat

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

// ChatController handles chat and chat-like endpoints.
type ChatController struct {
	service *ChatService
}

func NewChatController(service *ChatService) *ChatController {
	return &ChatController{service: service}
}

// CreateChat godoc
// @Summary      Post a chat to an arena
// @Tags         Chats
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        chat body CreateChatRequest true "Chat details"
// @Success      201 {object} Chat
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chats [post]
func (cc *ChatController) CreateChat(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	ch, err := cc.service.CreateChat(req.ArenaID, userID, req.Content, req.Type)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// CreateArenaChat handles POST /arenas/:id/chats.
func (cc *ChatController) CreateArenaChat(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	var req CreateArenaChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	ch, err := cc.service.CreateChat(arenaID, userID, req.Content, req.Type)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ch)
}

// GetArenaChatsNested handles GET /arenas/:id/chats (public).
func (cc *ChatController) GetArenaChatsNested(c *gin.Context) {
	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	chats, err := cc.service.GetArenaChats(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// GetChat godoc
// @Summary      Get a chat by id
// @Tags         Chats
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Chat ID"
// @Success      200 {object} Chat
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chats/{id} [get]
func (cc *ChatController) GetChat(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	ch, err := cc.service.GetChat(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// GetArenaChats godoc
// @Summary      List chats for an arena
// @Tags         Chats
// @Security     BearerAuth
// @Produce      json
// @Param        arenaId path int true "Arena ID"
// @Success      200 {array} Chat
// @Router       /chats/arena/{arenaId} [get]
func (cc *ChatController) GetArenaChats(c *gin.Context) {
	arenaID, err := parseID(c, "arenaId")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	chats, err := cc.service.GetArenaChats(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// GetUserChats godoc
// @Summary      List chats posted by the authenticated user
// @Tags         Chats
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} Chat
// @Router       /chats/user/chats [get]
func (cc *ChatController) GetUserChats(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	chats, err := cc.service.GetUserChats(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// UpdateChat godoc
// @Summary      Edit a chat (author only)
// @Tags         Chats
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Chat ID"
// @Param        chat body UpdateChatRequest true "New content"
// @Success      200 {object} Chat
// @Failure      403 {object} responses.ErrorResponse
// @Router       /chats/{id} [patch]
func (cc *ChatController) UpdateChat(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	var req UpdateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	ch, err := cc.service.UpdateChat(id, userID, req.Content)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// DeleteChat godoc
// @Summary      Delete a chat (author only)
// @Tags         Chats
// @Security     BearerAuth
// @Param        id path int true "Chat ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /chats/{id} [delete]
func (cc *ChatController) DeleteChat(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	if err := cc.service.DeleteChat(id, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Likes ---

// LikeChat godoc
// @Summary      Like a chat
// @Tags         ChatLikes
// @Security     BearerAuth
// @Produce      json
// @Param        chatId path int true "Chat ID"
// @Success      201 {object} ChatLike
// @Failure      409 {object} responses.ErrorResponse
// @Router       /chat-likes/{chatId} [post]
func (cc *ChatController) LikeChat(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	chatID, err := parseID(c, "chatId")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	like, err := cc.service.LikeChat(chatID, userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, like)
}

// GetLike godoc
// @Summary      Get a like by id
// @Tags         ChatLikes
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Like ID"
// @Success      200 {object} ChatLike
// @Router       /chat-likes/{id} [get]
func (cc *ChatController) GetLike(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid like ID")
		return
	}

	like, err := cc.service.GetLike(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, like)
}

// GetChatLikes godoc
// @Summary      List likes for a chat
// @Tags         ChatLikes
// @Security     BearerAuth
// @Produce      json
// @Param        chatId path int true "Chat ID"
// @Success      200 {array} ChatLike
// @Router       /chat-likes/chat/{chatId} [get]
func (cc *ChatController) GetChatLikes(c *gin.Context) {
	chatID, err := parseID(c, "chatId")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	likes, err := cc.service.GetChatLikes(chatID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// GetUserLikes godoc
// @Summary      List likes by the authenticated user
// @Tags         ChatLikes
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ChatLike
// @Router       /chat-likes/user/likes [get]
func (cc *ChatController) GetUserLikes(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	likes, err := cc.service.GetUserLikes(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}

// UnlikeChat godoc
// @Summary      Remove own like from a chat
// @Tags         ChatLikes
// @Security     BearerAuth
// @Param        chatId path int true "Chat ID"
// @Success      204
// @Failure      404 {object} responses.ErrorResponse
// @Router       /chat-likes/{chatId} [delete]
func (cc *ChatController) UnlikeChat(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	chatID, err := parseID(c, "chatId")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	if err := cc.service.UnlikeChat(chatID, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetLikeCount godoc
// @Summary      Count likes for a chat
// @Tags         ChatLikes
// @Security     BearerAuth
// @Produce      json
// @Param        chatId path int true "Chat ID"
// @Success      200 {object} map[string]int64
// @Router       /chat-likes/count/{chatId} [get]
func (cc *ChatController) GetLikeCount(c *gin.Context) {
	chatID, err := parseID(c, "chatId")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	count, err := cc.service.GetLikeCount(chatID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
