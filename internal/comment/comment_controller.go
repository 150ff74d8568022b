package comment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SharanSapkota/arena-server/internal/arena"
	"github.com/SharanSapkota/arena-server/internal/common"
	"github.com/SharanSapkota/arena-server/pkg/responses"
)

type CommentController struct {
	service *CommentService
}

func NewCommentController(service *CommentService) *CommentController {
	return &CommentController{service: service}
}

// CreateComment godoc
// @Summary      Comment on a chat
// @Tags         Comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        comment body CreateCommentRequest true "Comment details"
// @Success      201 {object} ChatComment
// @Failure      404 {object} responses.ErrorResponse
// @Router       /comments [post]
func (cc *CommentController) CreateComment(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	comment, err := cc.service.CreateComment(req.ChatID, userID, req.Content)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetComment godoc
// @Summary      Get a comment by id
// @Tags         Comments
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Comment ID"
// @Success      200 {object} ChatComment
// @Failure      404 {object} responses.ErrorResponse
// @Router       /comments/{id} [get]
func (cc *CommentController) GetComment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid comment ID")
		return
	}

	comment, err := cc.service.GetComment(id)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// GetChatComments godoc
// @Summary      List comments for a chat
// @Tags         Comments
// @Security     BearerAuth
// @Produce      json
// @Param        chatId path int true "Chat ID"
// @Success      200 {array} ChatComment
// @Router       /comments/chat/{chatId} [get]
func (cc *CommentController) GetChatComments(c *gin.Context) {
	chatID, err := parseID(c, "chatId")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	comments, err := cc.service.GetChatComments(chatID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// GetUserComments godoc
// @Summary      List comments by the authenticated user
// @Tags         Comments
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} ChatComment
// @Router       /comments/user/comments [get]
func (cc *CommentController) GetUserComments(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	comments, err := cc.service.GetUserComments(userID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// UpdateComment godoc
// @Summary      Edit a comment (author only)
// @Tags         Comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Comment ID"
// @Param        comment body UpdateCommentRequest true "New content"
// @Success      200 {object} ChatComment
// @Failure      403 {object} responses.ErrorResponse
// @Router       /comments/{id} [patch]
func (cc *CommentController) UpdateComment(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid comment ID")
		return
	}

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	comment, err := cc.service.UpdateComment(id, userID, req.Content)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment (author only)
// @Tags         Comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204
// @Failure      403 {object} responses.ErrorResponse
// @Router       /comments/{id} [delete]
func (cc *CommentController) DeleteComment(c *gin.Context) {
	userID, err := common.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, "")
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid comment ID")
		return
	}

	if err := cc.service.DeleteComment(id, userID); err != nil {
		responses.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCommentCount godoc
// @Summary      Count comments for a chat
// @Tags         Comments
// @Security     BearerAuth
// @Produce      json
// @Param        chatId path int true "Chat ID"
// @Success      200 {object} map[string]int64
// @Router       /comments/count/{chatId} [get]
func (cc *CommentController) GetCommentCount(c *gin.Context) {
	chatID, err := parseID(c, "chatId")
	if err != nil {
		responses.BadRequest(c, "invalid chat ID")
		return
	}

	count, err := cc.service.GetCommentCount(chatID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// CreateArenaComment handles POST /arenas/:id/comments.
func (cc *CommentController) CreateArenaComment(c *gin.Context) {
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

	var req CreateArenaCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}

	comment, err := cc.service.CreateArenaComment(arenaID, userID, req.Content)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetArenaComments handles GET /arenas/:id/comments (public).
func (cc *CommentController) GetArenaComments(c *gin.Context) {
	arenaID, err := arena.ParseArenaID(c, "id")
	if err != nil {
		responses.BadRequest(c, "invalid arena ID")
		return
	}

	comments, err := cc.service.GetArenaComments(arenaID)
	if err != nil {
		responses.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func parseID(c *gin.Context, param string) (uint, error) {
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}
