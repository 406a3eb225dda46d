// File: internal/handler/chat/chat.go
package chat

import (
	"errors"
	"net/http"

	"brainfeed/internal/ai"
	"brainfeed/internal/api"
	"brainfeed/internal/database"
	"brainfeed/internal/model"
	"brainfeed/internal/store"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

var (
	getConversationBySessionID = store.GetConversationBySessionID
	createConversation         = store.CreateConversation
	addConversationMessage     = store.AddConversationMessage
	listConversationMessages   = store.ListConversationMessages
	listArticles               = store.ListArticles
)

// systemPrompt 設定助理的回答範圍與語氣
const systemPrompt = "You are a helpful reading assistant for a content publishing site. " +
	"Answer concisely and suggest related topics when appropriate."

// MessageHandler 接收使用者訊息並回覆助理回應
// 未帶 sessionId 時開啟新對話，完整歷史會送往模型以維持上下文
// @Summary     傳送聊天訊息
// @Tags        chat
// @Accept      json
// @Produce     json
// @Param       body body api.ChatRequest true "訊息內容"
// @Success     200 {object} api.ChatResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Failure     502 {object} api.ErrorResponse
// @Router      /chat/message [post]
func MessageHandler(db database.DB, client ai.Client) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.ChatRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()

		sessionID := req.SessionID
		var conv *model.Conversation
		var err error
		if sessionID == "" {
			sessionID = uuid.NewString()
			conv, err = createConversation(ctx, db, sessionID)
		} else {
			conv, err = getConversationBySessionID(ctx, db, sessionID)
			if errors.Is(err, pgx.ErrNoRows) {
				conv, err = createConversation(ctx, db, sessionID)
			}
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to open conversation"})
		}

		if _, err := addConversationMessage(ctx, db, conv.ID, model.ChatRoleUser, req.Message); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to save message"})
		}

		history, err := listConversationMessages(ctx, db, conv.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load history"})
		}
		messages := make([]ai.Message, 0, len(history)+1)
		messages = append(messages, ai.Message{Role: "system", Content: systemPrompt})
		for _, m := range history {
			messages = append(messages, ai.Message{Role: m.Role, Content: m.Content})
		}

		reply, err := client.Complete(ctx, messages)
		if err != nil {
			return c.JSON(http.StatusBadGateway, api.ErrorResponse{Message: "assistant unavailable"})
		}

		saved, err := addConversationMessage(ctx, db, conv.ID, model.ChatRoleAssistant, reply)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to save response"})
		}

		// 推薦文章取近期已核准者，推薦失敗不影響回覆
		approved := model.StatusApproved
		suggestions, err := listArticles(ctx, db, store.ArticleFilter{Status: &approved})
		if err != nil {
			suggestions = []model.ArticleDetail{}
		}
		if len(suggestions) > 3 {
			suggestions = suggestions[:3]
		}

		return c.JSON(http.StatusOK, api.ChatResponse{
			ConversationID:    conv.ID,
			SessionID:         sessionID,
			MessageID:         saved.ID,
			Response:          reply,
			SuggestedArticles: suggestions,
		})
	}
}

// HistoryHandler 取回指定對話的完整訊息紀錄
// @Summary     取得聊天紀錄
// @Tags        chat
// @Produce     json
// @Param       sessionId path string true "對話 session ID"
// @Success     200 {object} api.ConversationResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /chat/history/{sessionId} [get]
func HistoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		conv, err := getConversationBySessionID(ctx, db, c.Param("sessionId"))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "conversation not found"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to fetch conversation"})
		}

		messages, err := listConversationMessages(ctx, db, conv.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load history"})
		}

		return c.JSON(http.StatusOK, api.ConversationResponse{
			Conversation: *conv,
			Messages:     messages,
		})
	}
}
