package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	app_errors "healthquest/backend/internal/errors"
	"healthquest/backend/internal/interfaces"
	"healthquest/backend/internal/markdown"
	"healthquest/backend/internal/model"
)

type ChatHandler struct {
	conversations interfaces.ConversationService
}

func NewChatHandler(conversations interfaces.ConversationService) *ChatHandler {
	return &ChatHandler{conversations: conversations}
}

// ImagePayload is the composer's image attachment: base64 data plus a
// picture MIME type.
type ImagePayload struct {
	MIMEType string `json:"mime_type" validate:"required" example:"image/png"`
	Data     string `json:"data" validate:"required"`
}

// SendMessageRequest is the send operation's body. Text may be empty
// when an image is attached; a fully empty send is rejected.
type SendMessageRequest struct {
	Text  string        `json:"text" validate:"max=8000"`
	Image *ImagePayload `json:"image,omitempty"`
}

// SendMessageResponse carries the messages this send appended: the user
// message and, unless the response was discarded, the model reply.
type SendMessageResponse struct {
	SessionID string        `json:"session_id"`
	Messages  []MessageView `json:"messages"`
}

// MessageView is the API shape of a message. Model messages additionally
// carry the rendered Markdown block structure.
type MessageView struct {
	Role      model.Role              `json:"role"`
	Text      string                  `json:"text"`
	Image     *model.ImageData        `json:"image,omitempty"`
	Sources   []model.GroundingSource `json:"sources,omitempty"`
	Blocks    []markdown.Block        `json:"blocks,omitempty"`
	Timestamp time.Time               `json:"timestamp"`
}

// SessionSummary is the sidebar's view of a session.
type SessionSummary struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	MessageCount int    `json:"message_count"`
}

// SessionListResponse lists sessions newest-first plus the active id and
// the in-flight flag the surface uses to hold off a second send.
type SessionListResponse struct {
	Sessions []SessionSummary `json:"sessions"`
	ActiveID *string          `json:"active_id"`
	Loading  bool             `json:"loading"`
}

// SessionResponse is one full session.
type SessionResponse struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Messages []MessageView `json:"messages"`
}

// SetActiveRequest selects a session; a null session_id means new chat.
type SetActiveRequest struct {
	SessionID *string `json:"session_id"`
}

// HandleSendMessage godoc
// @Summary      Send a chat message
// @Description  Appends the user message to the active (or a new) session and returns the appended messages.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body SendMessageRequest true "Message to send"
// @Success      200 {object} SendMessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /messages [post]
func (h *ChatHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(req); err != nil {
		respondWithError(w, err)
		return
	}

	var image *model.ImageData
	if req.Image != nil {
		image = &model.ImageData{MIMEType: req.Image.MIMEType, Data: req.Image.Data}
	}

	appended, err := h.conversations.SendMessage(r.Context(), req.Text, image)
	if err != nil {
		respondWithError(w, err)
		return
	}

	resp := SendMessageResponse{Messages: toMessageViews(appended)}
	if active := h.conversations.ListSessions(r.Context()).ActiveID; active != nil {
		resp.SessionID = *active
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// GetSessions godoc
// @Summary      List chat sessions
// @Tags         chat
// @Produce      json
// @Success      200 {object} SessionListResponse
// @Router       /sessions [get]
func (h *ChatHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	collection := h.conversations.ListSessions(r.Context())

	summaries := make([]SessionSummary, 0, len(collection.Sessions))
	for _, sess := range collection.Sessions {
		summaries = append(summaries, SessionSummary{ID: sess.ID, Title: sess.Title, MessageCount: len(sess.Messages)})
	}
	respondWithJSON(w, http.StatusOK, SessionListResponse{
		Sessions: summaries,
		ActiveID: collection.ActiveID,
		Loading:  h.conversations.Loading(),
	})
}

// GetSession godoc
// @Summary      Get one session with its messages
// @Tags         chat
// @Produce      json
// @Param        sessionID path string true "Session id"
// @Success      200 {object} SessionResponse
// @Failure      404 {object} ErrorResponse
// @Router       /sessions/{sessionID} [get]
func (h *ChatHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	session, err := h.conversations.GetSession(r.Context(), sessionID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SessionResponse{
		ID:       session.ID,
		Title:    session.Title,
		Messages: toMessageViews(session.Messages),
	})
}

// HandleDeleteSession godoc
// @Summary      Delete a session
// @Tags         chat
// @Produce      json
// @Param        sessionID path string true "Session id"
// @Success      200 {object} StatusResponse
// @Router       /sessions/{sessionID} [delete]
func (h *ChatHandler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	h.conversations.DeleteSession(r.Context(), sessionID)
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "deleted"})
}

// SetActiveSession godoc
// @Summary      Select the active session
// @Description  A null session_id clears the selection ("new chat").
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        request body SetActiveRequest true "Session to select"
// @Success      200 {object} StatusResponse
// @Failure      404 {object} ErrorResponse
// @Router       /sessions/active [post]
func (h *ChatHandler) SetActiveSession(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := h.conversations.SetActive(r.Context(), req.SessionID); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// toMessageViews renders model messages into their block structure; user
// messages are shown verbatim.
func toMessageViews(messages []model.Message) []MessageView {
	views := make([]MessageView, 0, len(messages))
	for _, msg := range messages {
		view := MessageView{
			Role:      msg.Role,
			Text:      msg.Text,
			Image:     msg.Image,
			Sources:   msg.Sources,
			Timestamp: msg.Timestamp,
		}
		if msg.Role == model.RoleModel {
			view.Blocks = markdown.Render(msg.Text)
		}
		views = append(views, view)
	}
	return views
}
