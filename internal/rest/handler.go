package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/samber/lo"

	"github.com/s21platform/quickchat/internal/config"
	api "github.com/s21platform/quickchat/internal/generated"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/debounce"
	"github.com/s21platform/quickchat/internal/pkg/logger"
	"github.com/s21platform/quickchat/internal/service/attachment"
	"github.com/s21platform/quickchat/internal/service/composer"
	"github.com/s21platform/quickchat/internal/session"
)

// maxUploadBody bounds a multipart upload request. Single files are checked
// against the attachment size limit afterwards.
const maxUploadBody = 128 << 20

type Handler struct {
	sessions   Sessions
	registry   Registry
	membership Membership
	sync       Sync
	messages   MessageStore
	catalog    StickerCatalog
	recent     RecentStickers
}

func New(
	sessions Sessions,
	registry Registry,
	membership Membership,
	sync Sync,
	messages MessageStore,
	catalog StickerCatalog,
	recent RecentStickers,
) *Handler {
	return &Handler{
		sessions:   sessions,
		registry:   registry,
		membership: membership,
		sync:       sync,
		messages:   messages,
		catalog:    catalog,
		recent:     recent,
	}
}

var _ api.ServerInterface = (*Handler)(nil)

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SignIn")

	var req api.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	provider := model.ProviderKind(req.Provider)
	if provider != model.GoogleProvider && provider != model.FacebookProvider {
		logger.Warn(fmt.Sprintf("unknown provider %q", req.Provider))
		h.writeError(w, fmt.Sprintf("unknown provider %q", req.Provider), http.StatusBadRequest)
		return
	}

	result, err := h.sessions.SignIn(r.Context(), provider)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to sign in: %v", err))
		h.writeServiceError(w, "failed to sign in", err)
		return
	}

	response := api.SignInResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		User:      toAPIUser(result.Session.User),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SignOut")

	sessionID, ok := r.Context().Value(config.KeySession).(string)
	if !ok {
		logger.Error("failed to get session ID")
		h.writeError(w, "failed to get session ID", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.SignOut(sessionID); err != nil {
		logger.Warn(fmt.Sprintf("failed to close session views: %v", err))
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateConversation")

	var req api.CreateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	id, err := h.registry.CreateOrGetConversation(r.Context(), req.Participants, sess.User.UID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create conversation: %v", err))
		h.writeServiceError(w, "failed to create conversation", err)
		return
	}

	h.writeJSON(w, api.CreateConversationResponse{Id: id}, http.StatusOK)
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request, conversationId string, uid string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemoveMember")

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	left, err := h.membership.RemoveMember(r.Context(), conversationId, uid, sess.User.UID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to remove member %s: %v", uid, err))
		h.writeServiceError(w, "failed to remove member", err)
		return
	}

	logger.Info(fmt.Sprintf("user %s removed from conversation %s", uid, conversationId))

	h.writeJSON(w, api.RemoveMemberResponse{Left: left}, http.StatusOK)
}

func (h *Handler) AddAdmin(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddAdmin")

	var req api.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	if err := h.membership.AddAdminAs(r.Context(), conversationId, req.Uid, sess.User.UID); err != nil {
		logger.Error(fmt.Sprintf("failed to add admin %s: %v", req.Uid, err))
		h.writeServiceError(w, "failed to add admin", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SubmitMessage")

	var req api.SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	id, err := comp.Submit(r.Context(), req.Text)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to submit message: %v", err))
		h.writeServiceError(w, "failed to submit message", err)
		return
	}

	h.writeJSON(w, api.SendMessageResponse{Id: id}, http.StatusOK)
}

func (h *Handler) UploadFiles(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UploadFiles")

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logger.Error(fmt.Sprintf("failed to parse upload: %v", err))
		h.writeError(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	files, err := readFiles(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read upload: %v", err))
		h.writeError(w, "failed to read uploaded files", http.StatusBadRequest)
		return
	}
	if len(files) == 0 {
		h.writeError(w, "no files uploaded", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	var ids []string
	if len(files) == 1 {
		id, err := comp.UploadFile(r.Context(), files[0])
		if err != nil {
			logger.Warn(fmt.Sprintf("file %q rejected: %v", files[0].Name, err))
			h.writeServiceError(w, "failed to upload file", err)
			return
		}
		ids = lo.Compact([]string{id})
	} else {
		ids = comp.DropFiles(r.Context(), files)
	}

	h.writeJSON(w, api.MessageIdsResponse{Ids: ids}, http.StatusOK)
}

func (h *Handler) SendSticker(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendSticker")

	var req api.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	id, err := comp.SendSticker(r.Context(), req.Url)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send sticker: %v", err))
		h.writeServiceError(w, "failed to send sticker", err)
		return
	}

	h.writeJSON(w, api.SendMessageResponse{Id: id}, http.StatusOK)
}

func (h *Handler) SendGIF(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendGIF")

	var req api.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	id, err := comp.SendGIF(r.Context(), req.Url)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send gif: %v", err))
		h.writeServiceError(w, "failed to send gif", err)
		return
	}

	h.writeJSON(w, api.SendMessageResponse{Id: id}, http.StatusOK)
}

func (h *Handler) GetComposer(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetComposer")

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	h.writeJSON(w, composerState(comp), http.StatusOK)
}

func (h *Handler) SetReply(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetReply")

	var req api.SetReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	if req.MessageId == nil {
		comp.SetReply(nil)
		h.writeJSON(w, composerState(comp), http.StatusOK)
		return
	}

	// replyTo is a soft reference: an unknown id is kept as a bare target.
	target := &model.Message{ID: *req.MessageId}
	messages, err := h.messages.ListMessages(r.Context(), model.MessageQuery{ConversationID: conversationId})
	if err != nil {
		logger.Warn(fmt.Sprintf("failed to list messages, replying to bare id: %v", err))
	} else if found := model.FindMessage(messages, *req.MessageId); found != nil {
		target = found
	}

	comp.SetReply(target)

	h.writeJSON(w, composerState(comp), http.StatusOK)
}

func (h *Handler) AddPreview(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddPreview")

	var req api.ContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Url == "" {
		h.writeError(w, "preview url is required", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	comp.AddPreview(req.Url)

	h.writeJSON(w, composerState(comp), http.StatusOK)
}

func (h *Handler) RemovePreview(w http.ResponseWriter, r *http.Request, conversationId string, params api.RemovePreviewParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RemovePreview")

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	comp.RemovePreview(params.Url)

	h.writeJSON(w, composerState(comp), http.StatusOK)
}

func (h *Handler) LiveReplace(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LiveReplace")

	var req api.LiveReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	comp, ok := h.composer(w, r, logger, conversationId)
	if !ok {
		return
	}

	input, caret := comp.LiveReplace(req.Input, req.Caret, req.SelectionEnd)

	h.writeJSON(w, api.CaretResponse{Input: input, Caret: caret}, http.StatusOK)
}

func (h *Handler) InsertAtCaret(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("InsertAtCaret")

	var req api.InsertAtCaretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input, caret := composer.InsertAtCaret(req.Input, req.Value, req.Start, req.End)

	h.writeJSON(w, api.CaretResponse{Input: input, Caret: caret}, http.StatusOK)
}

func (h *Handler) GetStickerCollections(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetStickerCollections")

	collections, err := h.catalog.Collections(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get sticker collections: %v", err))
		h.writeServiceError(w, "failed to get sticker collections", model.NetworkError("sticker collections", err))
		return
	}

	h.writeJSON(w, lo.Map(collections, toAPIStickerCollection), http.StatusOK)
}

func (h *Handler) GetRecentStickers(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetRecentStickers")

	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return
	}

	stickers := h.recent.Recent(userUUID)
	if stickers == nil {
		stickers = []string{}
	}

	h.writeJSON(w, api.RecentStickersResponse{Stickers: stickers}, http.StatusOK)
}

func (h *Handler) SearchGIFs(w http.ResponseWriter, r *http.Request, params api.SearchGIFsParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SearchGIFs")

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	gifs, err := sess.SearchGIFs(r.Context(), lo.FromPtr(params.Q))
	if errors.Is(err, debounce.ErrSuperseded) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to search gifs: %v", err))
		h.writeServiceError(w, "failed to search gifs", err)
		return
	}

	h.writeJSON(w, lo.Map(gifs, toAPIGIF), http.StatusOK)
}

func (h *Handler) StreamConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamConversations")

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	view, err := h.sync.Conversations(r.Context(), sess.User.UID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open conversations view: %v", err))
		h.writeServiceError(w, "failed to open conversations", err)
		return
	}

	serveView(h, w, r, sess, view, func(list model.ConversationList) any {
		return lo.Map(list, toAPIConversation)
	})
}

func (h *Handler) StreamMessages(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamMessages")

	sess, ok := h.member(w, r, logger, conversationId)
	if !ok {
		return
	}

	view, err := h.sync.Messages(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open messages view: %v", err))
		h.writeServiceError(w, "failed to open messages", err)
		return
	}

	serveView(h, w, r, sess, view, toAPIMessages)
}

func (h *Handler) StreamMedia(w http.ResponseWriter, r *http.Request, conversationId string) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamMedia")

	sess, ok := h.member(w, r, logger, conversationId)
	if !ok {
		return
	}

	view, err := h.sync.Media(r.Context(), conversationId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open media view: %v", err))
		h.writeServiceError(w, "failed to open media", err)
		return
	}

	serveView(h, w, r, sess, view, toAPIMessages)
}

func (h *Handler) StreamUsers(w http.ResponseWriter, r *http.Request, params api.StreamUsersParams) {
	logger := logger.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StreamUsers")

	sess, ok := h.session(w, r, logger)
	if !ok {
		return
	}

	view, err := h.sync.Users(r.Context(), lo.Uniq(params.Uids))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to open users view: %v", err))
		h.writeServiceError(w, "failed to open users", err)
		return
	}

	serveView(h, w, r, sess, view, func(users []model.User) any {
		return lo.Map(users, func(u model.User, _ int) api.User { return toAPIUser(u) })
	})
}

// ----------------------------- helpers -----------------------------

// session resolves the open session behind the request token. A token whose
// session was signed out is rejected.
func (h *Handler) session(w http.ResponseWriter, r *http.Request, logger logger.LoggerInterface) (*session.Session, bool) {
	userUUID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user UUID")
		h.writeError(w, "failed to get user UUID", http.StatusInternalServerError)
		return nil, false
	}

	sessionID, ok := r.Context().Value(config.KeySession).(string)
	if !ok {
		logger.Error("failed to get session ID")
		h.writeError(w, "failed to get session ID", http.StatusInternalServerError)
		return nil, false
	}

	sess, err := h.sessions.Get(sessionID, userUUID)
	if err != nil {
		logger.Warn(fmt.Sprintf("session %s is not open: %v", sessionID, err))
		h.writeError(w, "session is not open", http.StatusUnauthorized)
		return nil, false
	}

	return sess, true
}

func (h *Handler) member(w http.ResponseWriter, r *http.Request, logger logger.LoggerInterface, conversationID string) (*session.Session, bool) {
	sess, ok := h.session(w, r, logger)
	if !ok {
		return nil, false
	}

	if err := sess.CheckMember(r.Context(), conversationID); err != nil {
		logger.Warn(fmt.Sprintf("conversation %s denied: %v", conversationID, err))
		h.writeServiceError(w, "conversation not available", err)
		return nil, false
	}

	return sess, true
}

func (h *Handler) composer(w http.ResponseWriter, r *http.Request, logger logger.LoggerInterface, conversationID string) (*composer.Composer, bool) {
	sess, ok := h.session(w, r, logger)
	if !ok {
		return nil, false
	}

	comp, err := sess.Composer(r.Context(), conversationID)
	if err != nil {
		logger.Warn(fmt.Sprintf("composer for %s unavailable: %v", conversationID, err))
		h.writeServiceError(w, "conversation not available", err)
		return nil, false
	}

	return comp, true
}

func readFiles(r *http.Request) ([]attachment.File, error) {
	headers := r.MultipartForm.File["file"]
	files := make([]attachment.File, 0, len(headers))

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %q: %v", header.Filename, err)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %q: %v", header.Filename, err)
		}

		// generic types are sniffed from the content instead
		mimeType := header.Header.Get("Content-Type")
		if mimeType == "application/octet-stream" {
			mimeType = ""
		}

		files = append(files, attachment.File{Name: header.Filename, MIMEType: mimeType, Data: data})
	}

	return files, nil
}

// statusFor maps the error taxonomy onto HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvariantViolation), errors.Is(err, model.ErrUploadInProgress):
		return http.StatusConflict
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrClosed):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNetwork):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeServiceError(w http.ResponseWriter, message string, err error) {
	h.writeError(w, fmt.Sprintf("%s: %v", message, err), statusFor(err))
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
