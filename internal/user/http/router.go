package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	commonerrors "github.com/AlibekovAA/users-api/internal/common/errors"
	commonhttp "github.com/AlibekovAA/users-api/internal/common/http"
	"github.com/AlibekovAA/users-api/internal/common/logger"
	"github.com/AlibekovAA/users-api/internal/common/mapper"
	"github.com/AlibekovAA/users-api/internal/user/domain"
	"github.com/AlibekovAA/users-api/internal/user/service"
)

const (
	msgPong        = "Pong!"
	msgUserCreated = "user criado com sucesso"
	msgUserDeleted = "user deletado com sucesso"
)

type Handler struct {
	users          *service.UserService
	errorHandler   *commonhttp.ErrorHandler
	log            *logger.Logger
	requestTimeout time.Duration
}

func NewHandler(users *service.UserService, requestTimeout time.Duration, log *logger.Logger) http.Handler {
	h := &Handler{
		users:          users,
		errorHandler:   commonhttp.NewErrorHandler(log),
		log:            log,
		requestTimeout: requestTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", commonhttp.HealthHandler())
	mux.HandleFunc("GET /ping", h.ping)
	mux.HandleFunc("GET /users", h.listUsers)
	mux.HandleFunc("POST /users", h.createUser)
	mux.HandleFunc("DELETE /users/{id}", h.deleteUser)
	return mux
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if err := h.users.Ping(ctx); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, commonhttp.MessageResponse{Message: msgPong})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	users, err := h.users.List(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, mapper.UsersToDTO(users))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	// An empty body is treated as {} so the first field check reports it.
	var req createUserRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			commonhttp.WriteError(w, http.StatusRequestEntityTooLarge, "corpo da requisição muito grande")
			return
		}
		h.log.WithFields(r.Context(), logger.Fields{"action": "create_user"}).Warnf("invalid json: %v", err)
		h.errorHandler.HandleError(w, r, commonerrors.ErrInvalidPayload.WithCause(err))
		return
	}

	ctx, cancel := h.withTimeout(r)
	defer cancel()

	user, err := h.users.Create(ctx, service.CreateUserInput{
		ID:       req.ID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusCreated, createUserResponse{
		Message: msgUserCreated,
		User:    mapper.UserToDTO(user),
	})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.withTimeout(r)
	defer cancel()

	if err := h.users.Delete(ctx, domain.ID(r.PathValue("id"))); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteJSON(w, http.StatusOK, commonhttp.MessageResponse{Message: msgUserDeleted})
}

func (h *Handler) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	if h.requestTimeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), h.requestTimeout)
}
