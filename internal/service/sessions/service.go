package sessions

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/luacris/studio-service/internal/integrations/recordstore"
	"github.com/luacris/studio-service/internal/service/sessions/models"
	"github.com/luacris/studio-service/internal/validation"
	"github.com/luacris/studio-service/pkg/types"
)

// featuredQuery фильтр хранилища для сессий в карусели главной страницы
var featuredQuery = url.Values{"destaque": []string{"true"}}

// Service сервис для работы с сессиями портфолио
type Service struct {
	store  SessionStore
	logger Logger
}

// NewService создает новый экземпляр сервиса сессий
func NewService(store SessionStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// List возвращает сессии в порядке хранилища; featuredOnly оставляет только отмеченные destaque
func (s *Service) List(ctx context.Context, featuredOnly bool) (*models.SessionListResponse, error) {
	s.logger.Info("List: fetching sessions, featured=%t", featuredOnly)

	var query url.Values
	if featuredOnly {
		query = featuredQuery
	}

	sessions, err := s.store.ListSessions(ctx, query)
	if err != nil {
		s.logger.Error("List: store error: %v", err)
		return nil, s.storeError("List", err)
	}

	s.logger.Info("List: successfully fetched %d sessions", len(sessions))
	return models.FromDomainSessionList(sessions), nil
}

// GetByID получает сессию по ID
func (s *Service) GetByID(ctx context.Context, id types.ID) (*models.SessionResponse, error) {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, s.storeError("GetByID", err)
	}
	return models.FromDomainSession(session), nil
}

// Create создает сессию, fotos по умолчанию пустой массив
func (s *Service) Create(ctx context.Context, req *models.SessionRequest) (*models.SessionResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	session := req.ToDomain()
	if !req.HasPhotos() {
		session.Photos = models.EmptyPhotos()
	}

	created, err := s.store.CreateSession(ctx, session)
	if err != nil {
		s.logger.Error("Create: store error: %v", err)
		return nil, s.storeError("Create", err)
	}

	s.logger.Info("Create: successfully created session id=%s title=%q", created.ID, created.Title)
	return models.FromDomainSession(created), nil
}

// Update заменяет сессию целиком; если fotos не переданы, сохраняются фотографии существующей записи
func (s *Service) Update(ctx context.Context, id types.ID, req *models.SessionRequest) (*models.SessionResponse, error) {
	if err := validation.Struct(req); err != nil {
		s.logger.Warn("Update: invalid request for session id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	existing, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, s.storeError("Update", err)
	}

	session := req.ToDomain()
	session.ID = id
	if !req.HasPhotos() {
		session.Photos = existing.Photos
	}

	updated, err := s.store.UpdateSession(ctx, id, session)
	if err != nil {
		return nil, s.storeError("Update", err)
	}

	s.logger.Info("Update: successfully updated session id=%s", id)
	return models.FromDomainSession(updated), nil
}

// Delete удаляет сессию
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if err := s.store.DeleteSession(ctx, id); err != nil {
		return s.storeError("Delete", err)
	}

	s.logger.Info("Delete: successfully deleted session id=%s", id)
	return nil
}

func (s *Service) storeError(op string, err error) error {
	if errors.Is(err, recordstore.ErrNotFound) {
		s.logger.Warn("%s: session not found", op)
		return ErrSessionNotFound
	}
	return fmt.Errorf("%w: %s - store error: %v", ErrStoreUnavailable, op, err)
}
