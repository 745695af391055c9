package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mathrace/mathrace-go/internal/dependencies/clock"
	"github.com/mathrace/mathrace-go/internal/model"
	"github.com/mathrace/mathrace-go/internal/storage"
)

// Service manages the question catalog: immutable built-in sets plus
// user-owned custom sets
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new catalog service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Resolve looks up a question set by id, trying built-in sets first and
// falling back to stored custom sets
func (s *Service) Resolve(ctx context.Context, id model.QuestionSetID) (*model.QuestionSet, error) {
	if set := builtinByID(id); set != nil {
		return set, nil
	}
	return s.storage.GetQuestionSet(ctx, id)
}

// List returns catalog entries visible to the given user: their custom sets
// first (when authenticated), then the built-ins
func (s *Service) List(ctx context.Context, owner model.UserID) ([]model.QuestionSetInfo, error) {
	var infos []model.QuestionSetInfo

	if owner != "" {
		customSets, err := s.storage.GetQuestionSetsForOwner(ctx, owner)
		if err != nil {
			return nil, err
		}
		for _, set := range customSets {
			infos = append(infos, model.QuestionSetInfo{
				ID:            set.ID,
				Name:          set.Name,
				Description:   set.Description,
				QuestionCount: len(set.Questions),
				IsCustom:      true,
				IsOwner:       true,
			})
		}
	}

	for _, set := range builtinSets {
		infos = append(infos, model.QuestionSetInfo{
			ID:            set.ID,
			Name:          set.Name,
			Description:   set.Description,
			QuestionCount: len(set.Questions),
			IsCustom:      false,
			IsOwner:       false,
		})
	}

	return infos, nil
}

// CreateSet stores a new custom question set owned by the given user.
// The owner is an explicit capability: callers must have authenticated
// before this point.
func (s *Service) CreateSet(ctx context.Context, owner model.UserID, name, description string, questions []model.Question) (*model.QuestionSet, error) {
	set := &model.QuestionSet{
		ID:          model.QuestionSetID(uuid.NewString()),
		OwnerID:     owner,
		Name:        name,
		Description: description,
		Questions:   questions,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.storage.SaveQuestionSet(ctx, set); err != nil {
		return nil, err
	}

	s.logger.Info("question set created",
		slog.String("set_id", string(set.ID)),
		slog.String("owner_id", string(owner)),
		slog.Int("question_count", len(questions)),
	)

	return set, nil
}

// DeleteSet removes a custom question set. Only the owner may delete it;
// built-in ids never resolve through storage, so they cannot be deleted.
func (s *Service) DeleteSet(ctx context.Context, id model.QuestionSetID, owner model.UserID) error {
	set, err := s.storage.GetQuestionSet(ctx, id)
	if err != nil {
		return err
	}

	if set.OwnerID != owner {
		return model.ErrNotOwner
	}

	return s.storage.DeleteQuestionSet(ctx, id)
}
