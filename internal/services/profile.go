package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
)

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
	Search(ctx context.Context, filter models.ProfileFilter) ([]models.ProfileDB, error)
}

// ProfileWriter defines the operations of the edit workflow.
type ProfileWriter interface {
	EnsureForUser(ctx context.Context, userID uuid.UUID) error
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
	Update(ctx context.Context, profile *models.ProfileDB) error
}

// TalentMapCache caches exported talent maps.
type TalentMapCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.TalentMap, error)
	Set(ctx context.Context, userID uuid.UUID, tm *models.TalentMap) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// ProfileService handles profile reads, owner edits and talent map export.
type ProfileService struct {
	reader      ProfileReader
	writer      ProfileWriter
	tx          Transactor
	cache       TalentMapCache
	kafkaWriter KafkaWriter
	validator   *Validator
}

// NewProfileService creates a new ProfileService. cache and kafkaWriter may be nil.
func NewProfileService(
	reader ProfileReader,
	writer ProfileWriter,
	tx Transactor,
	cache TalentMapCache,
	kafkaWriter KafkaWriter,
) *ProfileService {
	return &ProfileService{
		reader:      reader,
		writer:      writer,
		tx:          tx,
		cache:       cache,
		kafkaWriter: kafkaWriter,
		validator:   NewValidator(),
	}
}

// GetProfile returns the profile owned by the account.
func (s *ProfileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*models.Profile, error) {
	p, err := s.reader.GetByUserID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "accountID", accountID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("profile", accountID)
	}
	return toProfile(p), nil
}

// EditProfile applies a partial update to the target account's profile on behalf of callerID.
// Only the owner may edit; the profile is created with defaults if the account has none.
func (s *ProfileService) EditProfile(ctx context.Context, callerID, targetID uuid.UUID, upd models.ProfileUpdate) (*models.Profile, error) {
	if callerID != targetID {
		logger.Log.Errorw("profile edit by non-owner", "callerID", callerID, "targetID", targetID)
		return nil, apperrors.ErrForbidden
	}

	var updated *models.ProfileDB
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.writer.EnsureForUser(ctx, callerID); err != nil {
			return err
		}

		current, err := s.writer.GetForUpdate(ctx, callerID)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.NewNotFound("account", callerID)
		}

		merged := mergeProfile(*current, upd)
		if errs := s.validator.validateProfileEdit(&merged); errs != nil {
			return errs
		}

		if err := s.writer.Update(ctx, &merged); err != nil {
			return err
		}
		s.invalidateTalentMap(ctx, callerID)
		updated = &merged
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to edit profile", "accountID", callerID, "error", err)
		return nil, err
	}

	// A talent map exported between the two deletes may have refilled the cache with the old row
	s.invalidateTalentMap(ctx, callerID)
	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventProfileUpdated, callerID, map[string]string{
		"skills": updated.Skills,
	}))

	return toProfile(updated), nil
}

// ExportTalentMap returns the skills and passions of the account's profile for rendering.
func (s *ProfileService) ExportTalentMap(ctx context.Context, accountID uuid.UUID) (*models.TalentMap, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, accountID)
		if err != nil {
			logger.Log.Warnw("talent map cache read failed", "accountID", accountID, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	p, err := s.reader.GetByUserID(ctx, accountID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "accountID", accountID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, apperrors.NewNotFound("profile", accountID)
	}

	tm := &models.TalentMap{
		Skills:   tokens.Split(p.Skills),
		Passions: tokens.Split(p.Passions),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, accountID, tm); err != nil {
			logger.Log.Warnw("talent map cache write failed", "accountID", accountID, "error", err)
		}
	}

	return tm, nil
}

func (s *ProfileService) invalidateTalentMap(ctx context.Context, accountID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, accountID); err != nil {
		logger.Log.Warnw("talent map cache invalidation failed", "accountID", accountID, "error", err)
	}
}

// mergeProfile overlays the supplied fields of upd onto p
func mergeProfile(p models.ProfileDB, upd models.ProfileUpdate) models.ProfileDB {
	if upd.EducationLevel != nil {
		p.EducationLevel = models.EducationLevel(strings.TrimSpace(*upd.EducationLevel))
	}
	if upd.Bio != nil {
		p.Bio = strings.TrimSpace(*upd.Bio)
	}
	if upd.Skills != nil {
		p.Skills = tokens.Join(upd.Skills)
	}
	if upd.Languages != nil {
		p.Languages = tokens.Join(upd.Languages)
	}
	if upd.Passions != nil {
		p.Passions = tokens.Join(upd.Passions)
	}
	if upd.Projects != nil {
		p.Projects = tokens.Join(upd.Projects)
	}
	if upd.LinkedIn != nil {
		p.LinkedIn = strings.TrimSpace(*upd.LinkedIn)
	}
	if upd.GitHub != nil {
		p.GitHub = strings.TrimSpace(*upd.GitHub)
	}
	if upd.YouTube != nil {
		p.YouTube = strings.TrimSpace(*upd.YouTube)
	}
	if upd.Website != nil {
		p.Website = strings.TrimSpace(*upd.Website)
	}
	return p
}

// toProfile converts a storage row into its workflow representation
func toProfile(p *models.ProfileDB) *models.Profile {
	return &models.Profile{
		ProfileID:      p.ProfileID,
		AccountID:      p.UserID,
		Username:       p.Username,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		EducationLevel: p.EducationLevel,
		Bio:            p.Bio,
		Skills:         tokens.Split(p.Skills),
		Languages:      tokens.Split(p.Languages),
		Passions:       tokens.Split(p.Passions),
		Projects:       tokens.Split(p.Projects),
		LinkedIn:       p.LinkedIn,
		GitHub:         p.GitHub,
		YouTube:        p.YouTube,
		Website:        p.Website,
		IsValidated:    p.IsValidated,
		ValidatedBy:    p.ValidatedBy,
		ValidatedAt:    p.ValidatedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
