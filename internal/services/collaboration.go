package services

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-talent-map/internal/apperrors"
	"github.com/sbilibin2017/gw-talent-map/internal/logger"
	"github.com/sbilibin2017/gw-talent-map/internal/models"
	"github.com/sbilibin2017/gw-talent-map/internal/tokens"
)

// AccountGetter looks accounts up by id.
type AccountGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// CollaborationReader lists collaboration requests of an account.
type CollaborationReader interface {
	ListByRequester(ctx context.Context, userID uuid.UUID) ([]models.CollaborationDB, error)
	ListByReceiver(ctx context.Context, userID uuid.UUID) ([]models.CollaborationDB, error)
}

// CollaborationWriter stores new collaboration requests.
type CollaborationWriter interface {
	Save(ctx context.Context, c *models.CollaborationDB) error
}

// CollaborationService handles collaboration requests between accounts.
type CollaborationService struct {
	accounts    AccountGetter
	reader      CollaborationReader
	writer      CollaborationWriter
	kafkaWriter KafkaWriter
	validator   *Validator
}

// NewCollaborationService creates a new CollaborationService.
func NewCollaborationService(
	accounts AccountGetter,
	reader CollaborationReader,
	writer CollaborationWriter,
	kafkaWriter KafkaWriter,
) *CollaborationService {
	return &CollaborationService{
		accounts:    accounts,
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		validator:   NewValidator(),
	}
}

// Request records a pending collaboration request from requesterID.
func (s *CollaborationService) Request(ctx context.Context, requesterID uuid.UUID, req models.CollaborationRequest) (*models.Collaboration, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)

	errs := s.validator.Struct(collaborationInput{Title: req.Title, Description: req.Description})
	if req.ReceiverID == uuid.Nil {
		errs = append(errs, apperrors.ValidationError{Field: "receiver_id", Reason: "this field is required"})
	} else if req.ReceiverID == requesterID {
		errs = append(errs, apperrors.ValidationError{Field: "receiver_id", Reason: "cannot request a collaboration with yourself"})
	}
	if errs != nil {
		return nil, errs
	}

	receiver, err := s.accounts.GetByID(ctx, req.ReceiverID)
	if err != nil {
		logger.Log.Errorw("failed to get receiver", "receiverID", req.ReceiverID, "error", err)
		return nil, err
	}
	if receiver == nil {
		return nil, apperrors.NewNotFound("account", req.ReceiverID)
	}

	c := &models.CollaborationDB{
		RequesterID:    requesterID,
		ReceiverID:     req.ReceiverID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: tokens.Join(req.RequiredSkills),
		Status:         models.CollaborationPending,
	}
	if err := s.writer.Save(ctx, c); err != nil {
		logger.Log.Errorw("failed to save collaboration", "requesterID", requesterID, "receiverID", req.ReceiverID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, newEvent(models.EventCollaborationRequested, requesterID, map[string]string{
		"collaboration_id": strconv.FormatInt(c.CollaborationID, 10),
		"receiver_id":      c.ReceiverID.String(),
	}))

	return toCollaboration(c), nil
}

// List returns the caller's sent or received requests, newest first.
func (s *CollaborationService) List(ctx context.Context, callerID uuid.UUID, direction models.CollaborationDirection) ([]models.Collaboration, error) {
	var (
		rows []models.CollaborationDB
		err  error
	)
	switch direction {
	case models.DirectionSent:
		rows, err = s.reader.ListByRequester(ctx, callerID)
	case models.DirectionReceived:
		rows, err = s.reader.ListByReceiver(ctx, callerID)
	default:
		return nil, apperrors.Invalid("direction", "must be one of sent, received")
	}
	if err != nil {
		logger.Log.Errorw("failed to list collaborations", "callerID", callerID, "direction", direction, "error", err)
		return nil, err
	}

	out := make([]models.Collaboration, 0, len(rows))
	for i := range rows {
		out = append(out, *toCollaboration(&rows[i]))
	}
	return out, nil
}

func toCollaboration(c *models.CollaborationDB) *models.Collaboration {
	return &models.Collaboration{
		CollaborationID: c.CollaborationID,
		RequesterID:     c.RequesterID,
		ReceiverID:      c.ReceiverID,
		Title:           c.Title,
		Description:     c.Description,
		RequiredSkills:  tokens.Split(c.RequiredSkills),
		Status:          c.Status,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
